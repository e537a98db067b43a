package catalog

import (
	"errors"
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type CatalogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CatalogRepository {
	return &CatalogRepository{repository: r}
}

func (r *CatalogRepository) getItemQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("catalog_items").As("c")).
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.name").As("name"),
			goqu.I("c.category").As("category"),
			goqu.I("c.price_per_day_cents").As("price_per_day_cents"),
			goqu.I("c.photo_url").As("photo_url"),
		)
}

func (r *CatalogRepository) GetItemsBy(conditions repository.QueryBuilder) ([]models.CatalogItem, error) {
	aliases := map[string]string{
		"category": "c.category",
	}

	query := r.getItemQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("c.name").Asc(), goqu.I("c.id").Asc())

	items := []models.CatalogItem{}
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select catalog items: %w", err)
	}

	return items, nil
}

func (r *CatalogRepository) GetItem(id int) (*models.CatalogItem, error) {
	var item models.CatalogItem
	found, err := r.getItemQuery().
		Where(goqu.Ex{"c.id": id}).
		Executor().
		ScanStruct(&item)

	if err != nil {
		return nil, fmt.Errorf("unable to select catalog item %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("catalog item", id)
	}

	return &item, nil
}

func (r *CatalogRepository) PersistItem(item models.CatalogItem) (*models.CatalogItem, error) {
	var id int
	query := r.repository.Goqu.Insert("catalog_items").
		Rows(goqu.Record{
			"name":                item.Name,
			"category":            string(item.Category),
			"price_per_day_cents": item.PricePerDayCents,
			"photo_url":           item.PhotoURL,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		return nil, wrapPQ("catalog item name already exists", err)
	}

	item.ID = id
	return &item, nil
}

func (r *CatalogRepository) UpdateItem(item models.CatalogItem) (*models.CatalogItem, error) {
	result, err := r.repository.Goqu.Update("catalog_items").
		Set(goqu.Record{
			"name":                item.Name,
			"category":            string(item.Category),
			"price_per_day_cents": item.PricePerDayCents,
			"photo_url":           item.PhotoURL,
		}).
		Where(goqu.Ex{"id": item.ID}).
		Executor().
		Exec()

	if err != nil {
		return nil, wrapPQ("catalog item name already exists", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if rowsAffected == 0 {
		return nil, custom_error.NewNotFound("catalog item", item.ID)
	}

	return &item, nil
}

// DeleteItem removes the item; its asset units go with it through the
// ON DELETE CASCADE foreign key.
func (r *CatalogRepository) DeleteItem(id int) error {
	result, err := r.repository.Goqu.Delete("catalog_items").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return wrapPQ("catalog item is still referenced", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if rowsAffected == 0 {
		return custom_error.NewNotFound("catalog item", id)
	}

	return nil
}

func wrapPQ(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503":
			return custom_error.WrapDBError(message, string(pqErr.Code))
		}
	}
	return fmt.Errorf("catalog query failed: %w", err)
}
