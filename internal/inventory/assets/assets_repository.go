package assets

import (
	"errors"
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

func (r *AssetsRepository) getAssetQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("asset_units").As("a")).
		Select(
			goqu.I("a.id").As("id"),
			goqu.I("a.item_id").As("item_id"),
			goqu.COALESCE(goqu.I("a.asset_tag"), "").As("asset_tag"),
			goqu.I("a.office_location").As("office_location"),
			goqu.I("a.status").As("status"),
		)
}

func (r *AssetsRepository) GetAsset(id int) (*models.AssetUnit, error) {
	var unit models.AssetUnit
	found, err := r.getAssetQuery().
		Where(goqu.Ex{"a.id": id}).
		Executor().
		ScanStruct(&unit)

	if err != nil {
		return nil, fmt.Errorf("unable to select asset unit %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("asset unit", id)
	}

	return &unit, nil
}

func (r *AssetsRepository) GetAssetsBy(conditions repository.QueryBuilder) ([]models.AssetUnit, error) {
	aliases := map[string]string{
		"item_id": "a.item_id",
		"office":  "a.office_location",
		"status":  "a.status",
	}

	query := r.getAssetQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("a.id").Asc())

	units := []models.AssetUnit{}
	if err := query.Executor().ScanStructs(&units); err != nil {
		return nil, fmt.Errorf("unable to select asset units from database: %w", err)
	}

	return units, nil
}

// PersistAsset inserts the unit and, when no tag was supplied, stamps the
// generated <PREFIX>-<id> tag in the same transaction.
func (r *AssetsRepository) PersistAsset(unit models.AssetUnit) (*models.AssetUnit, error) {
	err := repository.WithTransaction(r.repository.Goqu, func(tx *goqu.TxDatabase) error {
		var category string
		found, err := tx.Select("category").
			From("catalog_items").
			Where(goqu.Ex{"id": unit.ItemID}).
			Executor().
			ScanVal(&category)
		if err != nil {
			return fmt.Errorf("failed to look up catalog item: %w", err)
		}
		if !found {
			return custom_error.NewNotFound("catalog item", unit.ItemID)
		}

		record := goqu.Record{
			"item_id":         unit.ItemID,
			"office_location": string(unit.OfficeLocation),
			"status":          string(unit.Status),
		}
		if unit.AssetTag != "" {
			record["asset_tag"] = unit.AssetTag
		}

		if _, err := tx.Insert("asset_units").
			Rows(record).
			Returning("id").
			Executor().
			ScanVal(&unit.ID); err != nil {
			return wrapPQ("asset tag already registered", err)
		}

		if unit.AssetTag != "" {
			return nil
		}

		unit.AssetTag = metadata.NewAssetTag(metadata.Category(category), unit.ID).String()
		if _, err := tx.Update("asset_units").
			Set(goqu.Record{"asset_tag": unit.AssetTag}).
			Where(goqu.Ex{"id": unit.ID}).
			Executor().
			Exec(); err != nil {
			return wrapPQ("generated asset tag already registered", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &unit, nil
}

func (r *AssetsRepository) UpdateAsset(unit models.AssetUnit) (*models.AssetUnit, error) {
	record := goqu.Record{
		"item_id":         unit.ItemID,
		"office_location": string(unit.OfficeLocation),
		"status":          string(unit.Status),
	}
	if unit.AssetTag != "" {
		record["asset_tag"] = unit.AssetTag
	}

	if err := r.update(unit.ID, record); err != nil {
		return nil, err
	}

	return r.GetAsset(unit.ID)
}

func (r *AssetsRepository) UpdateAssetStatus(id int, status metadata.AssetStatus) error {
	return r.update(id, goqu.Record{"status": string(status)})
}

func (r *AssetsRepository) update(id int, record goqu.Record) error {
	result, err := r.repository.Goqu.Update("asset_units").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return wrapPQ("asset tag already registered", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("asset unit", id)
	}

	return nil
}

func (r *AssetsRepository) RemoveAsset(id int) error {
	result, err := r.repository.Goqu.
		Delete("asset_units").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to delete asset unit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return custom_error.NewNotFound("asset unit", id)
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
	return fmt.Errorf("asset query failed: %w", err)
}
