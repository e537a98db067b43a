package catalog

import (
	"fmt"
	"strings"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
	"avrental/pkg/money"
)

type Repository interface {
	GetItemsBy(conditions repository.QueryBuilder) ([]models.CatalogItem, error)
	GetItem(id int) (*models.CatalogItem, error)
	PersistItem(item models.CatalogItem) (*models.CatalogItem, error)
	UpdateItem(item models.CatalogItem) (*models.CatalogItem, error)
	DeleteItem(id int) error
}

type CatalogService struct {
	r Repository
}

func NewCatalogService(r Repository) *CatalogService {
	return &CatalogService{r: r}
}

func (s *CatalogService) List(category string) ([]models.CatalogItem, error) {
	conditions := repository.NewQueryBuilder()
	if category != "" {
		c, err := metadata.NewCategory(category)
		if err != nil {
			return nil, custom_error.NewValidation(err)
		}
		conditions.AddCondition("category", string(c))
	}
	return s.r.GetItemsBy(conditions)
}

func (s *CatalogService) Get(id int) (*models.CatalogItem, error) {
	return s.r.GetItem(id)
}

func (s *CatalogService) Create(req models.CatalogItemRequest) (*models.CatalogItem, error) {
	item, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistItem(item)
}

func (s *CatalogService) Update(id int, req models.CatalogItemRequest) (*models.CatalogItem, error) {
	item, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return s.r.UpdateItem(item)
}

func (s *CatalogService) Delete(id int) error {
	return s.r.DeleteItem(id)
}

// fromRequest accepts the price either as cents or as a dollar string.
// Cents win when both are sent.
func fromRequest(req models.CatalogItemRequest) (models.CatalogItem, error) {
	category, err := metadata.NewCategory(req.Category)
	if err != nil {
		return models.CatalogItem{}, custom_error.NewValidation(err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.CatalogItem{}, custom_error.NewValidation(fmt.Errorf("name is required"))
	}

	var price int64
	switch {
	case req.PricePerDayCents != nil:
		price = *req.PricePerDayCents
	case req.PricePerDay != nil:
		price, err = money.ParseDollars(*req.PricePerDay)
		if err != nil {
			return models.CatalogItem{}, custom_error.NewValidation(err)
		}
	default:
		return models.CatalogItem{}, custom_error.NewValidation(fmt.Errorf("price_per_day_cents or price_per_day is required"))
	}

	if price < 0 {
		return models.CatalogItem{}, custom_error.NewValidation(fmt.Errorf("price cannot be negative"))
	}

	return models.CatalogItem{
		Name:             name,
		Category:         category,
		PricePerDayCents: price,
		PhotoURL:         req.PhotoURL,
	}, nil
}
