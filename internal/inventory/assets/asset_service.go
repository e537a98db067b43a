package assets

import (
	"fmt"
	"strconv"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

type Repository interface {
	GetAsset(id int) (*models.AssetUnit, error)
	GetAssetsBy(conditions repository.QueryBuilder) ([]models.AssetUnit, error)
	PersistAsset(unit models.AssetUnit) (*models.AssetUnit, error)
	UpdateAsset(unit models.AssetUnit) (*models.AssetUnit, error)
	UpdateAssetStatus(id int, status metadata.AssetStatus) error
	RemoveAsset(id int) error
}

type AssetFilter struct {
	ItemID string
	Office string
	Status string
}

type AssetService struct {
	r Repository
}

func NewAssetService(r Repository) *AssetService {
	return &AssetService{r: r}
}

func (s *AssetService) List(filter AssetFilter) ([]models.AssetUnit, error) {
	conditions := repository.NewQueryBuilder()

	if filter.ItemID != "" {
		itemID, err := strconv.Atoi(filter.ItemID)
		if err != nil || itemID <= 0 {
			return nil, custom_error.NewValidation(fmt.Errorf("invalid item_id: %s", filter.ItemID))
		}
		conditions.AddCondition("item_id", itemID)
	}
	if filter.Office != "" {
		office, err := metadata.NewOffice(filter.Office)
		if err != nil {
			return nil, custom_error.NewValidation(err)
		}
		conditions.AddCondition("office", string(office))
	}
	if filter.Status != "" {
		status, err := metadata.NewAssetStatus(filter.Status)
		if err != nil {
			return nil, custom_error.NewValidation(err)
		}
		conditions.AddCondition("status", string(status))
	}

	return s.r.GetAssetsBy(conditions)
}

// ListAll returns every unit regardless of item or office.
func (s *AssetService) ListAll() ([]models.AssetUnit, error) {
	return s.r.GetAssetsBy(repository.NewQueryBuilder())
}

func (s *AssetService) Get(id int) (*models.AssetUnit, error) {
	return s.r.GetAsset(id)
}

func (s *AssetService) Create(req models.AssetUnitRequest) (*models.AssetUnit, error) {
	unit, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistAsset(unit)
}

func (s *AssetService) Update(id int, req models.AssetUnitRequest) (*models.AssetUnit, error) {
	unit, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	unit.ID = id
	return s.r.UpdateAsset(unit)
}

func (s *AssetService) ChangeStatus(id int, value string) (metadata.AssetStatus, error) {
	status, err := metadata.NewAssetStatus(value)
	if err != nil {
		return "", custom_error.NewValidation(err)
	}
	if err := s.r.UpdateAssetStatus(id, status); err != nil {
		return "", err
	}
	return status, nil
}

func (s *AssetService) Delete(id int) error {
	return s.r.RemoveAsset(id)
}

func fromRequest(req models.AssetUnitRequest) (models.AssetUnit, error) {
	if req.ItemID <= 0 {
		return models.AssetUnit{}, custom_error.NewValidation(fmt.Errorf("item_id is required"))
	}

	office, err := metadata.NewOffice(req.OfficeLocation)
	if err != nil {
		return models.AssetUnit{}, custom_error.NewValidation(err)
	}

	status := metadata.AssetStatusAvailable
	if req.Status != "" {
		if status, err = metadata.NewAssetStatus(req.Status); err != nil {
			return models.AssetUnit{}, custom_error.NewValidation(err)
		}
	}

	return models.AssetUnit{
		ItemID:         req.ItemID,
		AssetTag:       metadata.NormalizeAssetTag(req.AssetTag).String(),
		OfficeLocation: office,
		Status:         status,
	}, nil
}
