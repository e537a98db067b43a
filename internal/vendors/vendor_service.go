package vendors

import (
	"fmt"
	"strings"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

type Repository interface {
	GetVendorsBy(conditions repository.QueryBuilder) ([]models.Vendor, error)
	GetVendor(id int) (*models.Vendor, error)
	PersistVendor(vendor models.Vendor) (*models.Vendor, error)
	UpdateVendor(vendor models.Vendor) (*models.Vendor, error)
	DeleteVendor(id int) error
}

type VendorService struct {
	r Repository
}

func NewVendorService(r Repository) *VendorService {
	return &VendorService{r: r}
}

// List filters by vendor category when one is given.
func (s *VendorService) List(category string) ([]models.Vendor, error) {
	conditions := repository.NewQueryBuilder()
	if strings.TrimSpace(category) != "" {
		value, err := metadata.NewVendorCategory(category)
		if err != nil {
			return nil, custom_error.NewValidation(err)
		}
		conditions.AddCondition("category", string(value))
	}
	return s.r.GetVendorsBy(conditions)
}

func (s *VendorService) Get(id int) (*models.Vendor, error) {
	return s.r.GetVendor(id)
}

func (s *VendorService) Create(req models.VendorRequest) (*models.Vendor, error) {
	vendor, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistVendor(vendor)
}

func (s *VendorService) Update(id int, req models.VendorRequest) (*models.Vendor, error) {
	vendor, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	vendor.ID = id
	return s.r.UpdateVendor(vendor)
}

func (s *VendorService) Delete(id int) error {
	return s.r.DeleteVendor(id)
}

func fromRequest(req models.VendorRequest) (models.Vendor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Vendor{}, custom_error.NewValidation(fmt.Errorf("name is required"))
	}
	category, err := metadata.NewVendorCategory(req.Category)
	if err != nil {
		return models.Vendor{}, custom_error.NewValidation(err)
	}

	return models.Vendor{
		Name:               name,
		PrimaryContactName: strings.TrimSpace(req.PrimaryContactName),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:        strings.TrimSpace(req.PhoneNumber),
		Address:            optional(req.Address),
		Notes:              optional(req.Notes),
		Category:           category,
	}, nil
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
