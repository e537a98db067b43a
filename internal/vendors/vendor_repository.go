package vendors

import (
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type VendorRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *VendorRepository {
	return &VendorRepository{repository: r}
}

func (r *VendorRepository) getVendorQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("vendors").As("vn")).
		Select(
			goqu.I("vn.id").As("id"),
			goqu.I("vn.name").As("name"),
			goqu.I("vn.primary_contact_name").As("primary_contact_name"),
			goqu.I("vn.email").As("email"),
			goqu.I("vn.phone_number").As("phone_number"),
			goqu.I("vn.address").As("address"),
			goqu.I("vn.notes").As("notes"),
			goqu.I("vn.vendor_category").As("vendor_category"),
		)
}

func (r *VendorRepository) GetVendorsBy(conditions repository.QueryBuilder) ([]models.Vendor, error) {
	aliases := map[string]string{
		"category": "vn.vendor_category",
	}

	vendors := []models.Vendor{}
	err := r.getVendorQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("vn.name").Asc()).
		Executor().
		ScanStructs(&vendors)
	if err != nil {
		return nil, fmt.Errorf("unable to select vendors: %w", err)
	}

	return vendors, nil
}

func (r *VendorRepository) GetVendor(id int) (*models.Vendor, error) {
	var vendor models.Vendor
	found, err := r.getVendorQuery().
		Where(goqu.Ex{"vn.id": id}).
		Executor().
		ScanStruct(&vendor)
	if err != nil {
		return nil, fmt.Errorf("unable to select vendor %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("vendor", id)
	}

	return &vendor, nil
}

func (r *VendorRepository) PersistVendor(vendor models.Vendor) (*models.Vendor, error) {
	_, err := r.repository.Goqu.Insert("vendors").
		Rows(record(vendor)).
		Returning("id").
		Executor().
		ScanVal(&vendor.ID)
	if err != nil {
		return nil, repository.MapPQError("vendor", "vendor name already exists", err)
	}

	return &vendor, nil
}

func (r *VendorRepository) UpdateVendor(vendor models.Vendor) (*models.Vendor, error) {
	result, err := r.repository.Goqu.Update("vendors").
		Set(record(vendor)).
		Where(goqu.Ex{"id": vendor.ID}).
		Executor().
		Exec()
	if err != nil {
		return nil, repository.MapPQError("vendor", "vendor name already exists", err)
	}
	if err := repository.CheckAffected(result, "vendor", vendor.ID); err != nil {
		return nil, err
	}

	return &vendor, nil
}

// DeleteVendor is refused by the database while subrentals or costs reference the vendor.
func (r *VendorRepository) DeleteVendor(id int) error {
	result, err := r.repository.Goqu.Delete("vendors").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return repository.MapPQError("vendor", "vendor still has subrentals or costs", err)
	}

	return repository.CheckAffected(result, "vendor", id)
}

func record(vendor models.Vendor) goqu.Record {
	return goqu.Record{
		"name":                 vendor.Name,
		"primary_contact_name": vendor.PrimaryContactName,
		"email":                vendor.Email,
		"phone_number":         vendor.PhoneNumber,
		"address":              vendor.Address,
		"notes":                vendor.Notes,
		"vendor_category":      vendor.Category,
	}
}
