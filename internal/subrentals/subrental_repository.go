package subrentals

import (
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SubrentalRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *SubrentalRepository {
	return &SubrentalRepository{repository: r}
}

func (r *SubrentalRepository) getSubrentalQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("subrentals").As("sr")).
		Select(
			goqu.I("sr.id").As("id"),
			goqu.I("sr.quote_id").As("quote_id"),
			goqu.I("sr.equipment_id").As("equipment_id"),
			goqu.I("sr.vendor_id").As("vendor_id"),
			goqu.I("sr.quantity").As("quantity"),
			goqu.I("sr.notes").As("notes"),
		)
}

func (r *SubrentalRepository) GetSubrentalsBy(conditions repository.QueryBuilder) ([]models.Subrental, error) {
	aliases := map[string]string{
		"quote_id":     "sr.quote_id",
		"vendor_id":    "sr.vendor_id",
		"equipment_id": "sr.equipment_id",
	}

	subrentals := []models.Subrental{}
	err := r.getSubrentalQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("sr.quote_id").Asc(), goqu.I("sr.equipment_id").Asc(), goqu.I("sr.id").Asc()).
		Executor().
		ScanStructs(&subrentals)
	if err != nil {
		return nil, fmt.Errorf("unable to select subrentals: %w", err)
	}

	return subrentals, nil
}

func (r *SubrentalRepository) GetSubrental(id int) (*models.Subrental, error) {
	var subrental models.Subrental
	found, err := r.getSubrentalQuery().
		Where(goqu.Ex{"sr.id": id}).
		Executor().
		ScanStruct(&subrental)
	if err != nil {
		return nil, fmt.Errorf("unable to select subrental %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("subrental", id)
	}

	return &subrental, nil
}

func (r *SubrentalRepository) PersistSubrental(subrental models.Subrental) (*models.Subrental, error) {
	_, err := r.repository.Goqu.Insert("subrentals").
		Rows(record(subrental)).
		Returning("id").
		Executor().
		ScanVal(&subrental.ID)
	if err != nil {
		return nil, repository.MapPQError("subrental", "vendor already supplies this item for the quote", err)
	}

	return &subrental, nil
}

func (r *SubrentalRepository) UpdateSubrental(subrental models.Subrental) (*models.Subrental, error) {
	result, err := r.repository.Goqu.Update("subrentals").
		Set(record(subrental)).
		Where(goqu.Ex{"id": subrental.ID}).
		Executor().
		Exec()
	if err != nil {
		return nil, repository.MapPQError("subrental", "vendor already supplies this item for the quote", err)
	}
	if err := repository.CheckAffected(result, "subrental", subrental.ID); err != nil {
		return nil, err
	}

	return &subrental, nil
}

func (r *SubrentalRepository) DeleteSubrental(id int) error {
	result, err := r.repository.Goqu.Delete("subrentals").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("unable to delete subrental %d: %w", id, err)
	}

	return repository.CheckAffected(result, "subrental", id)
}

func record(subrental models.Subrental) goqu.Record {
	return goqu.Record{
		"quote_id":     subrental.QuoteID,
		"equipment_id": subrental.EquipmentID,
		"vendor_id":    subrental.VendorID,
		"quantity":     subrental.Quantity,
		"notes":        subrental.Notes,
	}
}
