package costs

import (
	"fmt"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type CostRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CostRepository {
	return &CostRepository{repository: r}
}

func (r *CostRepository) getCostQuery() *goqu.SelectDataset {
	return r.repository.Goqu.
		From(goqu.T("costs").As("c")).
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.quote_id").As("quote_id"),
			goqu.I("c.vendor_id").As("vendor_id"),
			goqu.I("c.vendor_category").As("vendor_category"),
			goqu.I("c.projected_cents").As("projected_cents"),
			goqu.I("c.actual_cents").As("actual_cents"),
			goqu.I("c.notes").As("notes"),
		)
}

func (r *CostRepository) GetCostsBy(conditions repository.QueryBuilder) ([]models.Cost, error) {
	aliases := map[string]string{
		"quote_id":  "c.quote_id",
		"vendor_id": "c.vendor_id",
	}

	costs := []models.Cost{}
	err := r.getCostQuery().
		Where(conditions.BuildConditions(aliases)).
		Order(goqu.I("c.quote_id").Asc(), goqu.I("c.id").Asc()).
		Executor().
		ScanStructs(&costs)
	if err != nil {
		return nil, fmt.Errorf("unable to select costs: %w", err)
	}

	return costs, nil
}

func (r *CostRepository) GetCost(id int) (*models.Cost, error) {
	var cost models.Cost
	found, err := r.getCostQuery().
		Where(goqu.Ex{"c.id": id}).
		Executor().
		ScanStruct(&cost)
	if err != nil {
		return nil, fmt.Errorf("unable to select cost %d: %w", id, err)
	}
	if !found {
		return nil, custom_error.NewNotFound("cost", id)
	}

	return &cost, nil
}

func (r *CostRepository) PersistCost(cost models.Cost) (*models.Cost, error) {
	_, err := r.repository.Goqu.Insert("costs").
		Rows(record(cost)).
		Returning("id").
		Executor().
		ScanVal(&cost.ID)
	if err != nil {
		return nil, repository.MapPQError("cost", "cost rejected", err)
	}

	return &cost, nil
}

func (r *CostRepository) UpdateCost(cost models.Cost) (*models.Cost, error) {
	result, err := r.repository.Goqu.Update("costs").
		Set(record(cost)).
		Where(goqu.Ex{"id": cost.ID}).
		Executor().
		Exec()
	if err != nil {
		return nil, repository.MapPQError("cost", "cost rejected", err)
	}
	if err := repository.CheckAffected(result, "cost", cost.ID); err != nil {
		return nil, err
	}

	return &cost, nil
}

func (r *CostRepository) DeleteCost(id int) error {
	result, err := r.repository.Goqu.Delete("costs").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("unable to delete cost %d: %w", id, err)
	}

	return repository.CheckAffected(result, "cost", id)
}

func record(cost models.Cost) goqu.Record {
	return goqu.Record{
		"quote_id":        cost.QuoteID,
		"vendor_id":       cost.VendorID,
		"vendor_category": cost.VendorCategory,
		"projected_cents": cost.ProjectedCents,
		"actual_cents":    cost.ActualCents,
		"notes":           cost.Notes,
	}
}
