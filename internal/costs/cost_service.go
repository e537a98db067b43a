package costs

import (
	"fmt"
	"strings"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
	"avrental/pkg/money"
	"avrental/pkg/pricing"
)

type Repository interface {
	GetCostsBy(conditions repository.QueryBuilder) ([]models.Cost, error)
	GetCost(id int) (*models.Cost, error)
	PersistCost(cost models.Cost) (*models.Cost, error)
	UpdateCost(cost models.Cost) (*models.Cost, error)
	DeleteCost(id int) error
}

type QuoteSource interface {
	Get(id int) (*models.Quote, error)
}

type VendorLookup interface {
	Get(id int) (*models.Vendor, error)
}

// JobReport is the costs page of one job: its lines, their sums and the
// profit against the quote total.
type JobReport struct {
	QuoteID         int                   `json:"job_id"`
	ReferenceNumber string                `json:"reference_number"`
	QuoteTotalCents int64                 `json:"quote_total_cents"`
	Costs           []models.Cost         `json:"costs"`
	Totals          pricing.JobCosts      `json:"totals"`
	Projected       pricing.Profitability `json:"projected"`
	Actual          pricing.Profitability `json:"actual"`
}

type CostService struct {
	r       Repository
	quotes  QuoteSource
	vendors VendorLookup
}

func NewCostService(r Repository, quotes QuoteSource, vendors VendorLookup) *CostService {
	return &CostService{r: r, quotes: quotes, vendors: vendors}
}

func (s *CostService) Report(quoteID int) (*JobReport, error) {
	quote, err := s.quotes.Get(quoteID)
	if err != nil {
		return nil, err
	}

	conditions := repository.NewQueryBuilder()
	conditions.AddCondition("quote_id", quoteID)
	costs, err := s.r.GetCostsBy(conditions)
	if err != nil {
		return nil, err
	}

	totals := pricing.SumCosts(costs)
	return &JobReport{
		QuoteID:         quote.ID,
		ReferenceNumber: quote.ReferenceNumber,
		QuoteTotalCents: quote.TotalCents,
		Costs:           costs,
		Totals:          totals,
		Projected:       pricing.ComputeProfit(quote.TotalCents, totals.ProjectedCents),
		Actual:          pricing.ComputeProfit(quote.TotalCents, totals.ActualCents),
	}, nil
}

func (s *CostService) Get(id int) (*models.Cost, error) {
	return s.r.GetCost(id)
}

func (s *CostService) Create(req models.CostRequest) (*models.Cost, error) {
	cost, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistCost(cost)
}

func (s *CostService) Update(id int, req models.CostRequest) (*models.Cost, error) {
	cost, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	cost.ID = id
	return s.r.UpdateCost(cost)
}

func (s *CostService) Delete(id int) error {
	return s.r.DeleteCost(id)
}

// fromRequest only accepts costs on approved quotes. Projected is required;
// actual stays zero until invoiced.
func (s *CostService) fromRequest(req models.CostRequest) (models.Cost, error) {
	category, err := metadata.NewVendorCategory(req.VendorCategory)
	if err != nil {
		return models.Cost{}, custom_error.NewValidation(err)
	}

	projected, err := amount("projected_cost", req.ProjectedCents, req.Projected)
	if err != nil {
		return models.Cost{}, err
	}
	if projected == nil {
		return models.Cost{}, custom_error.NewValidation(fmt.Errorf("projected_cost is required"))
	}
	actual, err := amount("actual_cost", req.ActualCents, req.Actual)
	if err != nil {
		return models.Cost{}, err
	}

	quote, err := s.quotes.Get(req.QuoteID)
	if err != nil {
		return models.Cost{}, asReference(err)
	}
	if !quote.Status.IsConfirmed() {
		return models.Cost{}, custom_error.NewValidation(
			fmt.Errorf("quote %s is %s, costs are tracked on approved jobs only", quote.ReferenceNumber, quote.Status))
	}
	if _, err := s.vendors.Get(req.VendorID); err != nil {
		return models.Cost{}, asReference(err)
	}

	cost := models.Cost{
		QuoteID:        req.QuoteID,
		VendorID:       req.VendorID,
		VendorCategory: category,
		ProjectedCents: *projected,
		Notes:          optional(req.Notes),
	}
	if actual != nil {
		cost.ActualCents = *actual
	}
	return cost, nil
}

// amount accepts cents or a dollar string, never both. Nil means absent.
func amount(field string, cents *int64, dollars *string) (*int64, error) {
	hasDollars := dollars != nil && strings.TrimSpace(*dollars) != ""
	switch {
	case cents != nil && hasDollars:
		return nil, custom_error.NewValidation(fmt.Errorf("%s: send cents or dollars, not both", field))
	case cents != nil:
		if *cents < 0 {
			return nil, custom_error.NewValidation(fmt.Errorf("%s cannot be negative", field))
		}
		return cents, nil
	case hasDollars:
		value, err := money.ParseDollars(*dollars)
		if err != nil {
			return nil, custom_error.NewValidation(fmt.Errorf("%s: %w", field, err))
		}
		return &value, nil
	default:
		return nil, nil
	}
}

func asReference(err error) error {
	if custom_error.IsNotFound(err) {
		return custom_error.NewValidation(fmt.Errorf("unknown reference: %v", err))
	}
	return err
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
