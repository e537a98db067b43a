package quotes

import (
	"fmt"
	"strings"

	"avrental/internal/metrics"
	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
	"avrental/pkg/pricing"
)

type Repository interface {
	GetQuotesBy(conditions repository.QueryBuilder) ([]models.Quote, error)
	GetQuote(id int) (*models.Quote, error)
	PersistQuote(quote models.Quote) (*models.Quote, error)
	ReplaceQuote(quote models.Quote) (*models.Quote, error)
	UpdateQuoteStatus(id int, status metadata.QuoteStatus) error
	DeleteQuote(id int) error
}

type ClientLookup interface {
	Get(id int) (*models.Client, error)
}

type VenueLookup interface {
	Get(id int) (*models.Venue, error)
}

// QuoteFilter narrows List. Status may hold several comma separated values.
type QuoteFilter struct {
	Status string
	Office string
}

type QuoteService struct {
	r       Repository
	clients ClientLookup
	venues  VenueLookup
	metrics *metrics.AvailabilityMetrics
}

func NewQuoteService(r Repository, clients ClientLookup, venues VenueLookup, m *metrics.AvailabilityMetrics) *QuoteService {
	return &QuoteService{r: r, clients: clients, venues: venues, metrics: m}
}

func (s *QuoteService) List(filter QuoteFilter) ([]models.Quote, error) {
	conditions := repository.NewQueryBuilder()
	if filter.Status != "" {
		var statuses []string
		for _, value := range strings.Split(filter.Status, ",") {
			status, err := metadata.NewQuoteStatus(strings.TrimSpace(value))
			if err != nil {
				return nil, custom_error.NewValidation(err)
			}
			statuses = append(statuses, string(status))
		}
		if len(statuses) == 1 {
			conditions.AddCondition("status", statuses[0])
		} else {
			conditions.AddCondition("status", statuses)
		}
	}
	if filter.Office != "" {
		office, err := metadata.NewOffice(filter.Office)
		if err != nil {
			return nil, custom_error.NewValidation(err)
		}
		conditions.AddCondition("office", string(office))
	}
	return s.r.GetQuotesBy(conditions)
}

// ConfirmedQuotes returns every approved quote. These are the only quotes
// that reserve equipment.
func (s *QuoteService) ConfirmedQuotes() ([]models.Quote, error) {
	return s.List(QuoteFilter{Status: string(metadata.QuoteStatusApproved)})
}

func (s *QuoteService) Get(id int) (*models.Quote, error) {
	return s.r.GetQuote(id)
}

// Preview validates the request and returns the quote with totals filled in,
// without persisting anything.
func (s *QuoteService) Preview(req models.QuoteRequest) (*models.Quote, error) {
	quote, err := prepare(req)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *QuoteService) Create(req models.QuoteRequest) (*models.Quote, error) {
	quote, err := prepare(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(quote); err != nil {
		return nil, err
	}

	saved, err := s.r.PersistQuote(quote)
	if err != nil {
		return nil, err
	}

	s.metrics.IncQuoteSaved(string(saved.Status))
	return saved, nil
}

func (s *QuoteService) Replace(id int, req models.QuoteRequest) (*models.Quote, error) {
	quote, err := prepare(req)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(quote); err != nil {
		return nil, err
	}
	quote.ID = id

	saved, err := s.r.ReplaceQuote(quote)
	if err != nil {
		return nil, err
	}

	s.metrics.IncQuoteSaved(string(saved.Status))
	return saved, nil
}

func (s *QuoteService) ChangeStatus(id int, value string) (metadata.QuoteStatus, error) {
	status, err := metadata.NewQuoteStatus(value)
	if err != nil {
		return "", custom_error.NewValidation(err)
	}
	if err := s.r.UpdateQuoteStatus(id, status); err != nil {
		return "", err
	}
	return status, nil
}

// Delete also drops the quote's shortage gauge.
func (s *QuoteService) Delete(id int) error {
	if err := s.r.DeleteQuote(id); err != nil {
		return err
	}
	s.metrics.ForgetQuote(id)
	return nil
}

// checkReferences makes sure the client and optional venue exist. A missing
// one is the caller's mistake and answers 400, not 404.
func (s *QuoteService) checkReferences(quote models.Quote) error {
	if _, err := s.clients.Get(quote.ClientID); err != nil {
		return asReference(err)
	}
	if quote.VenueID != nil {
		if _, err := s.venues.Get(*quote.VenueID); err != nil {
			return asReference(err)
		}
	}
	return nil
}

func asReference(err error) error {
	if custom_error.IsNotFound(err) {
		return custom_error.NewValidation(fmt.Errorf("unknown reference: %v", err))
	}
	return err
}

// prepare converts the payload, validates it and stamps freshly computed
// totals. Totals sent by the client are discarded here.
func prepare(req models.QuoteRequest) (models.Quote, error) {
	quote := req.ToQuote()
	if quote.Sections == nil {
		quote.Sections = []models.QuoteSection{}
	}

	if err := quote.Validate(); err != nil {
		return models.Quote{}, custom_error.NewValidation(err)
	}

	pricing.ApplyTotals(&quote)
	return quote, nil
}
