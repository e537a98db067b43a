package subrentals

import (
	"fmt"
	"strings"

	"avrental/internal/repository"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/models"
)

type Repository interface {
	GetSubrentalsBy(conditions repository.QueryBuilder) ([]models.Subrental, error)
	GetSubrental(id int) (*models.Subrental, error)
	PersistSubrental(subrental models.Subrental) (*models.Subrental, error)
	UpdateSubrental(subrental models.Subrental) (*models.Subrental, error)
	DeleteSubrental(id int) error
}

type QuoteSource interface {
	Get(id int) (*models.Quote, error)
}

type VendorLookup interface {
	Get(id int) (*models.Vendor, error)
}

// SubrentalFilter narrows List. Nil fields are ignored.
type SubrentalFilter struct {
	QuoteID  *int
	VendorID *int
}

type SubrentalService struct {
	r       Repository
	quotes  QuoteSource
	vendors VendorLookup
}

func NewSubrentalService(r Repository, quotes QuoteSource, vendors VendorLookup) *SubrentalService {
	return &SubrentalService{r: r, quotes: quotes, vendors: vendors}
}

func (s *SubrentalService) List(filter SubrentalFilter) ([]models.Subrental, error) {
	conditions := repository.NewQueryBuilder()
	if filter.QuoteID != nil {
		conditions.AddCondition("quote_id", *filter.QuoteID)
	}
	if filter.VendorID != nil {
		conditions.AddCondition("vendor_id", *filter.VendorID)
	}
	return s.r.GetSubrentalsBy(conditions)
}

// ForQuote lists the subrentals booked against one quote. The quote must exist.
func (s *SubrentalService) ForQuote(quoteID int) ([]models.Subrental, error) {
	if _, err := s.quotes.Get(quoteID); err != nil {
		return nil, err
	}
	return s.List(SubrentalFilter{QuoteID: &quoteID})
}

func (s *SubrentalService) Get(id int) (*models.Subrental, error) {
	return s.r.GetSubrental(id)
}

func (s *SubrentalService) Create(req models.SubrentalRequest) (*models.Subrental, error) {
	subrental, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.r.PersistSubrental(subrental)
}

func (s *SubrentalService) Update(id int, req models.SubrentalRequest) (*models.Subrental, error) {
	subrental, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	subrental.ID = id
	return s.r.UpdateSubrental(subrental)
}

func (s *SubrentalService) Delete(id int) error {
	return s.r.DeleteSubrental(id)
}

// fromRequest requires the quote to carry a catalog line for the equipment.
// Custom lines cannot be subrented.
func (s *SubrentalService) fromRequest(req models.SubrentalRequest) (models.Subrental, error) {
	if req.Quantity < 1 {
		return models.Subrental{}, custom_error.NewValidation(fmt.Errorf("quantity must be at least 1, got %d", req.Quantity))
	}

	quote, err := s.quotes.Get(req.QuoteID)
	if err != nil {
		return models.Subrental{}, asReference(err)
	}
	if !quotesEquipment(quote, req.EquipmentID) {
		return models.Subrental{}, custom_error.NewValidation(
			fmt.Errorf("quote %s has no catalog line for equipment %d", quote.ReferenceNumber, req.EquipmentID))
	}
	if _, err := s.vendors.Get(req.VendorID); err != nil {
		return models.Subrental{}, asReference(err)
	}

	return models.Subrental{
		QuoteID:     req.QuoteID,
		EquipmentID: req.EquipmentID,
		VendorID:    req.VendorID,
		Quantity:    req.Quantity,
		Notes:       optional(req.Notes),
	}, nil
}

func quotesEquipment(quote *models.Quote, equipmentID int) bool {
	for _, section := range quote.Sections {
		for _, item := range section.Items {
			if !item.IsCustom && item.EquipmentID != nil && *item.EquipmentID == equipmentID {
				return true
			}
		}
	}
	return false
}

// asReference reports a dangling id in the payload as a bad request. The
// NotFoundError is flattened so it no longer maps to 404.
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
