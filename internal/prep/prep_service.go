package prep

import (
	"fmt"
	"slices"

	"avrental/internal/metrics"
	"avrental/pkg/availability"
	custom_error "avrental/pkg/errors"
	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

type AssetSource interface {
	ListAll() ([]models.AssetUnit, error)
}

type QuoteSource interface {
	Get(id int) (*models.Quote, error)
	ConfirmedQuotes() ([]models.Quote, error)
}

type CatalogSource interface {
	List(category string) ([]models.CatalogItem, error)
}

type SubrentalSource interface {
	ForQuote(quoteID int) ([]models.Subrental, error)
}

type AvailabilityRequest struct {
	ItemID         int
	Office         string
	Start          string
	End            string
	ExcludeQuoteID int
}

type PullListLine struct {
	EquipmentID     int               `json:"equipment_id"`
	Name            string            `json:"name,omitempty"`
	Category        metadata.Category `json:"category,omitempty"`
	Required        int64             `json:"required"`
	Available       int64             `json:"available"`
	Shortage        int64             `json:"shortage"`
	SubrentalNeeded int64             `json:"subrental_needed"`
	Subrented       int64             `json:"subrented"`
	Uncovered       int64             `json:"uncovered"`
}

type PullList struct {
	QuoteID         int             `json:"quote_id"`
	ReferenceNumber string          `json:"reference_number"`
	Office          metadata.Office `json:"office"`
	EventStartDate  metadata.Date   `json:"event_start_date"`
	EventEndDate    metadata.Date   `json:"event_end_date"`
	Lines           []PullListLine  `json:"lines"`
}

type OfficeSummary struct {
	Office metadata.Office `json:"office"`
	Label  string          `json:"label"`
	availability.StatusCounts
	Total int `json:"total"`
}

type PrepService struct {
	assets     AssetSource
	quotes     QuoteSource
	catalog    CatalogSource
	subrentals SubrentalSource
	metrics    *metrics.AvailabilityMetrics
}

func NewPrepService(a AssetSource, q QuoteSource, c CatalogSource, sr SubrentalSource, m *metrics.AvailabilityMetrics) *PrepService {
	return &PrepService{
		assets:     a,
		quotes:     q,
		catalog:    c,
		subrentals: sr,
		metrics:    m,
	}
}

// Availability answers a single item/office/period lookup against fresh
// snapshots of units and confirmed quotes.
func (s *PrepService) Availability(req AvailabilityRequest) (int64, error) {
	query, err := buildQuery(req)
	if err != nil {
		return 0, custom_error.NewValidation(err)
	}

	units, confirmed, err := s.snapshots()
	if err != nil {
		return 0, err
	}

	s.metrics.IncLookup(string(query.Office))
	return availability.AvailableQuantity(query, units, confirmed), nil
}

// PullList reports, for every catalog item the quote asks for, how many
// units are free once other confirmed quotes are accounted for. The quote
// never competes with itself. Booked subrentals reduce what is left uncovered,
// and the quote's shortage gauge is set to the uncovered total.
func (s *PrepService) PullList(quoteID int) (*PullList, error) {
	quote, err := s.quotes.Get(quoteID)
	if err != nil {
		return nil, err
	}

	units, confirmed, err := s.snapshots()
	if err != nil {
		return nil, err
	}

	items, err := s.catalog.List("")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := make(map[int]models.CatalogItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}

	booked, err := s.subrentals.ForQuote(quote.ID)
	if err != nil {
		return nil, fmt.Errorf("load subrentals: %w", err)
	}
	subrented := make(map[int]int64, len(booked))
	for _, subrental := range booked {
		subrented[subrental.EquipmentID] += subrental.Quantity
	}

	period := availability.QuotePeriod(*quote)
	list := &PullList{
		QuoteID:         quote.ID,
		ReferenceNumber: quote.ReferenceNumber,
		Office:          quote.Office,
		EventStartDate:  period.Start,
		EventEndDate:    period.End,
		Lines:           []PullListLine{},
	}

	var uncovered int64
	for _, equipmentID := range equipmentIDs(*quote) {
		query := availability.Query{
			ItemID:         equipmentID,
			Office:         quote.Office,
			ExcludeQuoteID: quote.ID,
			Period:         period,
		}
		required := availability.ItemQuantity(*quote, equipmentID)
		available := availability.AvailableQuantity(query, units, confirmed)
		shortage := available - required

		line := PullListLine{
			EquipmentID:     equipmentID,
			Required:        required,
			Available:       available,
			Shortage:        shortage,
			SubrentalNeeded: max(0, -shortage),
			Subrented:       subrented[equipmentID],
		}
		line.Uncovered = max(0, line.SubrentalNeeded-line.Subrented)
		if item, ok := catalog[equipmentID]; ok {
			line.Name = item.Name
			line.Category = item.Category
		}

		uncovered += line.Uncovered
		list.Lines = append(list.Lines, line)
	}

	s.metrics.SetQuoteShortage(quote.ID, string(quote.Office), uncovered)

	return list, nil
}

func (s *PrepService) OfficeDashboard() ([]OfficeSummary, error) {
	units, err := s.assets.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load asset units: %w", err)
	}

	summary := availability.SummarizeOffices(units)
	dashboard := make([]OfficeSummary, 0, len(metadata.Offices))
	for _, office := range metadata.Offices {
		counts := summary[office]
		dashboard = append(dashboard, OfficeSummary{
			Office:       office,
			Label:        office.Label(),
			StatusCounts: counts,
			Total:        counts.Total(),
		})
	}

	return dashboard, nil
}

func (s *PrepService) snapshots() ([]models.AssetUnit, []models.Quote, error) {
	units, err := s.assets.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load asset units: %w", err)
	}

	confirmed, err := s.quotes.ConfirmedQuotes()
	if err != nil {
		return nil, nil, fmt.Errorf("load confirmed quotes: %w", err)
	}

	return units, confirmed, nil
}

func buildQuery(req AvailabilityRequest) (availability.Query, error) {
	if req.ItemID <= 0 {
		return availability.Query{}, fmt.Errorf("item_id must be a positive integer")
	}

	office, err := metadata.NewOffice(req.Office)
	if err != nil {
		return availability.Query{}, err
	}

	start, err := metadata.ParseDate(req.Start)
	if err != nil {
		return availability.Query{}, fmt.Errorf("invalid start: %w", err)
	}

	var end *metadata.Date
	if req.End != "" {
		parsed, err := metadata.ParseDate(req.End)
		if err != nil {
			return availability.Query{}, fmt.Errorf("invalid end: %w", err)
		}
		if parsed.Before(start) {
			return availability.Query{}, fmt.Errorf("end %s is before start %s", parsed, start)
		}
		end = &parsed
	}

	return availability.Query{
		ItemID:         req.ItemID,
		Office:         office,
		ExcludeQuoteID: req.ExcludeQuoteID,
		Period:         availability.NewDateRange(start, end),
	}, nil
}

// equipmentIDs lists the catalog items referenced by non-custom lines, in
// ascending order.
func equipmentIDs(quote models.Quote) []int {
	seen := map[int]bool{}
	var ids []int
	for _, section := range quote.Sections {
		for _, item := range section.Items {
			if item.IsCustom || item.EquipmentID == nil || seen[*item.EquipmentID] {
				continue
			}
			seen[*item.EquipmentID] = true
			ids = append(ids, *item.EquipmentID)
		}
	}
	slices.Sort(ids)
	return ids
}
