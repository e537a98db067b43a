package quotes

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

// quoteRecord is the row shape of the quotes table. Sections live in a
// JSONB column and dates come back from lib/pq as time.Time.
type quoteRecord struct {
	ID              int           `db:"id"`
	ReferenceNumber string        `db:"reference_number"`
	ClientID        int           `db:"client_id"`
	VenueID         sql.NullInt64 `db:"venue_id"`
	EventStartDate  time.Time     `db:"event_start_date"`
	EventEndDate    sql.NullTime  `db:"event_end_date"`
	Office          string        `db:"office"`
	Status          string        `db:"status"`
	Sections        []byte        `db:"sections"`
	SubtotalCents   int64         `db:"subtotal_cents"`
	TaxCents        int64         `db:"tax_cents"`
	TotalCents      int64         `db:"total_cents"`
}

func (r quoteRecord) toQuote() (models.Quote, error) {
	quote := models.Quote{
		ID:              r.ID,
		ReferenceNumber: r.ReferenceNumber,
		ClientID:        r.ClientID,
		EventStartDate:  metadata.NewDate(r.EventStartDate.Year(), r.EventStartDate.Month(), r.EventStartDate.Day()),
		Office:          metadata.Office(r.Office),
		Status:          metadata.QuoteStatus(r.Status),
		Sections:        []models.QuoteSection{},
		SubtotalCents:   r.SubtotalCents,
		TaxCents:        r.TaxCents,
		TotalCents:      r.TotalCents,
	}

	if r.VenueID.Valid {
		venueID := int(r.VenueID.Int64)
		quote.VenueID = &venueID
	}
	if r.EventEndDate.Valid {
		end := metadata.NewDate(r.EventEndDate.Time.Year(), r.EventEndDate.Time.Month(), r.EventEndDate.Time.Day())
		quote.EventEndDate = &end
	}
	if len(r.Sections) > 0 {
		if err := json.Unmarshal(r.Sections, &quote.Sections); err != nil {
			return models.Quote{}, fmt.Errorf("decode sections of quote %d: %w", r.ID, err)
		}
	}

	return quote, nil
}

func toRecord(quote models.Quote) (map[string]interface{}, error) {
	sections := quote.Sections
	if sections == nil {
		sections = []models.QuoteSection{}
	}
	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("encode sections: %w", err)
	}

	record := map[string]interface{}{
		"reference_number": quote.ReferenceNumber,
		"client_id":        quote.ClientID,
		"venue_id":         quote.VenueID,
		"event_start_date": quote.EventStartDate.String(),
		"event_end_date":   nil,
		"office":           string(quote.Office),
		"status":           string(quote.Status),
		"sections":         string(sectionsJSON),
		"subtotal_cents":   quote.SubtotalCents,
		"tax_cents":        quote.TaxCents,
		"total_cents":      quote.TotalCents,
	}
	if quote.EventEndDate != nil {
		record["event_end_date"] = quote.EventEndDate.String()
	}

	return record, nil
}
