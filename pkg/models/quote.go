package models

import (
	"fmt"
	"strings"

	"avrental/pkg/metadata"
)

type Quote struct {
	ID              int                  `json:"id"`
	ReferenceNumber string               `json:"reference_number"`
	ClientID        int                  `json:"client_id"`
	VenueID         *int                 `json:"venue_id,omitempty"`
	EventStartDate  metadata.Date        `json:"event_start_date"`
	EventEndDate    *metadata.Date       `json:"event_end_date,omitempty"`
	Office          metadata.Office      `json:"office"`
	Status          metadata.QuoteStatus `json:"status"`
	Sections        []QuoteSection       `json:"sections"`
	SubtotalCents   int64                `json:"subtotal_cents"`
	TaxCents        int64                `json:"tax_cents"`
	TotalCents      int64                `json:"total_cents"`
}

type QuoteSection struct {
	Name          string      `json:"name"`
	Items         []QuoteItem `json:"items"`
	TaxEnabled    bool        `json:"tax_enabled"`
	TaxRate       int64       `json:"tax_rate"`
	SubtotalCents int64       `json:"subtotal_cents"`
	TaxCents      int64       `json:"tax_cents"`
	TotalCents    int64       `json:"total_cents"`
}

type QuoteItem struct {
	EquipmentID      *int    `json:"equipment_id,omitempty"`
	Quantity         int64   `json:"quantity"`
	PricePerDayCents int64   `json:"price_per_day_cents"`
	NumberOfDays     int64   `json:"number_of_days"`
	IsCustom         bool    `json:"is_custom"`
	Description      *string `json:"description,omitempty"`
	CustomName       *string `json:"custom_name,omitempty"`
	CustomCategory   *string `json:"custom_category,omitempty"`
}

// Validate checks the caller-side preconditions of a line item.
func (i QuoteItem) Validate() error {
	if i.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", i.Quantity)
	}
	if i.NumberOfDays < 1 {
		return fmt.Errorf("number of days must be at least 1, got %d", i.NumberOfDays)
	}
	if i.PricePerDayCents < 0 {
		return fmt.Errorf("price per day cannot be negative")
	}
	if i.IsCustom {
		if i.CustomName == nil || strings.TrimSpace(*i.CustomName) == "" {
			return fmt.Errorf("custom item requires a name")
		}
		return nil
	}
	if i.EquipmentID == nil {
		return fmt.Errorf("catalog item requires equipment_id")
	}
	return nil
}

func (s QuoteSection) Validate() error {
	if s.TaxRate < 0 || s.TaxRate > 100 {
		return fmt.Errorf("section %q: tax rate must be between 0 and 100", s.Name)
	}
	for idx, item := range s.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("section %q item %d: %w", s.Name, idx+1, err)
		}
	}
	return nil
}

func (q *Quote) Validate() error {
	if strings.TrimSpace(q.ReferenceNumber) == "" {
		return fmt.Errorf("reference number is required")
	}
	if q.EventStartDate.IsZero() {
		return fmt.Errorf("event start date is required")
	}
	if !q.Office.IsValid() {
		return fmt.Errorf("invalid office: %s", q.Office)
	}
	if !q.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", q.Status)
	}
	if q.EventEndDate != nil && q.EventEndDate.Before(q.EventStartDate) {
		return fmt.Errorf("event end date %s is before start date %s", q.EventEndDate, q.EventStartDate)
	}
	for _, section := range q.Sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (q *Quote) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   q.ID,
		ResourceType: ResourceQuote,
	}
}

// QuoteRequest is the create/replace payload. Totals are never accepted
// from the client.
type QuoteRequest struct {
	ReferenceNumber string         `json:"reference_number" binding:"required"`
	ClientID        int            `json:"client_id" binding:"required"`
	VenueID         *int           `json:"venue_id"`
	EventStartDate  metadata.Date  `json:"event_start_date"`
	EventEndDate    *metadata.Date `json:"event_end_date"`
	Office          string         `json:"office" binding:"required,office"`
	Status          string         `json:"status" binding:"omitempty,quote_status"`
	Sections        []QuoteSection `json:"sections"`
}

func (r QuoteRequest) ToQuote() Quote {
	status := metadata.QuoteStatus(r.Status)
	if status == "" {
		status = metadata.QuoteStatusDraft
	}
	return Quote{
		ReferenceNumber: strings.TrimSpace(r.ReferenceNumber),
		ClientID:        r.ClientID,
		VenueID:         r.VenueID,
		EventStartDate:  r.EventStartDate,
		EventEndDate:    r.EventEndDate,
		Office:          metadata.Office(strings.ToLower(strings.TrimSpace(r.Office))),
		Status:          status,
		Sections:        r.Sections,
	}
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required,quote_status"`
}
