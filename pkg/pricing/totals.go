// Package pricing computes quote totals in integer cents.
//
// Line total is price per day * quantity * days. Section tax is the section
// subtotal times the integer percentage rate, rounded half up to the cent.
// Quote totals are the elementwise sum of section totals; tax never
// compounds across sections.
package pricing

import "avrental/pkg/models"

type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

func (t Totals) Add(other Totals) Totals {
	return Totals{
		SubtotalCents: t.SubtotalCents + other.SubtotalCents,
		TaxCents:      t.TaxCents + other.TaxCents,
		TotalCents:    t.TotalCents + other.TotalCents,
	}
}

// LineTotalCents assumes a validated item (quantity and days >= 1).
func LineTotalCents(item models.QuoteItem) int64 {
	return item.PricePerDayCents * item.Quantity * item.NumberOfDays
}

// TaxCents rounds subtotal*rate/100 half up. Both inputs are non-negative.
func TaxCents(subtotalCents, taxRate int64) int64 {
	return (subtotalCents*taxRate + 50) / 100
}

func ComputeSectionTotals(section models.QuoteSection) Totals {
	var subtotal int64
	for _, item := range section.Items {
		subtotal += LineTotalCents(item)
	}

	var tax int64
	if section.TaxEnabled {
		tax = TaxCents(subtotal, section.TaxRate)
	}

	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

func ComputeQuoteTotals(sections []models.QuoteSection) Totals {
	var totals Totals
	for _, section := range sections {
		totals = totals.Add(ComputeSectionTotals(section))
	}
	return totals
}

// ApplyTotals overwrites every stored total on the quote and its sections
// with freshly computed values.
func ApplyTotals(quote *models.Quote) Totals {
	var totals Totals
	for i := range quote.Sections {
		sectionTotals := ComputeSectionTotals(quote.Sections[i])
		quote.Sections[i].SubtotalCents = sectionTotals.SubtotalCents
		quote.Sections[i].TaxCents = sectionTotals.TaxCents
		quote.Sections[i].TotalCents = sectionTotals.TotalCents
		totals = totals.Add(sectionTotals)
	}

	quote.SubtotalCents = totals.SubtotalCents
	quote.TaxCents = totals.TaxCents
	quote.TotalCents = totals.TotalCents

	return totals
}
