// Package availability resolves how many units of a catalog item are free at
// an office for a date range, given snapshots of asset units and confirmed
// quotes. Results are only as fresh as the snapshots passed in.
package availability

import (
	"avrental/pkg/metadata"
	"avrental/pkg/models"
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start metadata.Date
	End   metadata.Date
}

// NewDateRange treats a missing end as a single-day event.
func NewDateRange(start metadata.Date, end *metadata.Date) DateRange {
	if end == nil {
		return DateRange{Start: start, End: start}
	}
	return DateRange{Start: start, End: *end}
}

// Overlaps is inclusive on both ends: a range ending on the day another
// starts overlaps it.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

func QuotePeriod(quote models.Quote) DateRange {
	return NewDateRange(quote.EventStartDate, quote.EventEndDate)
}

type Query struct {
	ItemID int
	Office metadata.Office
	// ExcludeQuoteID keeps a quote from competing with itself. Zero excludes nothing.
	ExcludeQuoteID int
	Period         DateRange
}

// OwnedUnits counts units of the item at the office flagged available.
// Rented and maintenance units never count, regardless of dates.
func OwnedUnits(itemID int, office metadata.Office, units []models.AssetUnit) int64 {
	var count int64
	for _, unit := range units {
		if unit.ItemID == itemID &&
			unit.OfficeLocation == office &&
			unit.Status == metadata.AssetStatusAvailable {
			count++
		}
	}
	return count
}

// Allocated sums the item quantity committed by every confirmed quote at the
// same office whose event overlaps the query period. The caller supplies only
// confirmed quotes.
func Allocated(q Query, confirmed []models.Quote) int64 {
	var allocated int64
	for _, quote := range confirmed {
		if q.ExcludeQuoteID != 0 && quote.ID == q.ExcludeQuoteID {
			continue
		}
		if quote.Office != q.Office {
			continue
		}
		if !QuotePeriod(quote).Overlaps(q.Period) {
			continue
		}
		allocated += ItemQuantity(quote, q.ItemID)
	}
	return allocated
}

// ItemQuantity sums non-custom lines of the quote that reference the item.
func ItemQuantity(quote models.Quote, itemID int) int64 {
	var quantity int64
	for _, section := range quote.Sections {
		for _, item := range section.Items {
			if !item.IsCustom && item.EquipmentID != nil && *item.EquipmentID == itemID {
				quantity += item.Quantity
			}
		}
	}
	return quantity
}

// AvailableQuantity never returns a negative value.
func AvailableQuantity(q Query, units []models.AssetUnit, confirmed []models.Quote) int64 {
	available := OwnedUnits(q.ItemID, q.Office, units) - Allocated(q, confirmed)
	if available < 0 {
		return 0
	}
	return available
}

// Shortage is available minus required. Negative means short by that many.
func Shortage(q Query, required int64, units []models.AssetUnit, confirmed []models.Quote) int64 {
	return AvailableQuantity(q, units, confirmed) - required
}
