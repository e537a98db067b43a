package availability

import (
	"testing"

	"avrental/pkg/metadata"
	"avrental/pkg/models"

	"github.com/stretchr/testify/assert"
)

const itemX = 10

func date(value string) metadata.Date {
	return metadata.MustParseDate(value)
}

func datePtr(value string) *metadata.Date {
	d := date(value)
	return &d
}

func units(itemID int, office metadata.Office, status metadata.AssetStatus, n int) []models.AssetUnit {
	out := make([]models.AssetUnit, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.AssetUnit{
			ID:             len(out) + 1,
			ItemID:         itemID,
			OfficeLocation: office,
			Status:         status,
		})
	}
	return out
}

func booking(id int, office metadata.Office, start string, end *metadata.Date, items ...models.QuoteItem) models.Quote {
	return models.Quote{
		ID:             id,
		Office:         office,
		Status:         metadata.QuoteStatusApproved,
		EventStartDate: date(start),
		EventEndDate:   end,
		Sections:       []models.QuoteSection{{Name: "Main", Items: items}},
	}
}

func line(itemID int, qty int64) models.QuoteItem {
	return models.QuoteItem{EquipmentID: &itemID, Quantity: qty, NumberOfDays: 1}
}

func query(start, end string) Query {
	return Query{
		ItemID: itemX,
		Office: metadata.OfficeDallas,
		Period: NewDateRange(date(start), datePtr(end)),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		expected bool
	}{
		{"identical", NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), true},
		{"ends on query start", NewDateRange(date("2025-06-08"), datePtr("2025-06-10")), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), true},
		{"starts on query end", NewDateRange(date("2025-06-12"), datePtr("2025-06-14")), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), true},
		{"day before", NewDateRange(date("2025-06-07"), datePtr("2025-06-09")), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), false},
		{"day after", NewDateRange(date("2025-06-13"), nil), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), false},
		{"contained", NewDateRange(date("2025-06-11"), nil), NewDateRange(date("2025-06-10"), datePtr("2025-06-12")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestNewDateRangeWithoutEndIsSingleDay(t *testing.T) {
	r := NewDateRange(date("2025-06-10"), nil)
	assert.Equal(t, date("2025-06-10"), r.Start)
	assert.Equal(t, date("2025-06-10"), r.End)
}

func TestAvailableQuantity(t *testing.T) {
	stock := units(itemX, metadata.OfficeDallas, metadata.AssetStatusAvailable, 5)

	tests := []struct {
		name      string
		units     []models.AssetUnit
		confirmed []models.Quote
		query     Query
		expected  int64
	}{
		{
			name:     "no bookings",
			units:    stock,
			query:    query("2025-06-10", "2025-06-12"),
			expected: 5,
		},
		{
			name:      "overlapping booking at same office",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-11", nil, line(itemX, 3))},
			query:     query("2025-06-10", "2025-06-12"),
			expected:  2,
		},
		{
			name:      "booking at another office is ignored",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeMiami, "2025-06-11", nil, line(itemX, 3))},
			query:     query("2025-06-10", "2025-06-12"),
			expected:  5,
		},
		{
			name:      "non overlapping booking is ignored",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-07-01", datePtr("2025-07-03"), line(itemX, 3))},
			query:     query("2025-06-10", "2025-06-12"),
			expected:  5,
		},
		{
			name:      "booking ending on query start overlaps",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-05", datePtr("2025-06-10"), line(itemX, 1))},
			query:     query("2025-06-10", "2025-06-12"),
			expected:  4,
		},
		{
			name:      "excluded quote does not count against itself",
			units:     stock,
			confirmed: []models.Quote{booking(7, metadata.OfficeDallas, "2025-06-10", nil, line(itemX, 3))},
			query:     Query{ItemID: itemX, Office: metadata.OfficeDallas, ExcludeQuoteID: 7, Period: NewDateRange(date("2025-06-10"), nil)},
			expected:  5,
		},
		{
			name:  "other items and custom lines are ignored",
			units: stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-10", nil,
				line(99, 4),
				models.QuoteItem{IsCustom: true, EquipmentID: intPtr(itemX), Quantity: 4, NumberOfDays: 1},
			)},
			query:    query("2025-06-10", "2025-06-10"),
			expected: 5,
		},
		{
			name:     "units in other statuses are never available",
			units:    append(units(itemX, metadata.OfficeDallas, metadata.AssetStatusRented, 2), units(itemX, metadata.OfficeDallas, metadata.AssetStatusMaintenance, 2)...),
			query:    query("2025-06-10", "2025-06-12"),
			expected: 0,
		},
		{
			name:      "over allocation clamps to zero",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-10", nil, line(itemX, 4)), booking(2, metadata.OfficeDallas, "2025-06-12", nil, line(itemX, 4))},
			query:     query("2025-06-10", "2025-06-12"),
			expected:  0,
		},
		{
			name:      "quantities across sections accumulate",
			units:     stock,
			confirmed: []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-10", nil, line(itemX, 1), line(itemX, 2))},
			query:     query("2025-06-10", "2025-06-10"),
			expected:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableQuantity(tt.query, tt.units, tt.confirmed)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestShortage(t *testing.T) {
	stock := units(itemX, metadata.OfficeDallas, metadata.AssetStatusAvailable, 5)
	confirmed := []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-10", datePtr("2025-06-11"), line(itemX, 3))}
	q := query("2025-06-11", "2025-06-12")

	assert.Equal(t, int64(2), AvailableQuantity(q, stock, confirmed))
	assert.Equal(t, int64(-2), Shortage(q, 4, stock, confirmed))
	assert.Equal(t, int64(0), Shortage(q, 2, stock, confirmed))
	assert.Equal(t, int64(1), Shortage(q, 1, stock, confirmed))
}

func TestSingleDayQuoteWithoutEndDate(t *testing.T) {
	stock := units(itemX, metadata.OfficeDallas, metadata.AssetStatusAvailable, 5)
	confirmed := []models.Quote{booking(1, metadata.OfficeDallas, "2025-06-10", nil, line(itemX, 3))}

	assert.Equal(t, int64(2), AvailableQuantity(query("2025-06-10", "2025-06-10"), stock, confirmed))
	assert.Equal(t, int64(5), AvailableQuantity(query("2025-06-11", "2025-06-12"), stock, confirmed))
	assert.Equal(t, int64(5), AvailableQuantity(query("2025-06-08", "2025-06-09"), stock, confirmed))
}

func intPtr(v int) *int { return &v }
