package quotes

import (
	"database/sql"
	"testing"
	"time"

	"avrental/pkg/metadata"
	"avrental/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsSingleDayEventsOpenEnded(t *testing.T) {
	venue := 9
	quote := models.Quote{
		ReferenceNumber: "Q-7",
		ClientID:        2,
		VenueID:         &venue,
		EventStartDate:  metadata.MustParseDate("2026-05-01"),
		Office:          metadata.OfficePhoenix,
		Status:          metadata.QuoteStatusSent,
	}

	record, err := toRecord(quote)
	require.NoError(t, err)
	assert.Nil(t, record["event_end_date"])
	assert.Equal(t, "2026-05-01", record["event_start_date"])
	assert.Equal(t, "[]", record["sections"])
	assert.Equal(t, "phoenix", record["office"])
}

func TestRecordToQuote(t *testing.T) {
	row := quoteRecord{
		ID:              5,
		ReferenceNumber: "Q-5",
		ClientID:        1,
		VenueID:         sql.NullInt64{Int64: 3, Valid: true},
		EventStartDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EventEndDate:    sql.NullTime{Time: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), Valid: true},
		Office:          "miami",
		Status:          "approved",
		Sections:        []byte(`[{"name":"Video","tax_enabled":false,"tax_rate":0,"items":[{"equipment_id":4,"quantity":2,"price_per_day_cents":100,"number_of_days":1,"is_custom":false}],"subtotal_cents":200,"tax_cents":0,"total_cents":200}]`),
		SubtotalCents:   200,
		TotalCents:      200,
	}

	quote, err := row.toQuote()
	require.NoError(t, err)

	assert.Equal(t, "2026-06-01", quote.EventStartDate.String())
	require.NotNil(t, quote.EventEndDate)
	assert.Equal(t, "2026-06-03", quote.EventEndDate.String())
	require.NotNil(t, quote.VenueID)
	assert.Equal(t, 3, *quote.VenueID)
	assert.True(t, quote.Status.IsConfirmed())
	require.Len(t, quote.Sections, 1)
	require.Len(t, quote.Sections[0].Items, 1)
	assert.Equal(t, 4, *quote.Sections[0].Items[0].EquipmentID)

	row.Sections = []byte(`{not json`)
	_, err = row.toQuote()
	assert.Error(t, err)
}
