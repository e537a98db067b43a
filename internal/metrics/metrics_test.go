package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAvailabilityMetrics(reg)

	m.IncLookup("dallas")
	m.IncLookup("dallas")
	m.IncLookup("")
	m.IncQuoteSaved("approved")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("dallas")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotes.WithLabelValues("approved")))
}

func TestQuoteShortageDoesNotGrowWithRepeatedReads(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAvailabilityMetrics(reg)

	for i := 0; i < 5; i++ {
		m.SetQuoteShortage(7, "miami", 3)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.shortages.WithLabelValues("7", "miami")))

	m.SetQuoteShortage(7, "miami", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shortages.WithLabelValues("7", "miami")))

	m.SetQuoteShortage(8, "dallas", -2)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.shortages.WithLabelValues("8", "dallas")))
}

func TestForgetQuoteDropsSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAvailabilityMetrics(reg)

	m.SetQuoteShortage(7, "miami", 3)
	m.SetQuoteShortage(8, "miami", 1)
	m.ForgetQuote(7)

	assert.Equal(t, 1, testutil.CollectAndCount(m.shortages))
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewAvailabilityMetrics(nil)

	assert.NotPanics(t, func() {
		m.IncLookup("dallas")
		m.SetQuoteShortage(1, "dallas", 4)
		m.ForgetQuote(1)
		m.IncQuoteSaved("draft")
	})

	var nilMetrics *AvailabilityMetrics
	assert.NotPanics(t, func() { nilMetrics.IncLookup("dallas") })
}
