package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// AvailabilityMetrics counts availability lookups and tracks the shortages
// pull lists currently report.
type AvailabilityMetrics struct {
	lookups   *prometheus.CounterVec
	shortages *prometheus.GaugeVec
	quotes    *prometheus.CounterVec
}

// NewAvailabilityMetrics registers the collectors on reg. A nil registerer
// yields a no-op recorder.
func NewAvailabilityMetrics(reg prometheus.Registerer) *AvailabilityMetrics {
	if reg == nil {
		return &AvailabilityMetrics{}
	}
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "availability_lookups_total",
		Help: "Availability lookups served, by office.",
	}, []string{"office"})
	shortages := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quote_subrental_needed_units",
		Help: "Units a quote still has to subrent, as of its latest pull list.",
	}, []string{"quote_id", "office"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_saved_total",
		Help: "Quotes persisted with recomputed totals, by status.",
	}, []string{"status"})
	reg.MustRegister(lookups, shortages, quotes)

	return &AvailabilityMetrics{
		lookups:   lookups,
		shortages: shortages,
		quotes:    quotes,
	}
}

func (m *AvailabilityMetrics) IncLookup(office string) {
	if m == nil || m.lookups == nil {
		return
	}
	m.lookups.WithLabelValues(normalizeLabel(office)).Inc()
}

// SetQuoteShortage replaces the quote's shortage with units. Computing the
// same pull list again leaves the value unchanged.
func (m *AvailabilityMetrics) SetQuoteShortage(quoteID int, office string, units int64) {
	if m == nil || m.shortages == nil {
		return
	}
	m.shortages.WithLabelValues(strconv.Itoa(quoteID), normalizeLabel(office)).Set(float64(max(0, units)))
}

// ForgetQuote drops the shortage series of a deleted quote.
func (m *AvailabilityMetrics) ForgetQuote(quoteID int) {
	if m == nil || m.shortages == nil {
		return
	}
	m.shortages.DeletePartialMatch(prometheus.Labels{"quote_id": strconv.Itoa(quoteID)})
}

func (m *AvailabilityMetrics) IncQuoteSaved(status string) {
	if m == nil || m.quotes == nil {
		return
	}
	m.quotes.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
