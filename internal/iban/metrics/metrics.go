package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for IBAN validation.
// Tracks outcomes, cache effectiveness and parse latency.
type Metrics struct {
	Validations    *prometheus.CounterVec
	ValidByCountry *prometheus.CounterVec
	CacheLookups   *prometheus.CounterVec
	ParseDuration  prometheus.Histogram
	BatchSize      prometheus.Histogram
}

// New creates the IBAN metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibanguard_validations_total",
			Help: "IBAN validations by outcome (valid or rejection reason)",
		}, []string{"outcome"}),
		ValidByCountry: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibanguard_valid_ibans_total",
			Help: "Valid IBANs by country code",
		}, []string{"country"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibanguard_cache_lookups_total",
			Help: "Result cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ibanguard_parse_duration_seconds",
			Help:    "Duration of Parse operations including cache access",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ibanguard_batch_size",
			Help:    "Distinct inputs per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// IncrementValid records a valid IBAN for country.
func (m *Metrics) IncrementValid(country string) {
	m.Validations.WithLabelValues("valid").Inc()
	m.ValidByCountry.WithLabelValues(country).Inc()
}

// IncrementRejected records a rejected input.
func (m *Metrics) IncrementRejected(reason string) {
	m.Validations.WithLabelValues(reason).Inc()
}

// IncrementCache records a cache lookup result.
func (m *Metrics) IncrementCache(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveParse records the duration of a Parse operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveParse(start time.Time) {
	m.ParseDuration.Observe(time.Since(start).Seconds())
}

// ObserveBatch records the number of distinct inputs in a batch.
func (m *Metrics) ObserveBatch(size int) {
	m.BatchSize.Observe(float64(size))
}
