package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts batch verdicts. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Entries *prometheus.CounterVec
	Steps   *prometheus.HistogramVec
}

// NewMetrics creates the batch collectors and registers them with reg when
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "furigana",
			Subsystem: "batch",
			Name:      "entries",
		}, []string{"kind", "status"}),
		Steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "furigana",
			Subsystem: "batch",
			Name:      "search_steps",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000, 20000, 200000},
		}, []string{"kind"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Entries, m.Steps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	kind := o.Pair.Kind.String()
	if o.Err != nil {
		m.Entries.WithLabelValues(kind, "invalid").Inc()
		return
	}
	m.Entries.WithLabelValues(kind, o.Result.Status.String()).Inc()
	m.Steps.WithLabelValues(kind).Observe(float64(o.Result.Steps))
}
