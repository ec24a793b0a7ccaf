package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records agent invocation metrics. A nil *Collector is valid
// and records nothing.
type Collector struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewCollector registers the dispatch metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "robotbrain",
			Subsystem: "dispatch",
			Name:      "invocations_total",
			Help:      "Agent invocations by outcome.",
		}, []string{"agent", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "robotbrain",
			Subsystem: "dispatch",
			Name:      "invocation_duration_seconds",
			Help:      "Agent invocation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"agent"}),
	}
}

func (c *Collector) observe(agent, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.invocations.WithLabelValues(agent, status).Inc()
	c.duration.WithLabelValues(agent).Observe(elapsed.Seconds())
}
