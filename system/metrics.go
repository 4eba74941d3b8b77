package system

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeEscaped  = "escaped"
	outcomeImpacted = "impacted"
	outcomeRemoved  = "removed"
)

// Metrics exports simulation counters on its own registry
// A nil *Metrics is valid and records nothing
type Metrics struct {
	registry *prometheus.Registry

	spawnedTotal  prometheus.Counter
	outcomesTotal *prometheus.CounterVec
	freeBodies    prometheus.Gauge
	explosions    prometheus.Gauge
	simTime       prometheus.Gauge
	frameDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		spawnedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_bodies_spawned_total",
			Help: "Total number of free bodies spawned",
		}),
		outcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_body_outcomes_total",
				Help: "Free bodies leaving the live set, by outcome and impact target",
			},
			[]string{"outcome", "target"},
		),
		freeBodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_free_bodies",
			Help: "Free bodies in the live set",
		}),
		explosions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_explosions",
			Help: "Explosions still animating",
		}),
		simTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_simulation_time",
			Help: "Accumulated simulation time",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_frame_duration_seconds",
			Help:    "Time spent advancing one frame",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
	}

	m.registry.MustRegister(
		m.spawnedTotal,
		m.outcomesTotal,
		m.freeBodies,
		m.explosions,
		m.simTime,
		m.frameDuration,
	)
	return m
}

// Registry returns the underlying registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) spawned() {
	if m == nil {
		return
	}
	m.spawnedTotal.Inc()
}

func (m *Metrics) outcome(kind, target string) {
	if m == nil {
		return
	}
	m.outcomesTotal.WithLabelValues(kind, target).Inc()
}

func (m *Metrics) observeFrame(d time.Duration, bodies, explosions int, simTime float64) {
	if m == nil {
		return
	}
	m.frameDuration.Observe(d.Seconds())
	m.freeBodies.Set(float64(bodies))
	m.explosions.Set(float64(explosions))
	m.simTime.Set(simTime)
}
