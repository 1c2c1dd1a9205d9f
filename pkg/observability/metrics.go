package observability

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portfolio"

// Export results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultCached  = "cached"
)

// Metrics are the collectors of the portfolio site.
type Metrics struct {
	exports        *prometheus.CounterVec
	exportDuration prometheus.Histogram
	inFlight       prometheus.Gauge
	pages          prometheus.Histogram
	pageViews      *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg, reusing collectors that are
// already registered there. A nil reg means the default registerer.
func NewMetrics(reg prometheus.Registerer) (m *Metrics, err error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m = &Metrics{
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cv",
			Name:      "exports_total",
			Help:      "CV exports by result.",
		}, []string{"result"}),
		exportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cv",
			Name:      "export_duration_seconds",
			Help:      "Time spent laying out and encoding a CV.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cv",
			Name:      "exports_in_flight",
			Help:      "CV exports currently running.",
		}),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cv",
			Name:      "pages",
			Help:      "Page count of generated CVs.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8},
		}),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Page views by route, excluding Do Not Track requests.",
		}, []string{"route"}),
	}

	m.exports, err = register(reg, m.exports)
	if err != nil {
		return nil, err
	}
	m.exportDuration, err = register(reg, m.exportDuration)
	if err != nil {
		return nil, err
	}
	m.inFlight, err = register(reg, m.inFlight)
	if err != nil {
		return nil, err
	}
	m.pages, err = register(reg, m.pages)
	if err != nil {
		return nil, err
	}
	m.pageViews, err = register(reg, m.pageViews)
	if err != nil {
		return nil, err
	}
	return m, err
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, errors.Wrap(err, "failed to register metric")
}

// StartExport marks an export as running. The returned func records its
// outcome and must be called exactly once.
func (m *Metrics) StartExport() func(result string, pages int) {
	if m == nil {
		return func(string, int) {}
	}
	m.inFlight.Inc()
	start := time.Now()
	return func(result string, pages int) {
		m.inFlight.Dec()
		m.exports.WithLabelValues(result).Inc()
		if result == ResultSuccess {
			m.exportDuration.Observe(time.Since(start).Seconds())
			m.pages.Observe(float64(pages))
		}
	}
}

// PageView counts a view of route.
func (m *Metrics) PageView(route string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(route).Inc()
}
