package devserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the dev server's Prometheus instruments.
type metrics struct {
	pagesServed   *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	reloadClients prometheus.Gauge
	reloadsSent   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		pagesServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "pages_served_total",
			Help:      "Total pages served by path and status",
		}, []string{"path", "status"}),

		renderSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weft",
			Name:      "page_render_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weft",
			Name:      "reload_clients",
			Help:      "Connected live-reload clients",
		}),

		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "reloads_sent_total",
			Help:      "Total reload broadcasts sent",
		}),
	}
}
