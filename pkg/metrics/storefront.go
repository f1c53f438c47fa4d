package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Repository writes, labelled by entity (product, banner, user, shop_info, session) and op.
	Mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_mutations_total",
		Help: "Total repository mutations applied",
	}, []string{"entity", "op"})

	// Best-effort persistence failures, labelled by op (load, save, remove).
	StorageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_storage_failures_total",
		Help: "Durable store reads or writes that failed and were degraded",
	}, []string{"op"})

	AuthAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_auth_attempts_total",
		Help: "Auth gate submissions by mode and result",
	}, []string{"mode", "result"})

	CarouselIndex = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_carousel_index",
		Help: "Banner index currently shown by the carousel",
	})

	DescriptionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_description_latency_seconds",
		Help:    "Latency of product description generation",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		Mutations,
		StorageFailures,
		AuthAttempts,
		CarouselIndex,
		DescriptionLatency,
	)
}
