package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Decode Metrics
var (
	PayloadsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayloadsDecoded,
			Help: HelpTextPayloadsDecoded,
		},
		[]string{LabelResult},
	)

	FieldDegradations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFieldDegradations,
			Help: HelpTextFieldDegradations,
		},
		[]string{LabelField},
	)

	OwnedItemsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOwnedItemsDecoded,
			Help: HelpTextOwnedItemsDecoded,
		},
		[]string{LabelItemType},
	)

	SnapshotCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotCacheHits,
			Help: HelpTextSnapshotCacheHits,
		},
		[]string{LabelOutcome},
	)

	CatalogEggs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEggs,
			Help: HelpTextCatalogEggs,
		},
	)
)
