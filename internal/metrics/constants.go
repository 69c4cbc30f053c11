package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Decode metric names
const (
	MetricNamePayloadsDecoded   = "payloads_decoded_total"
	MetricNameFieldDegradations = "payload_field_degradations_total"
	MetricNameOwnedItemsDecoded = "owned_items_decoded_total"
	MetricNameSnapshotCacheHits = "snapshot_cache_lookups_total"
	MetricNameCatalogEggs       = "catalog_eggs_loaded"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextPayloadsDecoded   = "Total number of user item payloads decoded, by result"
	HelpTextFieldDegradations = "Total number of payload fields replaced by their empty value"
	HelpTextOwnedItemsDecoded = "Total number of owned item records produced, by item type"
	HelpTextSnapshotCacheHits = "Snapshot cache lookups, by outcome"
	HelpTextCatalogEggs       = "Number of egg definitions in the loaded catalog"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelResult   = "result"
	LabelField    = "field"
	LabelItemType = "item_type"
	LabelOutcome  = "outcome"
)

// Label values
const (
	ResultOK         = "ok"
	ResultDegraded   = "degraded"
	ResultStructural = "structural_error"

	OutcomeHit  = "hit"
	OutcomeMiss = "miss"

	UnmatchedRoute = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
