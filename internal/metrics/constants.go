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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameDigSessionsStarted = "dig_sessions_started_total"
	MetricNameDigOutcomes        = "dig_outcomes_total"
	MetricNameItemsDiscovered    = "items_discovered_total"
	MetricNameMemoriesDiscovered = "memories_discovered_total"
	MetricNameMemoriesCreated    = "memories_created_total"
	MetricNameBoostsArmed        = "boosts_armed_total"
	MetricNameBonusDigsConsumed  = "bonus_digs_consumed_total"
	MetricNameAllowanceExhausted = "allowance_exhausted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextDigSessionsStarted = "Total number of dig sessions started"
	HelpTextDigOutcomes        = "Total number of resolved digs by outcome"
	HelpTextItemsDiscovered    = "Total number of items discovered"
	HelpTextMemoriesDiscovered = "Total number of memories discovered"
	HelpTextMemoriesCreated    = "Total number of memories sealed"
	HelpTextBoostsArmed        = "Total number of boosts armed"
	HelpTextBonusDigsConsumed  = "Total number of bonus digs consumed"
	HelpTextAllowanceExhausted = "Total number of digs refused for exhausted allowance"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelOutcome  = "outcome"
	LabelItemType = "item_type"
	LabelRarity   = "rarity"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
