package metrics

// Metric names.
const (
	MetricNameHTTPRequestsTotal    = "invtrack_http_requests_total"
	MetricNameHTTPRequestDuration  = "invtrack_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "invtrack_http_requests_in_flight"
	MetricNameAuthAttempts         = "invtrack_auth_attempts_total"
	MetricNameInventoryOperations  = "invtrack_inventory_operations_total"
	MetricNameStoreUp              = "invtrack_store_up"
)

// Help text.
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthAttempts         = "Signup, login and token checks by outcome"
	HelpTextInventoryOperations  = "Inventory store operations by outcome"
	HelpTextStoreUp              = "1 if the last store ping succeeded, 0 otherwise"
)

// Label names.
const (
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeUnauthorized = "unauthorized"
	OutcomeNotFound     = "not_found"
	OutcomeConflict     = "conflict"
	OutcomeError        = "error"
)

// HTTPLatencyBuckets covers a fast JSON API; bcrypt-bound auth calls land in
// the upper buckets.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}
