package apierr

import (
	"net/http"
	"time"
)

// Type buckets a failed request for UI-side branching.
type Type string

const (
	TypeFastAPI  Type = "fastapiError" // structured validation failure (400/422)
	TypeNotFound Type = "notFound"
	TypeServer   Type = "serverError" // 500/502/503/504
	TypeUnknown  Type = "unknown"     // no response reached us at all
	TypeOthers   Type = "others"      // any unclassified status
)

// ErrorDetails is the uniform shape every failed request collapses into.
// Exactly one is produced per failure, with ErrorCode and Endpoint always
// populated.
type ErrorDetails struct {
	ErrorCode int    // HTTP status, or 500 when no response arrived
	Message   string // human-ish summary
	Type      Type
	Location  []any  // validation path segments (strings and ints), if any
	Extra     string // underlying transport error text, if any
	Raw       string // full response body, as received
	Timestamp time.Time
	Endpoint  string // request URL
}

func (e *ErrorDetails) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.ErrorCode)
}
