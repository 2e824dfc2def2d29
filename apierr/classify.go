package apierr

import (
	"net/http"
	"time"
)

// FromTransport builds the error for calls that never produced a response:
// network failure, timeout, blocked request.
func FromTransport(err error, endpoint string) *ErrorDetails {
	e := &ErrorDetails{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Failed to load response data | Unknown Error",
		Type:      TypeUnknown,
		Timestamp: time.Now(),
		Endpoint:  endpoint,
	}
	if err != nil {
		e.Extra = err.Error()
	}
	return e
}

// The classification contract is an ordered decision: rules are evaluated
// top to bottom and the first matching one wins.
type rule struct {
	match func(status int) bool
	apply func(e *ErrorDetails, b body)
}

var rules = []rule{
	{statusIn(http.StatusUnprocessableEntity, http.StatusBadRequest), applyValidation},
	{statusIn(http.StatusNotFound), applyNotFound},
	{statusIn(http.StatusBadGateway), applyServer("Bad Gateway")},
	{statusIn(http.StatusServiceUnavailable), applyServer("Service is not available right now.")},
	{statusIn(http.StatusGatewayTimeout), applyServer("Gateway Timeout Error")},
	{statusIn(http.StatusInternalServerError), applyServer("Internal Server Error. The server unable to complete your request")},
	{anyStatus, applyOthers},
}

// Classify normalizes a non-2xx response into ErrorDetails. Whatever the
// matched rule set, the actual status, raw body, endpoint and timestamp are
// written last and win.
func Classify(status int, slurp []byte, endpoint string) *ErrorDetails {
	b := parseBody(slurp)
	e := &ErrorDetails{}
	for _, r := range rules {
		if r.match(status) {
			r.apply(e, b)
			break
		}
	}
	e.ErrorCode = status
	e.Raw = string(slurp)
	e.Endpoint = endpoint
	e.Timestamp = time.Now()
	return e
}

func statusIn(statuses ...int) func(int) bool {
	return func(status int) bool {
		for _, s := range statuses {
			if status == s {
				return true
			}
		}
		return false
	}
}

func anyStatus(int) bool { return true }

func applyValidation(e *ErrorDetails, b body) {
	e.Type = TypeFastAPI
	e.Message = b.message()
	if loc, ok := b.validationLocation(); ok {
		e.Location = loc
	}
}

func applyNotFound(e *ErrorDetails, b body) {
	e.Type = TypeNotFound
	e.Message = coalesce(b.message(), "Entity Not Found")
	if id, ok := b.detailID(); ok {
		e.Location = []any{id}
	}
}

func applyServer(fallback string) func(*ErrorDetails, body) {
	return func(e *ErrorDetails, b body) {
		e.Type = TypeServer
		e.Message = coalesce(b.message(), fallback)
	}
}

func applyOthers(e *ErrorDetails, b body) {
	e.Type = TypeOthers
	e.Message = coalesce(b.message(), "Miscellaneous Error")
}
