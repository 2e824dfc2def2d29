package apierr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/n3eg/fetchx/apierr"
)

func TestFromTransport_Shape(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := apierr.FromTransport(cause, "http://localhost:5000/items")

	if e.ErrorCode != 500 {
		t.Fatalf("ErrorCode=%d want 500", e.ErrorCode)
	}
	if e.Type != apierr.TypeUnknown {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeUnknown)
	}
	if e.Message != "Failed to load response data | Unknown Error" {
		t.Fatalf("Message=%q", e.Message)
	}
	if e.Extra != cause.Error() {
		t.Fatalf("Extra=%q want %q", e.Extra, cause.Error())
	}
	if e.Endpoint != "http://localhost:5000/items" {
		t.Fatalf("Endpoint=%q", e.Endpoint)
	}
	if e.Timestamp.IsZero() {
		t.Fatalf("Timestamp not set")
	}
}

func TestClassify_ValidationError(t *testing.T) {
	body := []byte(`{"detail":[{"msg":"field required","loc":["body","name"]}]}`)
	e := apierr.Classify(422, body, "/items")

	if e.Type != apierr.TypeFastAPI {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeFastAPI)
	}
	if e.Message != "field required" {
		t.Fatalf("Message=%q want %q", e.Message, "field required")
	}
	if e.ErrorCode != 422 {
		t.Fatalf("ErrorCode=%d want 422", e.ErrorCode)
	}
	if len(e.Location) != 2 || e.Location[0] != "body" || e.Location[1] != "name" {
		t.Fatalf("Location=%#v want [body name]", e.Location)
	}
}

func TestClassify_ValidationError_NumericLoc(t *testing.T) {
	body := []byte(`{"detail":[{"msg":"value is not a valid integer","loc":["body","items",0,"qty"]}]}`)
	e := apierr.Classify(400, body, "/items")

	if e.Type != apierr.TypeFastAPI {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeFastAPI)
	}
	if len(e.Location) != 4 {
		t.Fatalf("Location=%#v want 4 segments", e.Location)
	}
	if e.Location[2] != 0 {
		t.Fatalf("Location[2]=%#v (%T) want int 0", e.Location[2], e.Location[2])
	}
}

func TestClassify_NotFound_EmptyBody(t *testing.T) {
	e := apierr.Classify(404, []byte(`{}`), "/items/42")

	if e.Type != apierr.TypeNotFound {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeNotFound)
	}
	if e.Message != "Entity Not Found" {
		t.Fatalf("Message=%q want %q", e.Message, "Entity Not Found")
	}
	if e.ErrorCode != 404 {
		t.Fatalf("ErrorCode=%d want 404", e.ErrorCode)
	}
	if e.Location != nil {
		t.Fatalf("Location=%#v want nil", e.Location)
	}
}

func TestClassify_NotFound_DetailID(t *testing.T) {
	body := []byte(`{"detail":{"message":"item gone","id":42}}`)
	e := apierr.Classify(404, body, "/items/42")

	if e.Message != "item gone" {
		t.Fatalf("Message=%q want %q", e.Message, "item gone")
	}
	if len(e.Location) != 1 || e.Location[0] != 42 {
		t.Fatalf("Location=%#v want [42]", e.Location)
	}
}

func TestClassify_ServerErrors_Fallbacks(t *testing.T) {
	cases := []struct {
		status  int
		message string
	}{
		{502, "Bad Gateway"},
		{503, "Service is not available right now."},
		{504, "Gateway Timeout Error"},
		{500, "Internal Server Error. The server unable to complete your request"},
	}
	for _, tc := range cases {
		e := apierr.Classify(tc.status, []byte(`{}`), "/x")
		if e.Type != apierr.TypeServer {
			t.Fatalf("status %d: Type=%q want %q", tc.status, e.Type, apierr.TypeServer)
		}
		if e.Message != tc.message {
			t.Fatalf("status %d: Message=%q want %q", tc.status, e.Message, tc.message)
		}
		if e.ErrorCode != tc.status {
			t.Fatalf("status %d: ErrorCode=%d", tc.status, e.ErrorCode)
		}
	}
}

func TestClassify_ServerError_ExtractedMessage(t *testing.T) {
	e := apierr.Classify(503, []byte(`{"message":"maintenance window"}`), "/x")
	if e.Message != "maintenance window" {
		t.Fatalf("Message=%q", e.Message)
	}
}

func TestClassify_Others_UnmappedStatus(t *testing.T) {
	e := apierr.Classify(418, []byte(`{"msg":"teapot"}`), "/brew")

	if e.Type != apierr.TypeOthers {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeOthers)
	}
	if e.Message != "teapot" {
		t.Fatalf("Message=%q want %q", e.Message, "teapot")
	}
	if e.ErrorCode != 418 {
		t.Fatalf("ErrorCode=%d want 418", e.ErrorCode)
	}
}

func TestClassify_Others_Fallback(t *testing.T) {
	e := apierr.Classify(451, nil, "/x")
	if e.Message != "Miscellaneous Error" {
		t.Fatalf("Message=%q", e.Message)
	}
}

// 400 must hit the validation branch, not the catch-all, even though both
// match; order decides.
func TestClassify_OrderedPrecedence(t *testing.T) {
	e := apierr.Classify(400, []byte(`{"message":"bad input"}`), "/x")
	if e.Type != apierr.TypeFastAPI {
		t.Fatalf("Type=%q want %q", e.Type, apierr.TypeFastAPI)
	}
	if e.Message != "bad input" {
		t.Fatalf("Message=%q", e.Message)
	}
}

func TestClassify_TrailingOverwriteWins(t *testing.T) {
	e := apierr.Classify(500, []byte(`{"detail":"boom"}`), "/svc")

	if e.ErrorCode != 500 {
		t.Fatalf("ErrorCode=%d want 500", e.ErrorCode)
	}
	if e.Raw != `{"detail":"boom"}` {
		t.Fatalf("Raw=%q", e.Raw)
	}
	if e.Endpoint != "/svc" {
		t.Fatalf("Endpoint=%q", e.Endpoint)
	}
	if e.Timestamp.IsZero() {
		t.Fatalf("Timestamp not set")
	}
}

func TestClassify_RawKeepsBodyVerbatim(t *testing.T) {
	body := []byte("\n  {\"detail\":\"boom\"}  \n")
	e := apierr.Classify(500, body, "/svc")

	if e.Raw != string(body) {
		t.Fatalf("Raw=%q want %q", e.Raw, string(body))
	}
	if e.Message != "boom" {
		t.Fatalf("Message=%q", e.Message)
	}
}

func TestErrorDetails_ErrorString(t *testing.T) {
	e := &apierr.ErrorDetails{ErrorCode: 404, Message: "gone"}
	if e.Error() != "gone" {
		t.Fatalf("Error()=%q", e.Error())
	}
	e = &apierr.ErrorDetails{ErrorCode: 404}
	if e.Error() != http.StatusText(404) {
		t.Fatalf("Error()=%q want %q", e.Error(), http.StatusText(404))
	}
}
