package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSONBody renders a request payload as JSON with HTML escaping off,
// so payloads with URLs or angle brackets go over the wire untouched.
func EncodeJSONBody(body any) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return &buf, nil
}
