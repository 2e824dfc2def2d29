package apierr

import (
	"encoding/json"
	"strconv"
	"strings"
)

// body is the decoded error payload. obj is nil when the body was not a JSON
// object; raw always carries the trimmed original text.
type body struct {
	obj map[string]any
	raw string
}

// parseBody decodes the slurped error body. Decoding uses UseNumber so
// numeric location segments survive as integers instead of floats.
func parseBody(slurp []byte) body {
	trimmed := strings.TrimSpace(string(slurp))
	b := body{raw: trimmed}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return b
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var anyJSON any
	if err := dec.Decode(&anyJSON); err != nil {
		return b
	}
	b.obj, _ = anyJSON.(map[string]any)
	return b
}

// message extracts the human-facing message. Priority: the first validation
// entry's msg, then detail.message, then detail.msg, then the raw detail
// value; without a detail field it falls back to message, msg, and finally
// the raw body. Empty string means "nothing usable".
func (b body) message() string {
	if b.obj == nil {
		return b.raw
	}
	if det, ok := b.obj["detail"]; ok {
		if entries, ok := det.([]any); ok && len(entries) > 0 {
			if entry, ok := entries[0].(map[string]any); ok {
				if msg, ok := getString(entry, "msg"); ok {
					return msg
				}
			}
		}
		if detObj, ok := det.(map[string]any); ok {
			if msg, ok := getString(detObj, "message"); ok {
				return msg
			}
			if msg, ok := getString(detObj, "msg"); ok {
				return msg
			}
		}
		return stringify(det)
	}
	if msg, ok := getString(b.obj, "message"); ok {
		return msg
	}
	if msg, ok := getString(b.obj, "msg"); ok {
		return msg
	}
	if len(b.obj) == 0 {
		return ""
	}
	return b.raw
}

// validationLocation returns the first validation-error entry's loc path.
func (b body) validationLocation() ([]any, bool) {
	if b.obj == nil {
		return nil, false
	}
	entries, ok := b.obj["detail"].([]any)
	if !ok || len(entries) == 0 {
		return nil, false
	}
	entry, ok := entries[0].(map[string]any)
	if !ok {
		return nil, false
	}
	loc, ok := entry["loc"].([]any)
	if !ok {
		return nil, false
	}
	path := make([]any, 0, len(loc))
	for _, seg := range loc {
		path = append(path, normalizeSegment(seg))
	}
	return path, true
}

// detailID returns detail.id when the detail field is an object carrying one.
func (b body) detailID() (any, bool) {
	if b.obj == nil {
		return nil, false
	}
	detObj, ok := b.obj["detail"].(map[string]any)
	if !ok {
		return nil, false
	}
	id, ok := detObj["id"]
	if !ok {
		return nil, false
	}
	return normalizeSegment(id), true
}

// normalizeSegment turns json.Number path segments back into ints where
// possible; everything else passes through.
func normalizeSegment(v any) any {
	if n, ok := v.(json.Number); ok {
		if i, err := strconv.Atoi(n.String()); err == nil {
			return i
		}
		return n.String()
	}
	return v
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

func getString(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
