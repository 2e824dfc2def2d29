package utils

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
)

var queryEncoder = schema.NewEncoder()

// EncodeQuery serializes a query input into a URL-encoded query string
// (without the leading "?"). nil yields the empty string and strings and
// other scalars pass through as-is, so callers can hand over prebuilt
// queries. Maps and url.Values are encoded directly; structs are encoded via
// their schema tags.
func EncodeQuery(q any) (string, error) {
	switch v := q.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case url.Values:
		return v.Encode(), nil
	case map[string]string:
		vals := url.Values{}
		for k, s := range v {
			vals.Set(k, s)
		}
		return vals.Encode(), nil
	case map[string]any:
		vals := url.Values{}
		for k, item := range v {
			vals.Set(k, fmt.Sprintf("%v", item))
		}
		return vals.Encode(), nil
	default:
		// non-object scalars pass through as-is
		rv := reflect.Indirect(reflect.ValueOf(q))
		if rv.Kind() != reflect.Struct {
			return fmt.Sprint(q), nil
		}
		vals := url.Values{}
		if err := queryEncoder.Encode(q, vals); err != nil {
			return "", fmt.Errorf("encode query: %w", err)
		}
		return vals.Encode(), nil
	}
}
