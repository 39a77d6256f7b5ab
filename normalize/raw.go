// Package normalize reshapes the backend's inconsistent JSON payloads into
// the canonical models. Endpoints disagree on casing (camelCase, PascalCase,
// snake_case), field names and envelope nesting, so every entity is rebuilt
// through an ordered alias lookup instead of direct struct decoding.
// Nothing in this package returns an error: malformed input degrades to
// zero values so callers can render an empty state.
package normalize

import (
	"strconv"
	"strings"
)

// Raw is a decoded JSON object before normalization.
type Raw map[string]any

// AsRaw converts a decoded JSON value to a Raw object. Returns false for
// arrays, scalars and nil.
func AsRaw(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	default:
		return nil, false
	}
}

// Lookup probes keys in order and returns the first value that is present
// and not JSON null. Presence is explicit: 0, false and "" are valid values
// and are returned; only a missing key or a null value counts as absent.
func Lookup(raw Raw, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String resolves keys to a string, coercing numbers and bools the way the
// backend sometimes serializes ids. Returns def when absent.
func String(raw Raw, def string, keys ...string) string {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return def
	}
	return toString(v, def)
}

// Int resolves keys to an int. Returns def when absent or not numeric.
func Int(raw Raw, def int, keys ...string) int {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return def
	}
	if n, ok := toFloat(v); ok {
		return int(n)
	}
	return def
}

// Int64 resolves keys to an int64 (file sizes).
func Int64(raw Raw, def int64, keys ...string) int64 {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return def
	}
	if n, ok := toFloat(v); ok {
		return int64(n)
	}
	return def
}

// IntPtr resolves keys to *int, keeping the absent/zero distinction: a
// present 0 yields a pointer to 0, a missing field yields nil.
func IntPtr(raw Raw, keys ...string) *int {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return nil
	}
	if n, ok := toFloat(v); ok {
		i := int(n)
		return &i
	}
	return nil
}

// Float resolves keys to a float64 (ratings).
func Float(raw Raw, def float64, keys ...string) float64 {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return def
	}
	if n, ok := toFloat(v); ok {
		return n
	}
	return def
}

// Bool resolves keys to a bool. A present false is returned, not def.
func Bool(raw Raw, def bool, keys ...string) bool {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if p, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return p
		}
	case float64:
		return b != 0
	}
	return def
}

func toString(v any, def string) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return def
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// UnwrapData strips one {"data": ...} envelope level. Anything else is
// returned unchanged.
func UnwrapData(v any) any {
	if raw, ok := AsRaw(v); ok {
		if inner, ok := raw["data"]; ok && inner != nil {
			return inner
		}
	}
	return v
}
