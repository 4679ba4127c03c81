package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fields is the loosely typed input of a create or update, as decoded from a
// JSON body or a multipart form. Accessors never fail: anything absent or
// unusable falls back to the given default.
type Fields map[string]any

func (f Fields) String(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (f Fields) StringOr(key, def string) string {
	if s := f.String(key); s != "" {
		return s
	}
	return def
}

// Optional returns nil for a blank value.
func (f Fields) Optional(key string) *string {
	if s := f.String(key); s != "" {
		return &s
	}
	return nil
}

func (f Fields) Has(key string) bool {
	return f.String(key) != ""
}

// Float parses key as a finite, non-negative number. Zero is kept.
func (f Fields) Float(key string, def float64) float64 {
	var n float64
	switch v := f[key].(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return def
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return n
}

// Int is Float truncated toward zero. Values past math.MaxInt take def.
func (f Fields) Int(key string, def int) int {
	n := f.Float(key, -1)
	if n < 0 || n >= math.MaxInt {
		return def
	}
	return int(n)
}

func (f Fields) Missing(keys []string) []string {
	var missing []string
	for _, k := range keys {
		if !f.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
