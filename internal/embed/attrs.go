package embed

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Attrs are node attributes as they appear in the document JSON.
type Attrs map[string]any

func (a Attrs) String(key string) string {
	if v, ok := a[key].(string); ok {
		return strings.TrimSpace(v)
	}

	return ""
}

// Int reads a numeric attribute. JSON decoding yields float64, attributes
// built in Go hold int, and the editor sometimes stores numbers as text.
func (a Attrs) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
		if err != nil {
			return 0, false
		}
		return n, true
	}

	return 0, false
}

func (a Attrs) clone() Attrs {
	c := make(Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}

	return c
}

// dimension reads key and clamps it into [lo, hi], falling back to def.
func (a Attrs) dimension(key string, def, lo, hi int) int {
	n, ok := a.Int(key)
	if !ok || n <= 0 {
		return def
	}

	return clamp(n, lo, hi)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}

	return n
}

// withScheme prefixes bare host paths so net/url can parse them.
func withScheme(rawURL string) string {
	if strings.Contains(rawURL, "://") {
		return rawURL
	}

	return "https://" + rawURL
}
