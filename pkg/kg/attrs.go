package kg

import (
	"fmt"
	"maps"
)

// Attributes is the open, string-keyed attribute map carried by nodes and
// edges. Sources write whatever keys they know about; readers look up only
// the keys they recognize and fall back when one is missing.
type Attributes map[string]any

// Clone returns a shallow copy. Cloning nil yields an empty, non-nil map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// String returns the attribute as a string. Non-string scalar values are
// formatted with fmt; missing or nil values yield "".
func (a Attributes) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns a list-valued attribute. It accepts []string as written by
// the adapters and []any as produced by a JSON round-trip. A scalar string
// is returned as a one-element list.
func (a Attributes) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Has reports whether key is present with a non-nil value.
func (a Attributes) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}
