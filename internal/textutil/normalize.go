package textutil

import (
	"fmt"
	"strings"
)

// Normalize trims s and collapses every run of whitespace (newlines included)
// into a single ASCII space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeAny is Normalize for values of unknown shape. nil and nil pointers
// become the empty string.
func NormalizeAny(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Normalize(t)
	case *string:
		if t == nil {
			return ""
		}
		return Normalize(*t)
	case []byte:
		return Normalize(string(t))
	case fmt.Stringer:
		return Normalize(t.String())
	default:
		return Normalize(fmt.Sprint(t))
	}
}

// SplitList splits a comma separated field, normalizing every segment and
// dropping the empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = Normalize(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
