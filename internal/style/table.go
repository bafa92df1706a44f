package style

import (
	"strings"

	"github.com/makeasinger/briefgen/internal/textutil"
)

// Table maps localized vocabulary to the denser style vocabulary. Keys are
// compared after textutil.Fold.
type Table struct {
	Name    string
	entries map[string]string
}

// NewTable folds the keys of entries.
func NewTable(name string, entries map[string]string) *Table {
	t := &Table{Name: name, entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[textutil.Fold(k)] = v
	}
	return t
}

// Lookup returns the mapped value and whether the key was known.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[textutil.Fold(key)]
	return v, ok
}

// Map returns the mapped value, or the normalized token lowercased when the
// table has no entry for it.
func (t *Table) Map(token string) string {
	if v, ok := t.Lookup(token); ok {
		return v
	}
	return strings.ToLower(textutil.Normalize(token))
}

// MapList maps every segment of a comma separated field and joins the
// results with ", ".
func (t *Table) MapList(field string) string {
	parts := textutil.SplitList(field)
	for i, p := range parts {
		parts[i] = t.Map(p)
	}
	return strings.Join(parts, ", ")
}

// Len is the number of entries.
func (t *Table) Len() int { return len(t.entries) }
