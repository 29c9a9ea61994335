// Package lookup implements the small fixed tables (palettes, figure sizes,
// DPI presets, ...) used throughout brookplot and the error returned when a
// key is not one of them.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownKey is matched by every *UnknownKeyError via errors.Is
var ErrUnknownKey = errors.New("unknown key")

// maxSuggestions caps the "did you mean" list
const maxSuggestions = 3

// UnknownKeyError reports a key that is not part of a fixed table.
// The message always lists every valid option.
type UnknownKeyError struct {
	Kind        string   // what was being looked up, e.g. "palette"
	Key         string   // the rejected input
	Valid       []string // every accepted key, in table order
	Suggestions []string // closest valid keys, best first
	Hint        string   // optional extra sentence
}

func (e *UnknownKeyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q is not a valid %s.", e.Key, e.Kind)
	if e.Hint != "" {
		b.WriteString(" ")
		b.WriteString(e.Hint)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " Did you mean %s?", quoteJoin(e.Suggestions, " or "))
	}
	fmt.Fprintf(&b, " Try one of the following: %s", quoteJoin(e.Valid, ", "))
	return b.String()
}

// Is lets errors.Is(err, ErrUnknownKey) match
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// NewUnknownKeyError builds the error and fills in fuzzy suggestions
func NewUnknownKeyError(kind, key string, valid []string) *UnknownKeyError {
	return &UnknownKeyError{
		Kind:        kind,
		Key:         key,
		Valid:       append([]string(nil), valid...),
		Suggestions: Suggest(key, valid),
	}
}

// Suggest returns up to three valid keys that fuzzy-match the input
func Suggest(key string, valid []string) []string {
	if strings.TrimSpace(key) == "" {
		return nil
	}

	matches := fuzzy.Find(strings.ToLower(key), valid)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func quoteJoin(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, sep)
}

// Table is an ordered, immutable string-keyed table
type Table[V any] struct {
	kind   string
	keys   []string
	values map[string]V
}

// Entry is a single key/value pair used to build a Table
type Entry[V any] struct {
	Key   string
	Value V
}

// NewTable builds a table from entries, keeping their order.
// It panics on duplicate keys: tables are built from static data.
func NewTable[V any](kind string, entries ...Entry[V]) *Table[V] {
	t := &Table[V]{
		kind:   kind,
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.values[e.Key]; dup {
			panic(fmt.Sprintf("lookup: duplicate %s key %q", kind, e.Key))
		}
		t.keys = append(t.keys, e.Key)
		t.values[e.Key] = e.Value
	}
	return t
}

// Get returns the value for key or an *UnknownKeyError
func (t *Table[V]) Get(key string) (V, error) {
	v, ok := t.values[key]
	if !ok {
		var zero V
		return zero, NewUnknownKeyError(t.kind, key, t.keys)
	}
	return v, nil
}

// Has reports whether key is in the table
func (t *Table[V]) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Keys returns the keys in insertion order
func (t *Table[V]) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of entries
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Kind returns the table's descriptive name
func (t *Table[V]) Kind() string {
	return t.kind
}
