package slugify

import (
	"strings"
	"unicode/utf8"
)

// Mapping is a single special-mapping entry: a key of one or more code
// points and its ASCII replacement.
type Mapping struct {
	Key         string
	Replacement string
}

// Table is a read-only special-mapping table: an ordered set of
// code-point-sequence to replacement mappings for one script family.
// Lookup is longest-match-first, so a multi-code-point key is always
// preferred over its one-code-point prefix. Tables are built once and
// never mutated, which makes them safe to share across goroutines.
type Table struct {
	name     string
	mappings []Mapping
}

// NewTable builds a table from ordered mappings. Duplicate keys keep the
// first occurrence.
func NewTable(name string, mappings ...Mapping) *Table {
	t := &Table{name: name, mappings: make([]Mapping, 0, len(mappings))}
	seen := make(map[string]struct{}, len(mappings))
	for _, m := range mappings {
		if m.Key == "" {
			continue
		}
		if _, dup := seen[m.Key]; dup {
			continue
		}
		seen[m.Key] = struct{}{}
		t.mappings = append(t.mappings, m)
	}
	return t
}

// Name returns the registry name of the table.
func (t *Table) Name() string { return t.name }

// Len returns the number of mappings in the table.
func (t *Table) Len() int { return len(t.mappings) }

// Lookup returns the replacement for an exact key.
func (t *Table) Lookup(key string) (string, bool) {
	for _, m := range t.mappings {
		if m.Key == key {
			return m.Replacement, true
		}
	}
	return "", false
}

// matchPrefix returns the replacement for the longest key that prefixes
// s, along with the matched key length in bytes. Tables are small, so a
// linear scan beats maintaining a trie.
func (t *Table) matchPrefix(s string) (repl string, n int, ok bool) {
	for _, m := range t.mappings {
		if len(m.Key) > n && strings.HasPrefix(s, m.Key) {
			repl, n, ok = m.Replacement, len(m.Key), true
		}
	}
	return repl, n, ok
}

// ApplyPreTranslations rewrites text using the given tables, scanning
// left to right. At each position the longest match across all tables
// wins, ties broken by table order; on a miss the character is emitted
// unchanged. This pass is never part of the default pipeline; it runs
// only when called explicitly or configured via PreTranslate.
func ApplyPreTranslations(text string, tables ...*Table) string {
	if len(tables) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		repl, n := "", 0
		for _, t := range tables {
			if r, l, ok := t.matchPrefix(text[i:]); ok && l > n {
				repl, n = r, l
			}
		}
		if n > 0 {
			b.WriteString(repl)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// Tables returns the built-in tables in registry order.
func Tables() []*Table {
	return []*Table{Cyrillic, German, Greek, Symbols}
}

// TableByName resolves a built-in table by its case-insensitive name.
func TableByName(name string) (*Table, bool) {
	for _, t := range Tables() {
		if strings.EqualFold(t.name, name) {
			return t, true
		}
	}
	return nil, false
}
