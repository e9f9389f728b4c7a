// Package builtin holds the static signature table for East's built-in
// operations (§4.5, §6.3). The operations' bodies (the Array/Set/Dict/
// String standard library) are out of scope for this module; only their
// type signatures are needed to check a Builtin call site.
package builtin

import (
	"strings"

	"github.com/maruel/natural"

	"github.com/elaraai/east-sub001/internal/types"
)

// Signature is one builtin's declared input/output schema.
type Signature struct {
	Name   string
	Inputs []types.Type
	Output types.Type
}

// Table is a static, read-only mapping from builtin name to Signature.
type Table struct {
	entries map[string]Signature
	names   []string
}

// NewTable returns an empty builtin table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Signature)}
}

// MustRegister adds sig to the table. Builtin names are assigned by this
// module's own registry construction, not by an external source, so a
// duplicate name is a programming error.
func (t *Table) MustRegister(sig Signature) {
	if _, exists := t.entries[sig.Name]; exists {
		panic("builtin: duplicate name " + sig.Name)
	}
	t.entries[sig.Name] = sig
	t.names = append(t.names, sig.Name)
}

// Lookup returns the named builtin's signature and whether it exists.
func (t *Table) Lookup(name string) (Signature, bool) {
	sig, ok := t.entries[name]
	return sig, ok
}

// Suggest returns builtin names that plausibly match a mistyped name,
// for an IRInvariant "unknown builtin" diagnostic (§7). Candidates share
// a case-insensitive prefix or substring with name; natural.Sort orders
// the result the way a human reads a sorted name list (so "int.add2"
// sorts before "int.add10", not after it as a plain byte-wise sort would).
func (t *Table) Suggest(name string) []string {
	lower := strings.ToLower(name)
	var candidates []string
	for _, n := range t.names {
		if strings.Contains(strings.ToLower(n), lower) || strings.Contains(lower, strings.ToLower(n)) {
			candidates = append(candidates, n)
		}
	}
	natural.Sort(candidates)
	return candidates
}

// Len returns the number of registered builtins.
func (t *Table) Len() int { return len(t.names) }
