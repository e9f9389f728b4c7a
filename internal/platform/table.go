// Package platform implements the registry the analyzer consults for
// externally-provided operations (§4.4, §6.2). The registry's runtime
// implementation is out of scope for this module; only the typed
// signature table the analyzer type-checks calls against lives here.
package platform

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// Kind distinguishes a synchronous platform function from one that
// suspends (§6.2 "kind": "sync" | "async").
type Kind string

const (
	Sync  Kind = "sync"
	Async Kind = "async"
)

// Entry is one platform-function record.
type Entry struct {
	Name   string
	Inputs []types.Type
	Output types.Type
	Kind   Kind
}

// Table is an immutable-once-built platform-function registry. Duplicate
// names reject setup (§6.2).
type Table struct {
	entries map[string]Entry
}

// NewTable returns an empty registry.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Register adds e to the table, rejecting a duplicate name with a
// ScopeError (§7: "duplicate platform name" is a ScopeError cause).
func (t *Table) Register(e Entry) error {
	if _, exists := t.entries[e.Name]; exists {
		return &errors.Diagnostic{Kind: errors.ScopeError, Loc: source.Unknown, Message: fmt.Sprintf("duplicate platform function %q", e.Name)}
	}
	t.entries[e.Name] = e
	return nil
}

// MustRegister is Register for programmatic setup code that treats a
// duplicate name as a fatal configuration bug rather than a recoverable
// error.
func (t *Table) MustRegister(e Entry) {
	if err := t.Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the named entry and whether it exists.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Len returns the number of registered platform functions.
func (t *Table) Len() int { return len(t.entries) }

// yamlEntry mirrors Entry for goccy/go-yaml unmarshaling: Type isn't
// itself YAML-decodable (it's an interface over the internal type-system
// sum), so the registry config format spells types as strings and
// decodeType resolves them to the matching types.Type constant.
type yamlEntry struct {
	Name   string   `yaml:"name"`
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`
	Kind   string   `yaml:"kind"`
}

// LoadYAML reads a sequence of platform-function records from r (§6.2)
// and registers each into a fresh Table, failing fast on the first
// duplicate name or unresolvable type name.
func LoadYAML(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries []yamlEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("platform: decoding registry: %w", err)
	}

	table := NewTable()
	for _, ye := range entries {
		inputs := make([]types.Type, len(ye.Inputs))
		for i, in := range ye.Inputs {
			t, err := decodeType(in)
			if err != nil {
				return nil, fmt.Errorf("platform: function %q input %d: %w", ye.Name, i, err)
			}
			inputs[i] = t
		}
		output, err := decodeType(ye.Output)
		if err != nil {
			return nil, fmt.Errorf("platform: function %q output: %w", ye.Name, err)
		}
		kind := Sync
		if ye.Kind == string(Async) {
			kind = Async
		}
		if err := table.Register(Entry{Name: ye.Name, Inputs: inputs, Output: output, Kind: kind}); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// decodeType resolves the small set of primitive type names the registry
// config format allows. Container/structural types aren't expressible in
// this flat config format; a platform function needing one is registered
// programmatically via MustRegister instead.
func decodeType(name string) (types.Type, error) {
	switch name {
	case "Never":
		return types.Never, nil
	case "Null":
		return types.Null, nil
	case "Boolean":
		return types.Boolean, nil
	case "Integer":
		return types.Integer, nil
	case "Float":
		return types.Float, nil
	case "String":
		return types.String, nil
	case "DateTime":
		return types.DateTime, nil
	case "Blob":
		return types.Blob, nil
	default:
		return nil, fmt.Errorf("unknown primitive type %q", name)
	}
}
