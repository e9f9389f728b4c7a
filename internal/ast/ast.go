// Package ast defines the node types produced by East's builder surface
// (the fluent host-language API is out of scope for this module beyond
// its interface, §1). Every node carries a source location and, where
// applicable, a declared static type: the builder sets both; the lowerer
// and analyzer never synthesize a type, only check it (§3.5).
package ast

import (
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// Node is the common interface for every AST node.
type Node interface {
	Pos() source.Location
}

// Value is a literal of a primitive or otherwise directly-representable
// type. The runtime payload is opaque to the core pipeline (§1: printing
// and serialization of runtime values is a separate collaborator); the
// analyzer only checks that Literal's tag matches Type.
type Value struct {
	Loc     source.Location
	Type    types.Type
	Literal interface{}
}

func (v *Value) Pos() source.Location { return v.Loc }

// Variable references a Let-bound name or function parameter by its
// surface name. Lowering resolves this to a stable identifier; the
// analyzer checks that DeclaredType/Mutable match the binding's recorded
// metadata exactly (§4.3 "Variable").
type Variable struct {
	Loc          source.Location
	Name         string
	DeclaredType types.Type
	Mutable      bool
}

func (v *Variable) Pos() source.Location { return v.Loc }

// Let introduces a new lexically-scoped binding, optionally mutable.
type Let struct {
	Loc     source.Location
	Name    string
	Mutable bool
	Type    types.Type
	Init    Node
}

func (l *Let) Pos() source.Location { return l.Loc }

// Assign stores a new value into a previously-declared mutable variable.
type Assign struct {
	Loc   source.Location
	Name  string
	Value Node
}

func (a *Assign) Pos() source.Location { return a.Loc }

// Block sequences statements; its type is the last statement's type
// (§3.4). The builder never emits an empty block.
type Block struct {
	Loc        source.Location
	Statements []Node
}

func (b *Block) Pos() source.Location { return b.Loc }

// As is an explicit upcast: Value's type must be a (non-Never, non-trivial)
// subtype of Target (§4.3 "As").
type As struct {
	Loc    source.Location
	Value  Node
	Target types.Type
}

func (a *As) Pos() source.Location { return a.Loc }
