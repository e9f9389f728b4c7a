package ast

import (
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// NewRef allocates a fresh Ref(T) cell initialized to Init.
type NewRef struct {
	Loc  source.Location
	Type types.Type // Ref(T)
	Init Node
}

func (n *NewRef) Pos() source.Location { return n.Loc }

// NewArray constructs an Array(T) from Elements, in order.
type NewArray struct {
	Loc      source.Location
	Type     types.Type // Array(T)
	Elements []Node
}

func (n *NewArray) Pos() source.Location { return n.Loc }

// NewSet constructs a Set(K) from Elements.
type NewSet struct {
	Loc      source.Location
	Type     types.Type // Set(K)
	Elements []Node
}

func (n *NewSet) Pos() source.Location { return n.Loc }

// DictEntry is one key/value pair of a NewDict construction.
type DictEntry struct {
	Key   Node
	Value Node
}

// NewDict constructs a Dict(K, V) from Entries.
type NewDict struct {
	Loc     source.Location
	Type    types.Type // Dict(K, V)
	Entries []DictEntry
}

func (n *NewDict) Pos() source.Location { return n.Loc }

// StructFieldValue is one field value supplied to a Struct construction. Order
// must equal the declared StructType's field order (§4.3 "NewRef/.../Struct
// /Variant").
type StructFieldValue struct {
	Name  string
	Value Node
}

// Struct constructs a value of a declared StructType.
type Struct struct {
	Loc    source.Location
	Type   types.Type // Struct({...})
	Fields []StructFieldValue
}

func (s *Struct) Pos() source.Location { return s.Loc }

// Variant constructs a tagged value for one case of a declared
// VariantType.
type Variant struct {
	Loc     source.Location
	Type    types.Type // Variant({...})
	Case    string
	Payload Node
}

func (v *Variant) Pos() source.Location { return v.Loc }

// GetField projects a named field out of a Struct-typed value.
type GetField struct {
	Loc    source.Location
	Struct Node
	Field  string
}

func (g *GetField) Pos() source.Location { return g.Loc }

// WrapRecursive retypes a value of a Recursive type's body as the
// recursive wrapper itself.
type WrapRecursive struct {
	Loc    source.Location
	Type   types.Type // the Recursive(...) type
	Value  Node
}

func (w *WrapRecursive) Pos() source.Location { return w.Loc }

// UnwrapRecursive retypes a value of a Recursive wrapper as its body.
type UnwrapRecursive struct {
	Loc   source.Location
	Type  types.Type // the expanded body type
	Value Node
}

func (u *UnwrapRecursive) Pos() source.Location { return u.Loc }
