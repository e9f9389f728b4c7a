// Package types implements East's static type system: a closed recursive
// sum of type values with structural equality, subtyping, and expansion of
// recursive types. Types carry no runtime payload; they are purely
// structural descriptions consulted by the lowerer and the analyzer.
package types

// Kind identifies the tag of a Type value.
type Kind string

const (
	KindNever         Kind = "NEVER"
	KindNull          Kind = "NULL"
	KindBoolean       Kind = "BOOLEAN"
	KindInteger       Kind = "INTEGER"
	KindFloat         Kind = "FLOAT"
	KindString        Kind = "STRING"
	KindDateTime      Kind = "DATETIME"
	KindBlob          Kind = "BLOB"
	KindRef           Kind = "REF"
	KindArray         Kind = "ARRAY"
	KindSet           Kind = "SET"
	KindDict          Kind = "DICT"
	KindStruct        Kind = "STRUCT"
	KindVariant       Kind = "VARIANT"
	KindRecursive     Kind = "RECURSIVE"
	KindFunction      Kind = "FUNCTION"
	KindAsyncFunction Kind = "ASYNC_FUNCTION"
)

// Type is the common interface implemented by every type value in the
// system. Implementations are immutable once constructed; equality and
// subtyping are defined structurally in equality.go.
type Type interface {
	Kind() Kind
	String() string

	// Equals and IsSubtypeOf are thin, per-kind forwarders onto the
	// free functions Equal/IsSubtype (equality.go). They exist so call
	// sites can write `t.Equals(u)` the way the rest of the ecosystem's
	// type-system code does, without every caller needing to import the
	// package-level comparison entry points directly.
	Equals(other Type) bool
	IsSubtypeOf(other Type) bool
}

// primitive is the shared representation for the zero-field primitive
// kinds. It exists so Never/Null/Boolean/Integer/Float/String/DateTime/Blob
// don't each need a hand-written struct.
type primitive struct {
	kind Kind
	name string
}

func (p *primitive) Kind() Kind     { return p.kind }
func (p *primitive) String() string { return p.name }

// Singletons for every primitive kind. These are interned: comparing two
// primitive Type values with == is valid and is used as a fast path by
// Equal before falling back to structural comparison.
var (
	Never    Type = &primitive{KindNever, "Never"}
	Null     Type = &primitive{KindNull, "Null"}
	Boolean  Type = &primitive{KindBoolean, "Boolean"}
	Integer  Type = &primitive{KindInteger, "Integer"}
	Float    Type = &primitive{KindFloat, "Float"}
	String   Type = &primitive{KindString, "String"}
	DateTime Type = &primitive{KindDateTime, "DateTime"}
	Blob     Type = &primitive{KindBlob, "Blob"}
)

// IsPrimitive reports whether t is one of the interned zero-field kinds.
func IsPrimitive(t Type) bool {
	_, ok := t.(*primitive)
	return ok
}
