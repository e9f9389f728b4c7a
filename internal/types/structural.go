package types

import (
	"sort"
	"strings"
)

// Field is one named, ordered component of a StructType.
type Field struct {
	Name string
	Type Type
}

// StructType is an ordered collection of named fields. Field order is part
// of the type's identity (§3.1): two structurally-equal-looking structs
// declared with fields in a different order are distinct types.
type StructType struct {
	Fields []Field
}

// NewStruct constructs a StructType preserving the caller's field order.
func NewStruct(fields ...Field) *StructType {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return &StructType{Fields: cp}
}

func (s *StructType) Kind() Kind { return KindStruct }

func (s *StructType) String() string {
	var sb strings.Builder
	sb.WriteString("Struct{")
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Type.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// FieldType returns the declared type of the named field and whether it
// exists.
func (s *StructType) FieldType(name string) (Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// FieldIndex returns the 0-based position of the named field, or -1.
func (s *StructType) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Case is one named, payload-typed arm of a VariantType.
type Case struct {
	Name string
	Type Type
}

// VariantType is a tagged sum of named cases. §3.1 states cases are
// "ordered by name"; NewVariant enforces this canonical ordering at
// construction so that two variants built from the same case set in any
// input order produce identical, directly-comparable case slices (the
// equality pass in equality.go still recurses structurally, but canonical
// ordering keeps pretty-printing deterministic).
type VariantType struct {
	Cases []Case
}

// NewVariant constructs a VariantType, canonicalizing case order by name.
func NewVariant(cases ...Case) *VariantType {
	cp := make([]Case, len(cases))
	copy(cp, cases)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Name < cp[j].Name })
	return &VariantType{Cases: cp}
}

func (v *VariantType) Kind() Kind { return KindVariant }

func (v *VariantType) String() string {
	var sb strings.Builder
	sb.WriteString("Variant{")
	for i, c := range v.Cases {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
		sb.WriteString(": ")
		sb.WriteString(c.Type.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// CaseType returns the payload type of the named case and whether it
// exists.
func (v *VariantType) CaseType(name string) (Type, bool) {
	for _, c := range v.Cases {
		if c.Name == name {
			return c.Type, true
		}
	}
	return nil, false
}

// CaseNames returns the canonical (name-sorted) list of case names.
func (v *VariantType) CaseNames() []string {
	names := make([]string, len(v.Cases))
	for i, c := range v.Cases {
		names[i] = c.Name
	}
	return names
}
