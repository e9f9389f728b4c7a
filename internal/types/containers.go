package types

import "fmt"

// RefType is a mutable single-cell reference to a value of Elem.
type RefType struct {
	Elem Type
}

func NewRef(elem Type) *RefType { return &RefType{Elem: elem} }
func (r *RefType) Kind() Kind   { return KindRef }
func (r *RefType) String() string {
	return fmt.Sprintf("Ref<%s>", r.Elem.String())
}

// ArrayType is a mutable, ordered, dense array of Elem.
type ArrayType struct {
	Elem Type
}

func NewArray(elem Type) *ArrayType { return &ArrayType{Elem: elem} }
func (a *ArrayType) Kind() Kind     { return KindArray }
func (a *ArrayType) String() string {
	return fmt.Sprintf("Array<%s>", a.Elem.String())
}

// SetType is a sorted set of unique keys of kind Key. Key must be a data
// type (see IsDataType); this is enforced by the constructor's caller (the
// AST builder / lowerer), not by SetType itself, since Type values carry no
// validation state.
type SetType struct {
	Key Type
}

func NewSet(key Type) *SetType { return &SetType{Key: key} }
func (s *SetType) Kind() Kind  { return KindSet }
func (s *SetType) String() string {
	return fmt.Sprintf("Set<%s>", s.Key.String())
}

// DictType is a map sorted by Key, storing values of kind Value.
type DictType struct {
	Key   Type
	Value Type
}

func NewDict(key, value Type) *DictType { return &DictType{Key: key, Value: value} }
func (d *DictType) Kind() Kind          { return KindDict }
func (d *DictType) String() string {
	return fmt.Sprintf("Dict<%s, %s>", d.Key.String(), d.Value.String())
}
