package types

// Equals/IsSubtypeOf forwarders. Kept in one file since each is a one-line
// call into equality.go's free functions — the actual algorithms live
// there, keyed off of dynamic type switches rather than per-type methods,
// so that the recursive visited-pair bookkeeping stays in a single place.

func (p *primitive) Equals(other Type) bool      { return Equal(p, other) }
func (p *primitive) IsSubtypeOf(other Type) bool { return IsSubtype(p, other) }

func (r *RefType) Equals(other Type) bool      { return Equal(r, other) }
func (r *RefType) IsSubtypeOf(other Type) bool { return IsSubtype(r, other) }

func (a *ArrayType) Equals(other Type) bool      { return Equal(a, other) }
func (a *ArrayType) IsSubtypeOf(other Type) bool { return IsSubtype(a, other) }

func (s *SetType) Equals(other Type) bool      { return Equal(s, other) }
func (s *SetType) IsSubtypeOf(other Type) bool { return IsSubtype(s, other) }

func (d *DictType) Equals(other Type) bool      { return Equal(d, other) }
func (d *DictType) IsSubtypeOf(other Type) bool { return IsSubtype(d, other) }

func (s *StructType) Equals(other Type) bool      { return Equal(s, other) }
func (s *StructType) IsSubtypeOf(other Type) bool { return IsSubtype(s, other) }

func (v *VariantType) Equals(other Type) bool      { return Equal(v, other) }
func (v *VariantType) IsSubtypeOf(other Type) bool { return IsSubtype(v, other) }

func (f *FunctionType) Equals(other Type) bool      { return Equal(f, other) }
func (f *FunctionType) IsSubtypeOf(other Type) bool { return IsSubtype(f, other) }

func (f *AsyncFunctionType) Equals(other Type) bool      { return Equal(f, other) }
func (f *AsyncFunctionType) IsSubtypeOf(other Type) bool { return IsSubtype(f, other) }

func (r *RecursiveType) Equals(other Type) bool      { return Equal(r, other) }
func (r *RecursiveType) IsSubtypeOf(other Type) bool { return IsSubtype(r, other) }
