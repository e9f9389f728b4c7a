package types

import "testing"

func TestPrimitiveStringAndKind(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
		kind Kind
	}{
		{Never, "Never", KindNever},
		{Null, "Null", KindNull},
		{Boolean, "Boolean", KindBoolean},
		{Integer, "Integer", KindInteger},
		{Float, "Float", KindFloat},
		{String, "String", KindString},
		{DateTime, "DateTime", KindDateTime},
		{Blob, "Blob", KindBlob},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.typ.Kind(); got != tt.kind {
			t.Errorf("Kind() = %v, want %v", got, tt.kind)
		}
	}
}

func TestEqualReflexive(t *testing.T) {
	cases := []Type{
		Integer,
		NewArray(Integer),
		NewSet(String),
		NewDict(String, Integer),
		NewRef(Boolean),
		NewStruct(Field{"a", Integer}, Field{"b", String}),
		NewVariant(Case{"ok", Integer}, Case{"err", String}),
		NewFunction(Boolean, Integer, Integer),
		NewAsyncFunction(Null, String),
	}
	for _, c := range cases {
		if !Equal(c, c) {
			t.Errorf("Equal(%s, %s) = false, want true", c, c)
		}
		if !c.Equals(c) {
			t.Errorf("%s.Equals(self) = false, want true", c)
		}
	}
}

func TestStructFieldOrderIsIdentity(t *testing.T) {
	a := NewStruct(Field{"x", Integer}, Field{"y", String})
	b := NewStruct(Field{"y", String}, Field{"x", Integer})
	if Equal(a, b) {
		t.Errorf("structs with swapped field order should be distinct types")
	}
}

func TestVariantCanonicalOrder(t *testing.T) {
	a := NewVariant(Case{"b", Integer}, Case{"a", String})
	b := NewVariant(Case{"a", String}, Case{"b", Integer})
	if !Equal(a, b) {
		t.Errorf("variants built with cases in different input order should be equal")
	}
	if a.CaseNames()[0] != "a" {
		t.Errorf("variant cases should canonicalize to lexical order, got %v", a.CaseNames())
	}
}

func TestNeverIsSubtypeOfEverything(t *testing.T) {
	targets := []Type{
		Null, Boolean, Integer, Float, String, DateTime, Blob,
		NewArray(Integer), NewStruct(Field{"a", Integer}),
		NewVariant(Case{"a", Integer}),
		NewFunction(Boolean, Integer),
	}
	for _, target := range targets {
		if !IsSubtype(Never, target) {
			t.Errorf("Never should be a subtype of %s", target)
		}
	}
	if IsSubtype(Integer, Never) {
		t.Errorf("Integer should not be a subtype of Never")
	}
}

func TestRecursiveTypeEquality(t *testing.T) {
	// list = Variant{ nil: Null, cons: Struct{ head: Boolean, tail: self } }
	buildList := func() *RecursiveType {
		return NewRecursive("List", func(self Type) Type {
			return NewVariant(
				Case{"nil", Null},
				Case{"cons", NewStruct(Field{"head", Boolean}, Field{"tail", self})},
			)
		})
	}
	list1 := buildList()
	list2 := buildList()

	if !Equal(list1, list2) {
		t.Errorf("two independently-built equivalent recursive types should be equal")
	}

	body, ok := Expand(list1).(*VariantType)
	if !ok {
		t.Fatalf("Expand(list) should yield a Variant, got %T", Expand(list1))
	}
	consType, ok := body.CaseType("cons")
	if !ok {
		t.Fatalf("expected a cons case")
	}
	consStruct := consType.(*StructType)
	tailType, _ := consStruct.FieldType("tail")
	if tailType != Type(list1) {
		t.Errorf("tail field should be literally the wrapper, got %s", tailType)
	}
}

func TestIsDataType(t *testing.T) {
	if !IsDataType(Integer) {
		t.Errorf("Integer should be a data type")
	}
	if IsDataType(NewFunction(Boolean, Integer)) {
		t.Errorf("Function should not be a data type")
	}
	if IsDataType(NewRef(Integer)) {
		t.Errorf("Ref should not be a data type")
	}
	structOfFuncs := NewStruct(Field{"f", NewFunction(Boolean, Integer)})
	if IsDataType(structOfFuncs) {
		t.Errorf("a struct containing a function field should not be a data type")
	}
}
