package builtin_test

import (
	"testing"

	"github.com/elaraai/east-sub001/internal/builtin"
	"github.com/elaraai/east-sub001/internal/types"
)

func newTestTable() *builtin.Table {
	t := builtin.NewTable()
	t.MustRegister(builtin.Signature{Name: "int.add", Inputs: []types.Type{types.Integer, types.Integer}, Output: types.Integer})
	t.MustRegister(builtin.Signature{Name: "int.sub", Inputs: []types.Type{types.Integer, types.Integer}, Output: types.Integer})
	t.MustRegister(builtin.Signature{Name: "string.concat", Inputs: []types.Type{types.String, types.String}, Output: types.String})
	return t
}

func TestLookup(t *testing.T) {
	table := newTestTable()
	sig, ok := table.Lookup("int.add")
	if !ok {
		t.Fatalf("expected int.add to be registered")
	}
	if len(sig.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(sig.Inputs))
	}
	if _, ok := table.Lookup("int.mul"); ok {
		t.Fatalf("expected int.mul to be unregistered")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	table := newTestTable()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	table.MustRegister(builtin.Signature{Name: "int.add"})
}

func TestSuggestMatchesSubstring(t *testing.T) {
	table := newTestTable()
	got := table.Suggest("int.")
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions for int., got %v", got)
	}
}
