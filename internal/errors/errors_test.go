package errors_test

import (
	"strings"
	"testing"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

func TestScopeErrorMessage(t *testing.T) {
	d := errors.NewScopeError(source.Location{Line: 3, Column: 5}, "x")
	if !strings.Contains(d.Error(), `"x"`) {
		t.Fatalf("expected message to mention x, got %q", d.Error())
	}
	if d.Kind != errors.ScopeError {
		t.Fatalf("expected ScopeError kind, got %s", d.Kind)
	}
}

func TestTypeMismatchOneLineForSimpleTypes(t *testing.T) {
	d := errors.NewTypeMismatch(source.Unknown, "bad arg", types.Integer, types.String)
	msg := d.Error()
	// One header line, then a single "expected X, got Y" line.
	if strings.Count(msg, "\n") != 1 {
		t.Fatalf("expected single-line diff for primitives, got %q", msg)
	}
	if !strings.Contains(msg, "Integer") || !strings.Contains(msg, "String") {
		t.Fatalf("expected both type names in message, got %q", msg)
	}
}

func TestTypeMismatchDiffsLargeStructs(t *testing.T) {
	expected := types.NewStruct(
		types.Field{Name: "a", Type: types.Integer},
		types.Field{Name: "b", Type: types.Integer},
	)
	got := types.NewStruct(
		types.Field{Name: "a", Type: types.Integer},
		types.Field{Name: "b", Type: types.String},
	)
	d := errors.NewTypeMismatch(source.Unknown, "field mismatch", expected, got)
	msg := d.Error()
	if !strings.Contains(msg, "-") || !strings.Contains(msg, "+") {
		t.Fatalf("expected a unified diff with -/+ markers, got %q", msg)
	}
}

func TestTrailOrdersOldestFirstButPrintsInnermostFirst(t *testing.T) {
	var tr errors.Trail
	tr = tr.Push(errors.Frame{NodeKind: "Function", Loc: source.Location{Line: 1}})
	tr = tr.Push(errors.Frame{NodeKind: "Block", Loc: source.Location{Line: 2}})
	if tr.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", tr.Depth())
	}
	if tr.Top().NodeKind != "Block" {
		t.Fatalf("expected top frame Block, got %s", tr.Top().NodeKind)
	}
	lines := strings.Split(tr.String(), "\n")
	if lines[0] != tr.Top().String() {
		t.Fatalf("expected innermost frame printed first")
	}
}

func TestTrailPushDoesNotMutateOriginal(t *testing.T) {
	base := errors.Trail{{NodeKind: "Function"}}
	extended := base.Push(errors.Frame{NodeKind: "Block"})
	if base.Depth() != 1 {
		t.Fatalf("expected base trail unmodified, got depth %d", base.Depth())
	}
	if extended.Depth() != 2 {
		t.Fatalf("expected extended trail depth 2, got %d", extended.Depth())
	}
}
