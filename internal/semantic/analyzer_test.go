package semantic_test

import (
	"math/big"
	"testing"

	"github.com/elaraai/east-sub001/internal/ast"
	"github.com/elaraai/east-sub001/internal/builtin"
	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/semantic"
	"github.com/elaraai/east-sub001/internal/types"
)

func intLit(v int64) *ast.Value {
	return &ast.Value{Type: types.Integer, Literal: big.NewInt(v)}
}

func newAnalyzer() *semantic.Analyzer {
	return semantic.New(platform.NewTable(), builtin.NewTable())
}

func analyze(t *testing.T, n ast.Node) (ir.Node, error) {
	t.Helper()
	lowered := ir.Lower(n)
	return newAnalyzer().Analyze(lowered)
}

// E1 — Identity integer function: analyzer marks everything sync, and the
// parameter is not captured.
func TestIdentityIntegerFunction(t *testing.T) {
	fn := &ast.Function{
		Params: []ast.Param{{Name: "x", Type: types.Integer}},
		Output: types.Integer,
		Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
	}
	result, err := analyze(t, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := result.(*ir.Function)
	if f.IsAsync() {
		t.Fatalf("expected identity function to be sync")
	}
	if f.Params[0].Captured {
		t.Fatalf("expected parameter to not be captured")
	}
}

// E2 — Capture of outer variable: outer block lets x: Integer = 0, defines
// an inner function returning x. Analyzer marks x captured.
func TestCaptureOfOuterVariable(t *testing.T) {
	inner := &ast.Function{
		Output: types.Integer,
		Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
	}
	block := &ast.Block{Statements: []ast.Node{
		&ast.Let{Name: "x", Type: types.Integer, Init: intLit(0)},
		inner,
	}}
	result, err := analyze(t, block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := result.(*ir.Block)
	let := b.Statements[0].(*ir.Let)
	if !let.Captured {
		t.Fatalf("expected outer x to be marked captured")
	}
	fn := b.Statements[1].(*ir.Function)
	if len(fn.Captures) != 1 || fn.Captures[0].Name != "x" {
		t.Fatalf("expected inner function to capture x, got %v", fn.Captures)
	}
}

// E3 — Async contagion: Call is async iff an argument is async; CallAsync
// is always async regardless of its arguments.
func TestAsyncContagionThroughCall(t *testing.T) {
	fnType := types.NewFunction(types.Integer, types.Integer)
	asyncFnType := types.NewAsyncFunction(types.Integer, types.Integer)

	identityFn := &ast.Function{
		Params: []ast.Param{{Name: "x", Type: types.Integer}},
		Output: types.Integer,
		Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
	}

	block := &ast.Block{Statements: []ast.Node{
		&ast.Let{Name: "f", Type: fnType, Init: identityFn},
		&ast.Call{
			Fn:   &ast.Variable{Name: "f", DeclaredType: fnType},
			Args: []ast.Node{intLit(1)},
		},
	}}
	result, err := analyze(t, block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	call := result.(*ir.Block).Statements[1].(*ir.Call)
	if call.IsAsync() {
		t.Fatalf("expected Call with sync args to be sync")
	}

	asyncIdentity := &ast.AsyncFunction{
		Params: []ast.Param{{Name: "x", Type: types.Integer}},
		Output: types.Integer,
		Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
	}
	block2 := &ast.Block{Statements: []ast.Node{
		&ast.Let{Name: "g", Type: asyncFnType, Init: asyncIdentity},
		&ast.CallAsync{
			Fn:   &ast.Variable{Name: "g", DeclaredType: asyncFnType},
			Args: []ast.Node{intLit(1)},
		},
	}}
	result2, err := analyze(t, block2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	callAsync := result2.(*ir.Block).Statements[1].(*ir.CallAsync)
	if !callAsync.IsAsync() {
		t.Fatalf("expected CallAsync to always be async")
	}
}

// E4 — Recursive-type match: a variant wrapped in a Recursive type is
// expanded one step before case-matching.
func TestRecursiveTypeMatch(t *testing.T) {
	var listType *types.RecursiveType
	listType = types.NewRecursive("IntList", func(self types.Type) types.Type {
		return types.NewVariant(
			types.Case{Name: "Nil", Type: types.Null},
			types.Case{Name: "Cons", Type: types.NewStruct(
				types.Field{Name: "head", Type: types.Integer},
				types.Field{Name: "tail", Type: self},
			)},
		)
	})

	wrapped := &ast.WrapRecursive{
		Type: listType,
		Value: &ast.Variant{
			Type: listType.Body(),
			Case: "Nil",
			Payload: &ast.Value{Type: types.Null, Literal: nil},
		},
	}

	match := &ast.Match{
		Type:    types.Null,
		Variant: &ast.UnwrapRecursive{Type: listType.Body(), Value: wrapped},
		Cases: []ast.MatchCase{
			{CaseName: "Nil", CaseVar: "n", Body: &ast.Value{Type: types.Null, Literal: nil}},
			{CaseName: "Cons", CaseVar: "c", Body: &ast.Value{Type: types.Null, Literal: nil}},
		},
	}

	_, err := analyze(t, match)
	if err != nil {
		t.Fatalf("unexpected error matching a recursive variant: %v", err)
	}
}

// E5 — Shape error: Match on a value typed Integer fails with ShapeError
// "expected Variant".
func TestMatchOnNonVariantIsShapeError(t *testing.T) {
	match := &ast.Match{
		Type:    types.Null,
		Variant: intLit(1),
		Cases:   nil,
	}
	_, err := analyze(t, match)
	diag, ok := err.(*errors.Diagnostic)
	if !ok {
		t.Fatalf("expected a *errors.Diagnostic, got %T (%v)", err, err)
	}
	if diag.Kind != errors.ShapeError {
		t.Fatalf("expected ShapeError, got %s: %s", diag.Kind, diag.Message)
	}
}

// E6 — Bad cast rejection: identical source/target is an unnecessary-cast
// SubtypeError; an unrelated target is a not-a-subtype SubtypeError.
func TestBadCastRejection(t *testing.T) {
	unnecessary := &ast.As{Value: intLit(1), Target: types.Integer}
	_, err := analyze(t, unnecessary)
	diag, ok := err.(*errors.Diagnostic)
	if !ok || diag.Kind != errors.SubtypeError {
		t.Fatalf("expected SubtypeError for unnecessary cast, got %v", err)
	}

	notSubtype := &ast.As{Value: intLit(1), Target: types.String}
	_, err = analyze(t, notSubtype)
	diag, ok = err.(*errors.Diagnostic)
	if !ok || diag.Kind != errors.SubtypeError {
		t.Fatalf("expected SubtypeError for unrelated cast target, got %v", err)
	}
}

func TestAssignToImmutableIsScopeError(t *testing.T) {
	block := &ast.Block{Statements: []ast.Node{
		&ast.Let{Name: "x", Type: types.Integer, Mutable: false, Init: intLit(1)},
		&ast.Assign{Name: "x", Value: intLit(2)},
	}}
	_, err := analyze(t, block)
	diag, ok := err.(*errors.Diagnostic)
	if !ok || diag.Kind != errors.ScopeError {
		t.Fatalf("expected ScopeError assigning to an immutable binding, got %v", err)
	}
}

func TestUndefinedVariableIsScopeError(t *testing.T) {
	_, err := analyze(t, &ast.Variable{Name: "nope", DeclaredType: types.Integer})
	diag, ok := err.(*errors.Diagnostic)
	if !ok || diag.Kind != errors.ScopeError {
		t.Fatalf("expected ScopeError for an unresolved name, got %v", err)
	}
}

func TestReturnOutsideFunctionIsControlFlowError(t *testing.T) {
	_, err := analyze(t, &ast.Return{Value: intLit(1)})
	diag, ok := err.(*errors.Diagnostic)
	if !ok || diag.Kind != errors.ControlFlowError {
		t.Fatalf("expected ControlFlowError for a top-level return, got %v", err)
	}
}
