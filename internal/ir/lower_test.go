package ir_test

import (
	"math/big"
	"testing"

	"github.com/elaraai/east-sub001/internal/ast"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/types"
)

func intLit(v int64) *ast.Value {
	return &ast.Value{Type: types.Integer, Literal: big.NewInt(v)}
}

// add(x) = fn(y) -> x + y: y is the only parameter, x is a free variable
// captured from the enclosing function.
func buildAddCurried() *ast.Function {
	inner := &ast.Function{
		Params: []ast.Param{{Name: "y", Type: types.Integer}},
		Output: types.Integer,
		Body: &ast.Builtin{
			Name:   "int.add",
			Output: types.Integer,
			Args: []ast.Node{
				&ast.Variable{Name: "x", DeclaredType: types.Integer},
				&ast.Variable{Name: "y", DeclaredType: types.Integer},
			},
		},
	}
	return &ast.Function{
		Params: []ast.Param{{Name: "x", Type: types.Integer}},
		Output: types.NewFunction(types.Integer, types.Integer),
		Body:   inner,
	}
}

func TestLowerAssignsStableIDs(t *testing.T) {
	let := &ast.Let{Name: "n", Type: types.Integer, Init: intLit(1)}
	block := &ast.Block{Statements: []ast.Node{let, &ast.Variable{Name: "n", DeclaredType: types.Integer}}}

	lowered := ir.Lower(block).(*ir.Block)
	def := lowered.Statements[0].(*ir.Let)
	if def.ID == "" {
		t.Fatalf("expected non-empty stable id")
	}
	ref := lowered.Statements[1].(*ir.Variable)
	if ref.Def != def.VarDef {
		t.Fatalf("expected Variable to resolve to the same *VarDef as the Let")
	}
}

func TestLowerCapturesFreeVariableFromEnclosingFunction(t *testing.T) {
	outer := buildAddCurried()
	lowered := ir.Lower(outer).(*ir.Function)
	inner := lowered.Body.(*ir.Function)

	if len(inner.Captures) != 1 {
		t.Fatalf("expected inner function to capture exactly 1 variable, got %d", len(inner.Captures))
	}
	captured := inner.Captures[0]
	if captured.Name != "x" {
		t.Fatalf("expected capture of x, got %s", captured.Name)
	}
	// VarDef.Captured is analyzer-filled, not lowerer-filled (§3.4); lowering
	// only computes the explicit per-function Captures list checked above.
	if captured != lowered.Params[0] {
		t.Fatalf("expected the capture to be the very same *VarDef as the outer param")
	}
}

func TestLowerDoesNotCaptureOwnParams(t *testing.T) {
	fn := &ast.Function{
		Params: []ast.Param{{Name: "x", Type: types.Integer}},
		Output: types.Integer,
		Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
	}
	lowered := ir.Lower(fn).(*ir.Function)
	if len(lowered.Captures) != 0 {
		t.Fatalf("expected no captures, got %d", len(lowered.Captures))
	}
}

func TestBlockTypeIsLastStatement(t *testing.T) {
	block := &ast.Block{Statements: []ast.Node{intLit(1), intLit(2)}}
	lowered := ir.Lower(block).(*ir.Block)
	if !lowered.NodeType().Equals(types.Integer) {
		t.Fatalf("expected block type Integer, got %s", lowered.NodeType())
	}
}

func TestTryCatchStackVarHasFixedType(t *testing.T) {
	tc := &ast.TryCatch{
		Type:       types.Null,
		Try:        intLit(1),
		MessageVar: "msg",
		StackVar:   "st",
		Catch:      intLit(1),
	}
	lowered := ir.Lower(tc).(*ir.TryCatch)
	if !lowered.StackVar.Type.Equals(ir.StackType) {
		t.Fatalf("expected stack var type %s, got %s", ir.StackType, lowered.StackVar.Type)
	}
	if !lowered.MessageVar.Type.Equals(types.String) {
		t.Fatalf("expected message var type String, got %s", lowered.MessageVar.Type)
	}
}

func TestDebugDumpRoundTripsThroughGjson(t *testing.T) {
	let := &ast.Let{Name: "n", Type: types.Integer, Init: intLit(1)}
	lowered := ir.Lower(let)

	doc, err := ir.DebugDump(lowered)
	if err != nil {
		t.Fatalf("DebugDump: %v", err)
	}
	if got := ir.Query(doc, "kind"); got != "Let" {
		t.Fatalf("expected kind Let, got %q", got)
	}
	if got := ir.Query(doc, "def.name"); got != "n" {
		t.Fatalf("expected def.name n, got %q", got)
	}
}
