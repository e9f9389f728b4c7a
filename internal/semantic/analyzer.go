// Package semantic implements East's single-pass semantic analyzer
// (§4.3): it walks a lowered IR tree once, checks every typing and
// scoping rule, and enriches the tree in place with is_async and
// captured flags. It is grounded on the teacher's SymbolTable/Environment
// scope-chain idiom (internal/semantic/symbol_table.go,
// internal/interp/environment.go) and its CompilerError-style
// single-diagnostic failure mode (internal/errors/errors.go), adapted to
// East's fail-fast, non-overloaded, case-sensitive analysis contract.
package semantic

import (
	"fmt"
	"strings"

	"github.com/elaraai/east-sub001/internal/builtin"
	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/types"
)

// Analyzer runs the single recursive pass described in §4.3. Its
// platform and builtin tables are read-only collaborators supplied once
// at construction; everything else is local to one Analyze call and
// discarded on return (§5).
type Analyzer struct {
	platform *platform.Table
	builtins *builtin.Table

	visiting       map[ir.Node]bool
	trail          errors.Trail
	expectedReturn types.Type // nil outside any function body
}

// New returns an Analyzer consulting the given platform and builtin
// tables.
func New(platformTable *platform.Table, builtinTable *builtin.Table) *Analyzer {
	return &Analyzer{
		platform: platformTable,
		builtins: builtinTable,
		visiting: make(map[ir.Node]bool),
	}
}

// Analyze runs the pass over root, returning the same tree enriched with
// is_async/captured flags, or the first Diagnostic encountered (§7).
func (a *Analyzer) Analyze(root ir.Node) (ir.Node, error) {
	top := newScope(nil, false)
	if err := a.visit(root, top); err != nil {
		return nil, err
	}
	return root, nil
}

// visit dispatches on the dynamic node kind, enforcing the cycle guard
// (§5 "visiting set") before delegating to the per-kind contract. Each
// per-kind method is responsible for calling ir.SetType/ir.MarkAsync on n
// to record its result.
func (a *Analyzer) visit(n ir.Node, sc *scope) error {
	if n == nil {
		return nil
	}
	if a.visiting[n] {
		return errors.NewIRInvariant(n.Pos(), "cyclic IR reference")
	}
	a.visiting[n] = true
	defer delete(a.visiting, n)

	savedTrail := a.trail
	a.trail = a.trail.Push(errors.Frame{NodeKind: nodeKindName(n), Loc: n.Pos()})
	defer func() { a.trail = savedTrail }()

	err := a.dispatch(n, sc)
	if diag, ok := err.(*errors.Diagnostic); ok && diag.Trail.Depth() == 0 {
		diag.Trail = a.trail
	}
	return err
}

// nodeKindName renders the dynamic IR node kind for a trail frame, e.g.
// "*ir.Block" -> "Block".
func nodeKindName(n ir.Node) string {
	s := fmt.Sprintf("%T", n)
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

func (a *Analyzer) dispatch(n ir.Node, sc *scope) error {
	switch v := n.(type) {
	case *ir.Value:
		return a.visitValue(v)
	case *ir.Variable:
		return a.visitVariable(v, sc)
	case *ir.Let:
		return a.visitLet(v, sc)
	case *ir.Assign:
		return a.visitAssign(v, sc)
	case *ir.Block:
		return a.visitBlock(v, sc)
	case *ir.As:
		return a.visitAs(v, sc)
	case *ir.Function:
		return a.visitFunction(v, sc)
	case *ir.AsyncFunction:
		return a.visitAsyncFunction(v, sc)
	case *ir.Call:
		return a.visitCall(v, sc)
	case *ir.CallAsync:
		return a.visitCallAsync(v, sc)
	case *ir.Platform:
		return a.visitPlatform(v, sc)
	case *ir.Builtin:
		return a.visitBuiltin(v, sc)
	case *ir.Return:
		return a.visitReturn(v, sc)
	case *ir.Break:
		ir.SetType(v, types.Never)
		return nil
	case *ir.Continue:
		ir.SetType(v, types.Never)
		return nil
	case *ir.Error:
		return a.visitError(v, sc)
	case *ir.TryCatch:
		return a.visitTryCatch(v, sc)
	case *ir.While:
		return a.visitWhile(v, sc)
	case *ir.ForArray:
		return a.visitForArray(v, sc)
	case *ir.ForSet:
		return a.visitForSet(v, sc)
	case *ir.ForDict:
		return a.visitForDict(v, sc)
	case *ir.IfElse:
		return a.visitIfElse(v, sc)
	case *ir.Match:
		return a.visitMatch(v, sc)
	case *ir.NewRef:
		return a.visitNewRef(v, sc)
	case *ir.NewArray:
		return a.visitNewArray(v, sc)
	case *ir.NewSet:
		return a.visitNewSet(v, sc)
	case *ir.NewDict:
		return a.visitNewDict(v, sc)
	case *ir.Struct:
		return a.visitStruct(v, sc)
	case *ir.Variant:
		return a.visitVariant(v, sc)
	case *ir.GetField:
		return a.visitGetField(v, sc)
	case *ir.WrapRecursive:
		return a.visitWrapRecursive(v, sc)
	case *ir.UnwrapRecursive:
		return a.visitUnwrapRecursive(v, sc)
	default:
		return errors.NewIRInvariant(n.Pos(), "unrecognized IR node kind")
	}
}

// exact reports whether actual satisfies an exact-type-equality
// requirement against expected, honoring the one blanket exception in
// §3.5: a Never-typed subterm is accepted anywhere.
func exact(actual, expected types.Type) bool {
	if actual.Kind() == types.KindNever {
		return true
	}
	return actual.Equals(expected)
}

// anyAsync reports whether any of ns is async, for the OR-contagion rule
// shared by Block/Call/Error/etc (§4.3 "Async propagation").
func anyAsync(ns ...ir.Node) bool {
	for _, n := range ns {
		if n != nil && n.IsAsync() {
			return true
		}
	}
	return false
}
