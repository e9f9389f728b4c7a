package semantic

import (
	"fmt"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/types"
)

func (a *Analyzer) visitFunction(f *ir.Function, sc *scope) error {
	return a.visitFunctionLike(false, &f.Base, f.Params, f.Captures, f.Body, sc)
}

func (a *Analyzer) visitAsyncFunction(f *ir.AsyncFunction, sc *scope) error {
	return a.visitFunctionLike(true, &f.Base, f.Params, f.Captures, f.Body, sc)
}

// visitFunctionLike implements the shared Function/AsyncFunction contract
// (§4.3): the declared type's tag must agree with the node kind, captures
// must already resolve in the enclosing scope, a fresh function-boundary
// scope is populated with captures then parameters, the body is visited
// with expected_return_type set to the signature's output, and the body's
// type must be Never or exactly that output. The function literal itself
// is always sync — async only contaminates the *call*, not the
// definition (§4.3 "Async propagation").
func (a *Analyzer) visitFunctionLike(async bool, base *ir.Base, params []*ir.Param, captures []*ir.VarDef, body ir.Node, sc *scope) error {
	var inputs []types.Type
	var output types.Type
	if async {
		ft, ok := base.Type.(*types.AsyncFunctionType)
		if !ok {
			return errors.NewShapeError(base.Pos(), "AsyncFunction node must declare an AsyncFunction type")
		}
		inputs, output = ft.Inputs, ft.Output
	} else {
		ft, ok := base.Type.(*types.FunctionType)
		if !ok {
			return errors.NewShapeError(base.Pos(), "Function node must declare a Function type")
		}
		inputs, output = ft.Inputs, ft.Output
	}
	if len(inputs) != len(params) {
		return errors.NewShapeError(base.Pos(), fmt.Sprintf("declared signature has %d inputs but function has %d parameters", len(inputs), len(params)))
	}
	for i, p := range params {
		if !p.Type.Equals(inputs[i]) {
			return errors.NewTypeMismatch(base.Pos(), fmt.Sprintf("parameter %q type does not match declared signature", p.Name), inputs[i], p.Type)
		}
	}

	// A capture is, by lowering's own definition (§4.2b), a binding a
	// nested function body references from an enclosing scope — so
	// membership in this list is exactly when Captured (§3.4) is set, no
	// separate scope-crossing detection needed.
	for _, c := range captures {
		if !sc.resolve(c) {
			return errors.NewScopeError(base.Pos(), c.Name)
		}
		c.Captured = true
	}

	inner := newScope(sc, true)
	for _, c := range captures {
		inner.define(c)
	}
	for _, p := range params {
		inner.define(p)
	}

	savedReturn := a.expectedReturn
	a.expectedReturn = output
	err := a.visit(body, inner)
	a.expectedReturn = savedReturn
	if err != nil {
		return err
	}

	if !exact(body.NodeType(), output) {
		return errors.NewTypeMismatch(base.Pos(), "function body type does not match declared output", output, body.NodeType())
	}

	ir.MarkAsync(base, false)
	return nil
}

func (a *Analyzer) visitCallLike(async bool, base *ir.Base, fn ir.Node, args []ir.Node, sc *scope) error {
	if err := a.visit(fn, sc); err != nil {
		return err
	}
	var inputs []types.Type
	var output types.Type
	if async {
		ft, ok := fn.NodeType().(*types.AsyncFunctionType)
		if !ok {
			return errors.NewShapeError(base.Pos(), "CallAsync target is not an AsyncFunction")
		}
		inputs, output = ft.Inputs, ft.Output
	} else {
		ft, ok := fn.NodeType().(*types.FunctionType)
		if !ok {
			return errors.NewShapeError(base.Pos(), "Call target is not a Function")
		}
		inputs, output = ft.Inputs, ft.Output
	}
	if len(args) != len(inputs) {
		return errors.NewShapeError(base.Pos(), fmt.Sprintf("expected %d arguments, got %d", len(inputs), len(args)))
	}
	for i, arg := range args {
		if err := a.visit(arg, sc); err != nil {
			return err
		}
		if !exact(arg.NodeType(), inputs[i]) {
			return errors.NewTypeMismatch(base.Pos(), fmt.Sprintf("argument %d type does not match parameter type", i), inputs[i], arg.NodeType())
		}
	}
	ir.SetType(base, output)
	if async {
		ir.MarkAsync(base, true)
	} else {
		ir.MarkAsync(base, anyAsync(args...))
	}
	return nil
}

func (a *Analyzer) visitCall(c *ir.Call, sc *scope) error {
	return a.visitCallLike(false, &c.Base, c.Fn, c.Args, sc)
}

func (a *Analyzer) visitCallAsync(c *ir.CallAsync, sc *scope) error {
	return a.visitCallLike(true, &c.Base, c.Fn, c.Args, sc)
}

func (a *Analyzer) visitPlatform(p *ir.Platform, sc *scope) error {
	entry, ok := a.platform.Lookup(p.Name)
	if !ok {
		return errors.NewScopeError(p.Pos(), p.Name)
	}
	if len(p.Args) != len(entry.Inputs) {
		return errors.NewShapeError(p.Pos(), fmt.Sprintf("platform %q expects %d arguments, got %d", p.Name, len(entry.Inputs), len(p.Args)))
	}
	for i, arg := range p.Args {
		if err := a.visit(arg, sc); err != nil {
			return err
		}
		if !exact(arg.NodeType(), entry.Inputs[i]) {
			return errors.NewTypeMismatch(p.Pos(), fmt.Sprintf("platform %q argument %d type mismatch", p.Name, i), entry.Inputs[i], arg.NodeType())
		}
	}
	if p.Type == nil {
		p.Type = entry.Output
	}
	if !p.Type.Equals(entry.Output) {
		return errors.NewTypeMismatch(p.Pos(), fmt.Sprintf("platform %q declared return type does not match its registry entry", p.Name), entry.Output, p.Type)
	}
	ir.MarkAsync(p, entry.Kind == platform.Async || anyAsync(p.Args...))
	return nil
}

func (a *Analyzer) visitBuiltin(b *ir.Builtin, sc *scope) error {
	sig, ok := a.builtins.Lookup(b.Name)
	if !ok {
		suggestions := a.builtins.Suggest(b.Name)
		msg := fmt.Sprintf("unknown builtin %q", b.Name)
		if len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %v?)", suggestions)
		}
		return errors.NewIRInvariant(b.Pos(), msg)
	}
	if len(b.Args) != len(sig.Inputs) {
		return errors.NewShapeError(b.Pos(), fmt.Sprintf("builtin %q expects %d arguments, got %d", b.Name, len(sig.Inputs), len(b.Args)))
	}
	for i, arg := range b.Args {
		if err := a.visit(arg, sc); err != nil {
			return err
		}
		if !exact(arg.NodeType(), sig.Inputs[i]) {
			return errors.NewTypeMismatch(b.Pos(), fmt.Sprintf("builtin %q argument %d type mismatch", b.Name, i), sig.Inputs[i], arg.NodeType())
		}
	}
	if b.Type == nil {
		b.Type = sig.Output
	}
	ir.MarkAsync(b, anyAsync(b.Args...))
	return nil
}

func (a *Analyzer) visitReturn(r *ir.Return, sc *scope) error {
	if a.expectedReturn == nil {
		return errors.NewControlFlowError(r.Pos(), "return statement outside of a function body")
	}
	if err := a.visit(r.Value, sc); err != nil {
		return err
	}
	if !exact(r.Value.NodeType(), a.expectedReturn) {
		return errors.NewTypeMismatch(r.Pos(), "returned value type does not match the enclosing function's output", a.expectedReturn, r.Value.NodeType())
	}
	ir.SetType(r, types.Never)
	ir.MarkAsync(r, r.Value.IsAsync())
	return nil
}
