package semantic

import (
	"fmt"
	"math/big"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/types"
)

// literalKindMatches checks the literal's runtime tag against the
// declared primitive type (§4.3 "Value"). Container/structural/function
// values are out of scope for literal construction (those types are
// built through NewArray/Struct/etc.), so only the primitive kinds need a
// tag check here.
func literalKindMatches(t types.Type, lit interface{}) bool {
	switch t.Kind() {
	case types.KindNull:
		return lit == nil
	case types.KindBoolean:
		_, ok := lit.(bool)
		return ok
	case types.KindInteger:
		_, ok := lit.(*big.Int)
		return ok
	case types.KindFloat:
		_, ok := lit.(float64)
		return ok
	case types.KindString:
		_, ok := lit.(string)
		return ok
	case types.KindDateTime, types.KindBlob:
		return true // opaque runtime payload; printing/codec is an external collaborator (§1)
	default:
		return false
	}
}

func (a *Analyzer) visitValue(v *ir.Value) error {
	if v.Type == nil {
		return errors.NewIRInvariant(v.Pos(), "Value node missing a declared type")
	}
	if !literalKindMatches(v.Type, v.Literal) {
		return errors.NewIRInvariant(v.Pos(), fmt.Sprintf("literal does not match declared type %s", v.Type))
	}
	ir.MarkAsync(v, false)
	return nil
}

func (a *Analyzer) visitVariable(v *ir.Variable, sc *scope) error {
	if v.Def == nil {
		return errors.NewScopeError(v.Pos(), "<unresolved>")
	}
	if !sc.resolve(v.Def) {
		return errors.NewScopeError(v.Pos(), v.Def.Name)
	}
	if v.Type == nil {
		v.Type = v.Def.Type
	}
	if !v.Type.Equals(v.Def.Type) {
		return errors.NewTypeMismatch(v.Pos(), "variable reference type does not match its definition", v.Def.Type, v.Type)
	}
	if v.Mutable != v.Def.Mutable {
		return &errors.Diagnostic{Kind: errors.ScopeError, Loc: v.Pos(), Message: fmt.Sprintf("variable reference %q declares a different mutability than its definition", v.Def.Name)}
	}
	ir.MarkAsync(v, false)
	return nil
}

func (a *Analyzer) visitLet(l *ir.Let, sc *scope) error {
	if err := a.visit(l.Init, sc); err != nil {
		return err
	}
	if !exact(l.Init.NodeType(), l.Type) {
		return errors.NewTypeMismatch(l.Pos(), "let initializer type does not match declared type", l.Type, l.Init.NodeType())
	}
	sc.define(l.VarDef)
	ir.MarkAsync(l, l.Init.IsAsync())
	return nil
}

func (a *Analyzer) visitAssign(as *ir.Assign, sc *scope) error {
	if as.Def == nil {
		return errors.NewScopeError(as.Pos(), "<unresolved>")
	}
	if !sc.resolve(as.Def) {
		return errors.NewScopeError(as.Pos(), as.Def.Name)
	}
	if !as.Def.Mutable {
		return &errors.Diagnostic{Kind: errors.ScopeError, Loc: as.Pos(), Message: fmt.Sprintf("cannot assign to immutable %q", as.Def.Name)}
	}
	if err := a.visit(as.Value, sc); err != nil {
		return err
	}
	if !exact(as.Value.NodeType(), as.Def.Type) {
		return errors.NewTypeMismatch(as.Pos(), "assigned value type does not match variable's declared type", as.Def.Type, as.Value.NodeType())
	}
	ir.MarkAsync(as, as.Value.IsAsync())
	return nil
}

// visitBlock implements §4.3 "Block": a Block has no independently
// declared type (ast.Block carries none) — its type is always exactly
// its last statement's type, so the analyzer derives and sets it rather
// than checking it against a builder-supplied value.
func (a *Analyzer) visitBlock(b *ir.Block, sc *scope) error {
	if len(b.Statements) == 0 {
		return errors.NewShapeError(b.Pos(), "block has no statements")
	}
	inner := newScope(sc, false)
	async := false
	for _, stmt := range b.Statements {
		if err := a.visit(stmt, inner); err != nil {
			return err
		}
		if stmt.IsAsync() {
			async = true
		}
	}
	last := b.Statements[len(b.Statements)-1].NodeType()
	ir.SetType(b, last)
	ir.MarkAsync(b, async)
	return nil
}

func (a *Analyzer) visitAs(as *ir.As, sc *scope) error {
	if err := a.visit(as.Value, sc); err != nil {
		return err
	}
	childType := as.Value.NodeType()
	if childType.Kind() == types.KindNever {
		return errors.NewSubtypeError(as.Pos(), "cannot cast a Never-typed value", as.Type, childType)
	}
	if childType.Equals(as.Type) {
		return errors.NewSubtypeError(as.Pos(), "unnecessary cast: source and target types are identical", as.Type, childType)
	}
	if !childType.IsSubtypeOf(as.Type) {
		return errors.NewSubtypeError(as.Pos(), "cast target is not a supertype of the value's type", as.Type, childType)
	}
	ir.MarkAsync(as, as.Value.IsAsync())
	return nil
}
