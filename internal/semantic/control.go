package semantic

import (
	"fmt"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/types"
)

func (a *Analyzer) visitError(e *ir.Error, sc *scope) error {
	if err := a.visit(e.Message, sc); err != nil {
		return err
	}
	if !exact(e.Message.NodeType(), types.String) {
		return errors.NewTypeMismatch(e.Pos(), "error message must be a String", types.String, e.Message.NodeType())
	}
	ir.SetType(e, types.Never)
	ir.MarkAsync(e, e.Message.IsAsync())
	return nil
}

func (a *Analyzer) visitTryCatch(tc *ir.TryCatch, sc *scope) error {
	if err := a.visit(tc.Try, sc); err != nil {
		return err
	}
	if !tc.MessageVar.Type.Equals(types.String) {
		return errors.NewIRInvariant(tc.Pos(), "try/catch message variable must be declared String")
	}
	if !tc.StackVar.Type.Equals(ir.StackType) {
		return errors.NewIRInvariant(tc.Pos(), "try/catch stack variable must be declared the fixed stack-trace type")
	}

	catchScope := newScope(sc, false)
	catchScope.define(tc.MessageVar)
	catchScope.define(tc.StackVar)
	if err := a.visit(tc.Catch, catchScope); err != nil {
		return err
	}

	tryNever := tc.Try.NodeType().Kind() == types.KindNever
	catchNever := tc.Catch.NodeType().Kind() == types.KindNever

	async := tc.Try.IsAsync() || tc.Catch.IsAsync()

	if tc.Finally != nil {
		if err := a.visit(tc.Finally, sc); err != nil {
			return err
		}
		async = async || tc.Finally.IsAsync()
	}

	if tryNever && catchNever {
		if tc.Type.Kind() != types.KindNever {
			return errors.NewTypeMismatch(tc.Pos(), "try and catch both diverge, so try/catch must be declared Never", types.Never, tc.Type)
		}
	} else {
		if !tryNever && !exact(tc.Try.NodeType(), tc.Type) {
			return errors.NewTypeMismatch(tc.Pos(), "try body type does not match declared try/catch type", tc.Type, tc.Try.NodeType())
		}
		if !catchNever && !exact(tc.Catch.NodeType(), tc.Type) {
			return errors.NewTypeMismatch(tc.Pos(), "catch body type does not match declared try/catch type", tc.Type, tc.Catch.NodeType())
		}
	}

	ir.MarkAsync(tc, async)
	return nil
}

func (a *Analyzer) visitWhile(w *ir.While, sc *scope) error {
	if err := a.visit(w.Predicate, sc); err != nil {
		return err
	}
	if !exact(w.Predicate.NodeType(), types.Boolean) {
		return errors.NewTypeMismatch(w.Pos(), "while predicate must be Boolean", types.Boolean, w.Predicate.NodeType())
	}
	if err := a.visit(w.Body, sc); err != nil {
		return err
	}
	ir.SetType(w, types.Null)
	ir.MarkAsync(w, anyAsync(w.Predicate, w.Body))
	return nil
}

func (a *Analyzer) visitForArray(f *ir.ForArray, sc *scope) error {
	if err := a.visit(f.Collection, sc); err != nil {
		return err
	}
	arr, ok := f.Collection.NodeType().(*types.ArrayType)
	if !ok {
		return errors.NewShapeError(f.Pos(), "for-array collection must be an Array")
	}
	if !f.KeyVar.Type.Equals(types.Integer) {
		return errors.NewIRInvariant(f.Pos(), "for-array key variable must be declared Integer")
	}
	if f.ValueVar.Type == nil {
		f.ValueVar.Type = arr.Elem
	}
	if !f.ValueVar.Type.Equals(arr.Elem) {
		return errors.NewTypeMismatch(f.Pos(), "for-array value variable type does not match the array's element type", arr.Elem, f.ValueVar.Type)
	}
	inner := newScope(sc, false)
	inner.define(f.KeyVar)
	inner.define(f.ValueVar)
	if err := a.visit(f.Body, inner); err != nil {
		return err
	}
	ir.SetType(f, types.Null)
	ir.MarkAsync(f, anyAsync(f.Collection, f.Body))
	return nil
}

func (a *Analyzer) visitForSet(f *ir.ForSet, sc *scope) error {
	if err := a.visit(f.Collection, sc); err != nil {
		return err
	}
	set, ok := f.Collection.NodeType().(*types.SetType)
	if !ok {
		return errors.NewShapeError(f.Pos(), "for-set collection must be a Set")
	}
	if f.ValueVar.Type == nil {
		f.ValueVar.Type = set.Key
	}
	if !f.ValueVar.Type.Equals(set.Key) {
		return errors.NewTypeMismatch(f.Pos(), "for-set value variable type does not match the set's key type", set.Key, f.ValueVar.Type)
	}
	inner := newScope(sc, false)
	inner.define(f.ValueVar)
	if err := a.visit(f.Body, inner); err != nil {
		return err
	}
	ir.SetType(f, types.Null)
	ir.MarkAsync(f, anyAsync(f.Collection, f.Body))
	return nil
}

func (a *Analyzer) visitForDict(f *ir.ForDict, sc *scope) error {
	if err := a.visit(f.Collection, sc); err != nil {
		return err
	}
	dict, ok := f.Collection.NodeType().(*types.DictType)
	if !ok {
		return errors.NewShapeError(f.Pos(), "for-dict collection must be a Dict")
	}
	if f.KeyVar.Type == nil {
		f.KeyVar.Type = dict.Key
	}
	if !f.KeyVar.Type.Equals(dict.Key) {
		return errors.NewTypeMismatch(f.Pos(), "for-dict key variable type does not match the dict's key type", dict.Key, f.KeyVar.Type)
	}
	if f.ValueVar.Type == nil {
		f.ValueVar.Type = dict.Value
	}
	if !f.ValueVar.Type.Equals(dict.Value) {
		return errors.NewTypeMismatch(f.Pos(), "for-dict value variable type does not match the dict's value type", dict.Value, f.ValueVar.Type)
	}
	inner := newScope(sc, false)
	inner.define(f.KeyVar)
	inner.define(f.ValueVar)
	if err := a.visit(f.Body, inner); err != nil {
		return err
	}
	ir.SetType(f, types.Null)
	ir.MarkAsync(f, anyAsync(f.Collection, f.Body))
	return nil
}

func (a *Analyzer) visitIfElse(ie *ir.IfElse, sc *scope) error {
	allNever := true
	async := false
	for i, branch := range ie.Branches {
		if err := a.visit(branch.Predicate, sc); err != nil {
			return err
		}
		if !exact(branch.Predicate.NodeType(), types.Boolean) {
			return errors.NewTypeMismatch(branch.Predicate.Pos(), fmt.Sprintf("branch %d predicate must be Boolean", i), types.Boolean, branch.Predicate.NodeType())
		}
		if err := a.visit(branch.Body, sc); err != nil {
			return err
		}
		if branch.Body.NodeType().Kind() != types.KindNever {
			allNever = false
			if !exact(branch.Body.NodeType(), ie.Type) {
				return errors.NewTypeMismatch(branch.Body.Pos(), fmt.Sprintf("branch %d type does not match declared if/else type", i), ie.Type, branch.Body.NodeType())
			}
		}
		async = async || anyAsync(branch.Predicate, branch.Body)
	}
	if ie.Else != nil {
		if err := a.visit(ie.Else, sc); err != nil {
			return err
		}
		if ie.Else.NodeType().Kind() != types.KindNever {
			allNever = false
			if !exact(ie.Else.NodeType(), ie.Type) {
				return errors.NewTypeMismatch(ie.Else.Pos(), "else branch type does not match declared if/else type", ie.Type, ie.Else.NodeType())
			}
		}
		async = async || ie.Else.IsAsync()
	} else {
		allNever = false
	}
	if allNever && ie.Type.Kind() != types.KindNever {
		return errors.NewControlFlowError(ie.Pos(), "all branches diverge, so if/else must be declared Never")
	}
	ir.MarkAsync(ie, async)
	return nil
}

func (a *Analyzer) visitMatch(m *ir.Match, sc *scope) error {
	if err := a.visit(m.Variant, sc); err != nil {
		return err
	}
	expanded := types.Expand(m.Variant.NodeType())
	variantType, ok := expanded.(*types.VariantType)
	if !ok {
		return errors.NewShapeError(m.Pos(), fmt.Sprintf("expected Variant as match subject, got %s", m.Variant.NodeType()))
	}
	if len(m.Cases) != len(variantType.Cases) {
		return errors.NewShapeError(m.Pos(), fmt.Sprintf("match is not exhaustive: declared variant has %d cases, match has %d", len(variantType.Cases), len(m.Cases)))
	}
	seen := make(map[string]bool, len(m.Cases))
	allNever := true
	async := m.Variant.IsAsync()
	for _, c := range m.Cases {
		payloadType, ok := variantType.CaseType(c.CaseName)
		if !ok {
			return errors.NewShapeError(m.Pos(), fmt.Sprintf("match case %q is not a case of the matched variant", c.CaseName))
		}
		if seen[c.CaseName] {
			return errors.NewShapeError(m.Pos(), fmt.Sprintf("match case %q is duplicated", c.CaseName))
		}
		seen[c.CaseName] = true
		if c.CaseVar != nil {
			if c.CaseVar.Type == nil {
				c.CaseVar.Type = payloadType
			}
			if !c.CaseVar.Type.Equals(payloadType) {
				return errors.NewTypeMismatch(c.Body.Pos(), fmt.Sprintf("match case %q variable type does not match its payload type", c.CaseName), payloadType, c.CaseVar.Type)
			}
		}
		inner := newScope(sc, false)
		if c.CaseVar != nil {
			inner.define(c.CaseVar)
		}
		if err := a.visit(c.Body, inner); err != nil {
			return err
		}
		if c.Body.NodeType().Kind() != types.KindNever {
			allNever = false
			if !exact(c.Body.NodeType(), m.Type) {
				return errors.NewTypeMismatch(c.Body.Pos(), fmt.Sprintf("match case %q body type does not match declared match type", c.CaseName), m.Type, c.Body.NodeType())
			}
		}
		async = async || c.Body.IsAsync()
	}
	if allNever && m.Type.Kind() != types.KindNever {
		return errors.NewControlFlowError(m.Pos(), "all match cases diverge, so match must be declared Never")
	}
	ir.MarkAsync(m, async)
	return nil
}
