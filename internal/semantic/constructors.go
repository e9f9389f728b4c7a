package semantic

import (
	"fmt"

	"github.com/elaraai/east-sub001/internal/errors"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/types"
)

func (a *Analyzer) visitNewRef(nr *ir.NewRef, sc *scope) error {
	refType, ok := nr.Type.(*types.RefType)
	if !ok {
		return errors.NewShapeError(nr.Pos(), "NewRef node must declare a Ref type")
	}
	if err := a.visit(nr.Init, sc); err != nil {
		return err
	}
	if !exact(nr.Init.NodeType(), refType.Elem) {
		return errors.NewTypeMismatch(nr.Pos(), "ref initializer type does not match the declared element type", refType.Elem, nr.Init.NodeType())
	}
	ir.MarkAsync(nr, nr.Init.IsAsync())
	return nil
}

func (a *Analyzer) visitNewArray(na *ir.NewArray, sc *scope) error {
	arrType, ok := na.Type.(*types.ArrayType)
	if !ok {
		return errors.NewShapeError(na.Pos(), "NewArray node must declare an Array type")
	}
	async := false
	for i, el := range na.Elements {
		if err := a.visit(el, sc); err != nil {
			return err
		}
		if !exact(el.NodeType(), arrType.Elem) {
			return errors.NewTypeMismatch(el.Pos(), fmt.Sprintf("array element %d type does not match the declared element type", i), arrType.Elem, el.NodeType())
		}
		async = async || el.IsAsync()
	}
	ir.MarkAsync(na, async)
	return nil
}

func (a *Analyzer) visitNewSet(ns *ir.NewSet, sc *scope) error {
	setType, ok := ns.Type.(*types.SetType)
	if !ok {
		return errors.NewShapeError(ns.Pos(), "NewSet node must declare a Set type")
	}
	async := false
	for i, el := range ns.Elements {
		if err := a.visit(el, sc); err != nil {
			return err
		}
		if !exact(el.NodeType(), setType.Key) {
			return errors.NewTypeMismatch(el.Pos(), fmt.Sprintf("set element %d type does not match the declared key type", i), setType.Key, el.NodeType())
		}
		async = async || el.IsAsync()
	}
	ir.MarkAsync(ns, async)
	return nil
}

func (a *Analyzer) visitNewDict(nd *ir.NewDict, sc *scope) error {
	dictType, ok := nd.Type.(*types.DictType)
	if !ok {
		return errors.NewShapeError(nd.Pos(), "NewDict node must declare a Dict type")
	}
	async := false
	for i, entry := range nd.Entries {
		if err := a.visit(entry.Key, sc); err != nil {
			return err
		}
		if !exact(entry.Key.NodeType(), dictType.Key) {
			return errors.NewTypeMismatch(entry.Key.Pos(), fmt.Sprintf("dict entry %d key type does not match the declared key type", i), dictType.Key, entry.Key.NodeType())
		}
		if err := a.visit(entry.Value, sc); err != nil {
			return err
		}
		if !exact(entry.Value.NodeType(), dictType.Value) {
			return errors.NewTypeMismatch(entry.Value.Pos(), fmt.Sprintf("dict entry %d value type does not match the declared value type", i), dictType.Value, entry.Value.NodeType())
		}
		async = async || entry.Key.IsAsync() || entry.Value.IsAsync()
	}
	ir.MarkAsync(nd, async)
	return nil
}

func (a *Analyzer) visitStruct(s *ir.Struct, sc *scope) error {
	structType, ok := s.Type.(*types.StructType)
	if !ok {
		return errors.NewShapeError(s.Pos(), "Struct node must declare a Struct type")
	}
	if len(s.Fields) != len(structType.Fields) {
		return errors.NewShapeError(s.Pos(), fmt.Sprintf("struct construction has %d fields, declared type has %d", len(s.Fields), len(structType.Fields)))
	}
	async := false
	for i, fv := range s.Fields {
		declared := structType.Fields[i]
		if fv.Name != declared.Name {
			return errors.NewIRInvariant(s.Pos(), fmt.Sprintf("struct field %d is named %q, declared type expects %q at this position", i, fv.Name, declared.Name))
		}
		if err := a.visit(fv.Value, sc); err != nil {
			return err
		}
		if !exact(fv.Value.NodeType(), declared.Type) {
			return errors.NewTypeMismatch(fv.Value.Pos(), fmt.Sprintf("struct field %q type does not match its declared type", fv.Name), declared.Type, fv.Value.NodeType())
		}
		async = async || fv.Value.IsAsync()
	}
	ir.MarkAsync(s, async)
	return nil
}

func (a *Analyzer) visitVariant(v *ir.Variant, sc *scope) error {
	variantType, ok := v.Type.(*types.VariantType)
	if !ok {
		return errors.NewShapeError(v.Pos(), "Variant node must declare a Variant type")
	}
	payloadType, ok := variantType.CaseType(v.Case)
	if !ok {
		return errors.NewShapeError(v.Pos(), fmt.Sprintf("case %q is not a case of the declared variant type", v.Case))
	}
	if err := a.visit(v.Payload, sc); err != nil {
		return err
	}
	if !exact(v.Payload.NodeType(), payloadType) {
		return errors.NewTypeMismatch(v.Pos(), fmt.Sprintf("variant case %q payload type does not match its declared type", v.Case), payloadType, v.Payload.NodeType())
	}
	ir.MarkAsync(v, v.Payload.IsAsync())
	return nil
}

func (a *Analyzer) visitGetField(gf *ir.GetField, sc *scope) error {
	if err := a.visit(gf.Struct, sc); err != nil {
		return err
	}
	structType, ok := gf.Struct.NodeType().(*types.StructType)
	if !ok {
		return errors.NewShapeError(gf.Pos(), "GetField target is not a Struct")
	}
	fieldType, ok := structType.FieldType(gf.Field)
	if !ok {
		return errors.NewShapeError(gf.Pos(), fmt.Sprintf("struct has no field %q", gf.Field))
	}
	if gf.Type == nil {
		gf.Type = fieldType
	}
	if !gf.Type.Equals(fieldType) {
		return errors.NewTypeMismatch(gf.Pos(), "GetField declared type does not match the field's declared type", fieldType, gf.Type)
	}
	ir.MarkAsync(gf, gf.Struct.IsAsync())
	return nil
}

func (a *Analyzer) visitWrapRecursive(wr *ir.WrapRecursive, sc *scope) error {
	recType, ok := wr.Type.(*types.RecursiveType)
	if !ok {
		return errors.NewShapeError(wr.Pos(), "WrapRecursive node must declare a Recursive type")
	}
	if err := a.visit(wr.Value, sc); err != nil {
		return err
	}
	if !exact(wr.Value.NodeType(), recType.Body()) {
		return errors.NewTypeMismatch(wr.Pos(), "wrapped value type does not match the recursive type's one-step expansion", recType.Body(), wr.Value.NodeType())
	}
	ir.MarkAsync(wr, wr.Value.IsAsync())
	return nil
}

func (a *Analyzer) visitUnwrapRecursive(ur *ir.UnwrapRecursive, sc *scope) error {
	if err := a.visit(ur.Value, sc); err != nil {
		return err
	}
	recType, ok := ur.Value.NodeType().(*types.RecursiveType)
	if !ok {
		return errors.NewShapeError(ur.Pos(), "UnwrapRecursive value is not a Recursive type")
	}
	if ur.Type == nil {
		ur.Type = recType.Body()
	}
	if !ur.Type.Equals(recType.Body()) {
		return errors.NewTypeMismatch(ur.Pos(), "UnwrapRecursive declared type does not match the recursive type's one-step expansion", recType.Body(), ur.Type)
	}
	ir.MarkAsync(ur, ur.Value.IsAsync())
	return nil
}
