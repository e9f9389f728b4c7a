package ir

import (
	"github.com/google/uuid"

	"github.com/elaraai/east-sub001/internal/ast"
	"github.com/elaraai/east-sub001/internal/types"
)

// scope is one lexical block's name -> binding table.
type scope map[string]*VarDef

// frame tracks one function literal's free-variable capture set while its
// body is being lowered (§4.2). Captures are recorded in first-use order
// for deterministic IR output.
type frame struct {
	locals     map[*VarDef]bool
	captureSet map[*VarDef]bool
	captures   []*VarDef
}

// Lowerer performs the pure AST-to-IR transformation: fresh identifier
// assignment for every binding and closure-conversion capture analysis for
// every function literal. It has no notion of types or errors — both the
// declared types and any mistakes in them pass through unchanged for the
// analyzer to check (§2).
type Lowerer struct {
	scopes []scope
	frames []*frame
}

// NewLowerer returns a Lowerer ready to lower a single top-level program.
func NewLowerer() *Lowerer {
	return &Lowerer{
		scopes: []scope{{}},
		frames: []*frame{{locals: map[*VarDef]bool{}, captureSet: map[*VarDef]bool{}}},
	}
}

// Lower runs the full lowering pass over a program built from a single
// top-level node.
func Lower(n ast.Node) Node {
	return NewLowerer().lower(n)
}

func freshID(name string) string {
	return name + "#" + uuid.New().String()[:8]
}

func (l *Lowerer) pushScope()        { l.scopes = append(l.scopes, scope{}) }
func (l *Lowerer) popScope()         { l.scopes = l.scopes[:len(l.scopes)-1] }
func (l *Lowerer) top() scope        { return l.scopes[len(l.scopes)-1] }
func (l *Lowerer) curFrame() *frame  { return l.frames[len(l.frames)-1] }

func (l *Lowerer) define(name string, vd *VarDef) {
	l.top()[name] = vd
	l.curFrame().locals[vd] = true
}

// resolve finds the binding for name, recording it in every function
// frame's capture list strictly between the reference and the frame that
// owns the binding (§4.2b). It does not touch VarDef.Captured: that flag
// is analyzer-filled (§3.4), not lowerer-filled — lowering only computes
// each function's explicit Captures list.
func (l *Lowerer) resolve(name string) *VarDef {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		vd, ok := l.scopes[i][name]
		if !ok {
			continue
		}
		for j := len(l.frames) - 1; j >= 0; j-- {
			fr := l.frames[j]
			if fr.locals[vd] {
				break
			}
			if !fr.captureSet[vd] {
				fr.captureSet[vd] = true
				fr.captures = append(fr.captures, vd)
			}
		}
		return vd
	}
	// Unresolved names are a builder-level contract violation, not a
	// lowering-time diagnostic (§2: lowering is pure and cannot fail); the
	// analyzer's scope pass is the one place this is actually reported.
	return nil
}

func (l *Lowerer) lower(n ast.Node) Node {
	switch v := n.(type) {
	case *ast.Value:
		return &Value{Base: Base{Loc: v.Loc, Type: v.Type}, Literal: v.Literal}

	case *ast.Variable:
		def := l.resolve(v.Name)
		return &Variable{Base: Base{Loc: v.Loc, Type: v.DeclaredType}, Def: def, Mutable: v.Mutable}

	case *ast.Let:
		init := l.lower(v.Init)
		vd := &VarDef{
			Base:    Base{Loc: v.Loc, Type: v.Type},
			ID:      freshID(v.Name),
			Name:    v.Name,
			Mutable: v.Mutable,
		}
		l.define(v.Name, vd)
		return &Let{VarDef: vd, Init: init}

	case *ast.Assign:
		def := l.resolve(v.Name)
		value := l.lower(v.Value)
		return &Assign{Base: Base{Loc: v.Loc, Type: types.Null}, Def: def, Value: value}

	case *ast.Block:
		l.pushScope()
		stmts := make([]Node, len(v.Statements))
		for i, s := range v.Statements {
			stmts[i] = l.lower(s)
		}
		l.popScope()
		last := stmts[len(stmts)-1]
		return &Block{Base: Base{Loc: v.Loc, Type: last.NodeType()}, Statements: stmts}

	case *ast.As:
		val := l.lower(v.Value)
		return &As{Base: Base{Loc: v.Loc, Type: v.Target}, Value: val}

	case *ast.Function:
		l.pushScope()
		l.frames = append(l.frames, &frame{locals: map[*VarDef]bool{}, captureSet: map[*VarDef]bool{}})
		params := l.lowerParams(v.Params)
		body := l.lower(v.Body)
		fr := l.curFrame()
		l.frames = l.frames[:len(l.frames)-1]
		l.popScope()
		return &Function{
			Base:     Base{Loc: v.Loc, Type: types.NewFunction(v.Output, paramTypes(v.Params)...)},
			Params:   params,
			Captures: fr.captures,
			Body:     body,
		}

	case *ast.AsyncFunction:
		l.pushScope()
		l.frames = append(l.frames, &frame{locals: map[*VarDef]bool{}, captureSet: map[*VarDef]bool{}})
		params := l.lowerParams(v.Params)
		body := l.lower(v.Body)
		fr := l.curFrame()
		l.frames = l.frames[:len(l.frames)-1]
		l.popScope()
		return &AsyncFunction{
			Base:     Base{Loc: v.Loc, Type: types.NewAsyncFunction(v.Output, paramTypes(v.Params)...)},
			Params:   params,
			Captures: fr.captures,
			Body:     body,
		}

	case *ast.Call:
		return &Call{Base: Base{Loc: v.Loc}, Fn: l.lower(v.Fn), Args: l.lowerList(v.Args)}

	case *ast.CallAsync:
		return &CallAsync{Base: Base{Loc: v.Loc}, Fn: l.lower(v.Fn), Args: l.lowerList(v.Args)}

	case *ast.Platform:
		return &Platform{Base: Base{Loc: v.Loc, Type: v.Output}, Name: v.Name, Args: l.lowerList(v.Args)}

	case *ast.Builtin:
		return &Builtin{Base: Base{Loc: v.Loc, Type: v.Output}, Name: v.Name, Args: l.lowerList(v.Args)}

	case *ast.Return:
		var val Node
		if v.Value != nil {
			val = l.lower(v.Value)
		}
		return &Return{Base: Base{Loc: v.Loc}, Value: val}

	case *ast.Break:
		return &Break{Base: Base{Loc: v.Loc}}

	case *ast.Continue:
		return &Continue{Base: Base{Loc: v.Loc}}

	case *ast.Error:
		return &Error{Base: Base{Loc: v.Loc}, Message: l.lower(v.Message)}

	case *ast.TryCatch:
		try := l.lower(v.Try)
		l.pushScope()
		msg := &VarDef{Base: Base{Loc: v.Loc, Type: types.String}, ID: freshID(v.MessageVar), Name: v.MessageVar}
		stack := &VarDef{Base: Base{Loc: v.Loc, Type: StackType}, ID: freshID(v.StackVar), Name: v.StackVar}
		l.define(v.MessageVar, msg)
		l.define(v.StackVar, stack)
		catch := l.lower(v.Catch)
		l.popScope()
		var fin Node
		if v.Finally != nil {
			fin = l.lower(v.Finally)
		}
		return &TryCatch{
			Base:       Base{Loc: v.Loc, Type: v.Type},
			Try:        try,
			MessageVar: msg,
			StackVar:   stack,
			Catch:      catch,
			Finally:    fin,
		}

	case *ast.While:
		pred := l.lower(v.Predicate)
		body := l.lower(v.Body)
		return &While{Base: Base{Loc: v.Loc}, Predicate: pred, Body: body}

	case *ast.ForArray:
		coll := l.lower(v.Collection)
		l.pushScope()
		key := &VarDef{Base: Base{Loc: v.Loc, Type: types.Integer}, ID: freshID(v.KeyVar), Name: v.KeyVar}
		val := &VarDef{Base: Base{Loc: v.Loc}, ID: freshID(v.ValueVar), Name: v.ValueVar}
		l.define(v.KeyVar, key)
		l.define(v.ValueVar, val)
		body := l.lower(v.Body)
		l.popScope()
		return &ForArray{Base: Base{Loc: v.Loc}, Collection: coll, KeyVar: key, ValueVar: val, Body: body}

	case *ast.ForSet:
		coll := l.lower(v.Collection)
		l.pushScope()
		val := &VarDef{Base: Base{Loc: v.Loc}, ID: freshID(v.ValueVar), Name: v.ValueVar}
		l.define(v.ValueVar, val)
		body := l.lower(v.Body)
		l.popScope()
		return &ForSet{Base: Base{Loc: v.Loc}, Collection: coll, ValueVar: val, Body: body}

	case *ast.ForDict:
		coll := l.lower(v.Collection)
		l.pushScope()
		key := &VarDef{Base: Base{Loc: v.Loc}, ID: freshID(v.KeyVar), Name: v.KeyVar}
		val := &VarDef{Base: Base{Loc: v.Loc}, ID: freshID(v.ValueVar), Name: v.ValueVar}
		l.define(v.KeyVar, key)
		l.define(v.ValueVar, val)
		body := l.lower(v.Body)
		l.popScope()
		return &ForDict{Base: Base{Loc: v.Loc}, Collection: coll, KeyVar: key, ValueVar: val, Body: body}

	case *ast.IfElse:
		branches := make([]IfBranch, len(v.Branches))
		for i, b := range v.Branches {
			branches[i] = IfBranch{Predicate: l.lower(b.Predicate), Body: l.lower(b.Body)}
		}
		var els Node
		if v.Else != nil {
			els = l.lower(v.Else)
		}
		return &IfElse{Base: Base{Loc: v.Loc, Type: v.Type}, Branches: branches, Else: els}

	case *ast.Match:
		variant := l.lower(v.Variant)
		cases := make([]MatchCase, len(v.Cases))
		for i, c := range v.Cases {
			l.pushScope()
			var caseVar *VarDef
			if c.CaseVar != "" {
				caseVar = &VarDef{Base: Base{Loc: v.Loc}, ID: freshID(c.CaseVar), Name: c.CaseVar}
				l.define(c.CaseVar, caseVar)
			}
			cases[i] = MatchCase{CaseName: c.CaseName, CaseVar: caseVar, Body: l.lower(c.Body)}
			l.popScope()
		}
		return &Match{Base: Base{Loc: v.Loc, Type: v.Type}, Variant: variant, Cases: cases}

	case *ast.NewRef:
		return &NewRef{Base: Base{Loc: v.Loc, Type: v.Type}, Init: l.lower(v.Init)}

	case *ast.NewArray:
		return &NewArray{Base: Base{Loc: v.Loc, Type: v.Type}, Elements: l.lowerList(v.Elements)}

	case *ast.NewSet:
		return &NewSet{Base: Base{Loc: v.Loc, Type: v.Type}, Elements: l.lowerList(v.Elements)}

	case *ast.NewDict:
		entries := make([]DictEntry, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = DictEntry{Key: l.lower(e.Key), Value: l.lower(e.Value)}
		}
		return &NewDict{Base: Base{Loc: v.Loc, Type: v.Type}, Entries: entries}

	case *ast.Struct:
		fields := make([]StructFieldValue, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = StructFieldValue{Name: f.Name, Value: l.lower(f.Value)}
		}
		return &Struct{Base: Base{Loc: v.Loc, Type: v.Type}, Fields: fields}

	case *ast.Variant:
		return &Variant{Base: Base{Loc: v.Loc, Type: v.Type}, Case: v.Case, Payload: l.lower(v.Payload)}

	case *ast.GetField:
		return &GetField{Base: Base{Loc: v.Loc}, Struct: l.lower(v.Struct), Field: v.Field}

	case *ast.WrapRecursive:
		return &WrapRecursive{Base: Base{Loc: v.Loc, Type: v.Type}, Value: l.lower(v.Value)}

	case *ast.UnwrapRecursive:
		return &UnwrapRecursive{Base: Base{Loc: v.Loc, Type: v.Type}, Value: l.lower(v.Value)}

	default:
		panic("ir: lower: unhandled ast node")
	}
}

func (l *Lowerer) lowerList(ns []ast.Node) []Node {
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = l.lower(n)
	}
	return out
}

func (l *Lowerer) lowerParams(params []ast.Param) []*Param {
	out := make([]*Param, len(params))
	for i, p := range params {
		vd := &VarDef{
			Base:    Base{Type: p.Type},
			ID:      freshID(p.Name),
			Name:    p.Name,
			Mutable: p.Mutable,
		}
		out[i] = vd
		l.define(p.Name, vd)
	}
	return out
}

func paramTypes(params []ast.Param) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}
