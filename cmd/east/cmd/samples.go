package cmd

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/elaraai/east-sub001/internal/ast"
	"github.com/elaraai/east-sub001/internal/builtin"
	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/types"
)

// sample is one named, self-contained AST root the CLI can build, lower,
// and analyze end to end. Samples stand in for the fluent builder surface
// (out of scope, §1): they construct ast.Node values directly, which is
// exactly what that surface would produce.
type sample struct {
	name        string
	description string
	build       func() ast.Node
}

func intLit(v int64) *ast.Value {
	return &ast.Value{Type: types.Integer, Literal: big.NewInt(v)}
}

var samples = []sample{
	{
		name:        "identity",
		description: "Function(Integer) -> Integer returning its own parameter",
		build: func() ast.Node {
			return &ast.Function{
				Params: []ast.Param{{Name: "x", Type: types.Integer}},
				Output: types.Integer,
				Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
			}
		},
	},
	{
		name:        "capture",
		description: "an outer let captured by a nested function literal",
		build: func() ast.Node {
			inner := &ast.Function{
				Output: types.Integer,
				Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
			}
			return &ast.Block{Statements: []ast.Node{
				&ast.Let{Name: "x", Type: types.Integer, Init: intLit(41)},
				inner,
			}}
		},
	},
	{
		name:        "async-contagion",
		description: "a block whose CallAsync statement marks it async",
		build: func() ast.Node {
			asyncFetch := &ast.AsyncFunction{
				Params: []ast.Param{{Name: "url", Type: types.String}},
				Output: types.String,
				Body:   &ast.Variable{Name: "url", DeclaredType: types.String},
			}
			return &ast.Block{Statements: []ast.Node{
				&ast.Let{Name: "fetch", Type: types.NewAsyncFunction(types.String, types.String), Init: asyncFetch},
				&ast.CallAsync{
					Fn:   &ast.Variable{Name: "fetch", DeclaredType: types.NewAsyncFunction(types.String, types.String)},
					Args: []ast.Node{&ast.Value{Type: types.String, Literal: "https://example.test"}},
				},
			}}
		},
	},
	{
		name:        "recursive-list",
		description: "a Match over a Recursive(Nil | Cons) list, one step expanded",
		build: func() ast.Node {
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
			nilValue := &ast.Variant{
				Type:    listType.Body(),
				Case:    "Nil",
				Payload: &ast.Value{Type: types.Null, Literal: nil},
			}
			wrapped := &ast.WrapRecursive{Type: listType, Value: nilValue}
			return &ast.Match{
				Type:    types.Integer,
				Variant: &ast.UnwrapRecursive{Type: listType.Body(), Value: wrapped},
				Cases: []ast.MatchCase{
					{CaseName: "Nil", CaseVar: "_n", Body: intLit(0)},
					{CaseName: "Cons", CaseVar: "c", Body: &ast.GetField{
						Struct: &ast.Variable{Name: "c", DeclaredType: listType.Body().(*types.VariantType).Cases[0].Type},
						Field:  "head",
					}},
				},
			}
		},
	},
	{
		name:        "bad-cast",
		description: "an unnecessary As(Integer, Integer) cast, rejected as a SubtypeError",
		build: func() ast.Node {
			return &ast.As{Value: intLit(1), Target: types.Integer}
		},
	},
	{
		name:        "undefined-variable",
		description: "a reference to a name with no enclosing definition, a ScopeError",
		build: func() ast.Node {
			return &ast.Variable{Name: "nope", DeclaredType: types.Integer}
		},
	},
}

func findSample(name string) (sample, error) {
	for _, s := range samples {
		if s.name == name {
			return s, nil
		}
	}
	var names []string
	for _, s := range samples {
		names = append(names, s.name)
	}
	sort.Strings(names)
	return sample{}, fmt.Errorf("unknown sample %q (available: %v)", name, names)
}

// defaultBuiltins returns a small fixed builtin table for the analyzer;
// none of the samples above calls a builtin. The builtins' bodies (§1, §4.5) are a separate
// collaborator; only their type signatures matter to this CLI.
func defaultBuiltins() *builtin.Table {
	t := builtin.NewTable()
	t.MustRegister(builtin.Signature{Name: "int.add", Inputs: []types.Type{types.Integer, types.Integer}, Output: types.Integer})
	t.MustRegister(builtin.Signature{Name: "int.sub", Inputs: []types.Type{types.Integer, types.Integer}, Output: types.Integer})
	t.MustRegister(builtin.Signature{Name: "string.concat", Inputs: []types.Type{types.String, types.String}, Output: types.String})
	return t
}

// defaultPlatform returns a small built-in platform registry used when
// --platform-config isn't given.
func defaultPlatform() *platform.Table {
	t := platform.NewTable()
	t.MustRegister(platform.Entry{Name: "now", Output: types.DateTime, Kind: platform.Async})
	t.MustRegister(platform.Entry{Name: "log", Inputs: []types.Type{types.String}, Output: types.Null, Kind: platform.Sync})
	return t
}
