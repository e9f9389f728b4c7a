package semantic_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/elaraai/east-sub001/internal/ast"
	"github.com/elaraai/east-sub001/internal/ir"
	"github.com/elaraai/east-sub001/internal/types"
)

// TestAnalyzeSnapshots golden-asserts the enriched tree's pretty-printed
// result type and IR debug dump for a handful of representative programs,
// the way the teacher's fixture suite snapshots interpreter output
// (internal/interp/fixture_test.go).
func TestAnalyzeSnapshots(t *testing.T) {
	cases := []struct {
		name string
		root ast.Node
	}{
		{
			name: "identity",
			root: &ast.Function{
				Params: []ast.Param{{Name: "x", Type: types.Integer}},
				Output: types.Integer,
				Body:   &ast.Variable{Name: "x", DeclaredType: types.Integer},
			},
		},
		{
			name: "capture",
			root: &ast.Block{Statements: []ast.Node{
				&ast.Let{Name: "x", Type: types.Integer, Init: intLit(0)},
				&ast.Function{Output: types.Integer, Body: &ast.Variable{Name: "x", DeclaredType: types.Integer}},
			}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := analyze(t, c.root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, "result type", result.NodeType().String())

			dump, err := ir.DebugDump(result)
			if err != nil {
				t.Fatalf("DebugDump: %v", err)
			}
			snaps.MatchSnapshot(t, "ir dump", string(dump))
		})
	}
}
