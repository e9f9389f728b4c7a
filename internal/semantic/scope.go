package semantic

import "github.com/elaraai/east-sub001/internal/ir"

// scope is one frame of the analyzer's variable context (§4.3): a
// prototype-chained lookup table from a defining *ir.VarDef to itself.
// Lookups walk the chain outward; writes always insert into the
// innermost scope — the same linkage pattern as the teacher's
// SymbolTable{outer} and the interpreter's Environment{store,outer}.
//
// It is keyed by the VarDef pointer itself rather than by a string name:
// lowering already assigned every binding a stable, block-unique
// identifier and every ir.Variable node already carries a direct handle
// to its binding, so re-deriving identity from a string would just
// immediately map back to the same pointer.
//
// isFunctionBoundary is carried for documentation/debugging parity with
// the lowerer's own frame stack but plays no part in resolve: a
// Function/AsyncFunction's captures scope is pre-populated with its
// lowering-computed Captures list (visitFunctionLike), so a reference to
// a captured binding always resolves inside the function's own scope
// without "crossing" anything observable from here. The captured flag
// itself (§3.4) is therefore set directly off that Captures list, not
// inferred from a scope-chain walk (§4.3 "Function/AsyncFunction").
type scope struct {
	outer              *scope
	isFunctionBoundary bool
	defs               map[*ir.VarDef]bool
}

func newScope(outer *scope, isFunctionBoundary bool) *scope {
	return &scope{outer: outer, isFunctionBoundary: isFunctionBoundary, defs: map[*ir.VarDef]bool{}}
}

func (s *scope) define(vd *ir.VarDef) {
	s.defs[vd] = true
}

// resolve reports whether vd is visible from s.
func (s *scope) resolve(vd *ir.VarDef) bool {
	for cur := s; cur != nil; cur = cur.outer {
		if cur.defs[vd] {
			return true
		}
	}
	return false
}
