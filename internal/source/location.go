// Package source holds the location type shared by the AST, the IR, and
// the diagnostics surface. Locations originate in the host's AST builder
// (out of scope for this module) and are threaded through lowering and
// analysis verbatim (§6.4).
package source

import "fmt"

// Location identifies a point in the host program that constructed an AST
// node — not a position in East source text, since East has none: programs
// are built through a fluent host-language API, not parsed from a grammar.
type Location struct {
	Filename string
	Line     int
	Column   int
}

// String renders "file:line:col", or just "line:col" when Filename is
// empty (e.g. in tests that build AST nodes without builder provenance).
func (l Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Unknown is the zero Location, used where no builder provenance exists.
var Unknown = Location{}
