// Package errors defines East's analysis diagnostic: the single typed
// error the semantic analyzer raises and the CLI formats for a terminal
// (§6, §8). East has no source text to quote a line from — every
// diagnostic instead carries the builder-supplied source.Location of the
// offending node and a pretty-printed description of the types involved.
package errors

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// Kind classifies a Diagnostic into one of the six families the analyzer
// reports (§6.1).
type Kind string

const (
	ScopeError       Kind = "ScopeError"
	TypeMismatch     Kind = "TypeMismatch"
	SubtypeError     Kind = "SubtypeError"
	ShapeError       Kind = "ShapeError"
	ControlFlowError Kind = "ControlFlowError"
	IRInvariant      Kind = "IRInvariant"
)

// Diagnostic is the single error type the analyzer can raise. Analysis is
// fail-fast (§6.2): a pass stops and returns at the first Diagnostic it
// produces rather than collecting a batch.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Loc      source.Location
	Expected types.Type // nil unless Kind is TypeMismatch or SubtypeError
	Got      types.Type
	Trail    Trail // node-kind recursion trail from the analysis root to the failure, innermost last
}

func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic for a terminal. color controls ANSI
// styling; cmd/east decides that with mattn/go-isatty rather than this
// package guessing at its output stream.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	bold, reset := "", ""
	if color {
		bold, reset = "\033[1m", "\033[0m"
	}

	fmt.Fprintf(&sb, "%s%s%s at %s: %s", bold, d.Kind, reset, d.Loc, d.Message)

	if d.Expected != nil && d.Got != nil {
		sb.WriteString("\n")
		sb.WriteString(typeDiff(d.Expected, d.Got))
	}
	return sb.String()
}

// FormatVerbose appends the node-kind recursion trail (innermost first) to
// Format's output, for the CLI's --verbose mode. The trail is built as the
// analyzer descends: each Trail.Push makes a fresh copy, so sibling
// branches never see each other's frames.
func (d *Diagnostic) FormatVerbose(color bool) string {
	base := d.Format(color)
	if d.Trail.Depth() == 0 {
		return base
	}
	return base + "\n  while analyzing:\n" + indent(d.Trail.String())
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

// typeDiff renders Expected/Got as a unified diff when either side's
// pretty-printed form spans multiple lines (struct and variant types with
// many fields); a one-line "expected X, got Y" otherwise.
func typeDiff(expected, got types.Type) string {
	exp, gotStr := prettyType(expected), prettyType(got)
	if !strings.Contains(exp, "\n") && !strings.Contains(gotStr, "\n") {
		return fmt.Sprintf("  expected %s, got %s", exp, gotStr)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(gotStr),
		FromFile: "expected",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("  expected %s, got %s", exp, gotStr)
	}
	return text
}

// prettyType one-field-per-line renders struct/variant types so a diff
// between two large, mostly-shared shapes highlights only what changed;
// everything else uses Type.String() as-is.
func prettyType(t types.Type) string {
	switch v := t.(type) {
	case *types.StructType:
		var sb strings.Builder
		sb.WriteString("Struct{\n")
		for _, f := range v.Fields {
			fmt.Fprintf(&sb, "  %s: %s\n", f.Name, f.Type.String())
		}
		sb.WriteString("}")
		return sb.String()
	case *types.VariantType:
		var sb strings.Builder
		sb.WriteString("Variant{\n")
		for _, c := range v.Cases {
			fmt.Fprintf(&sb, "  %s: %s\n", c.Name, c.Type.String())
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return t.String()
	}
}

func NewScopeError(loc source.Location, name string) *Diagnostic {
	return &Diagnostic{Kind: ScopeError, Loc: loc, Message: fmt.Sprintf("undefined name %q", name)}
}

func NewTypeMismatch(loc source.Location, message string, expected, got types.Type) *Diagnostic {
	return &Diagnostic{Kind: TypeMismatch, Loc: loc, Message: message, Expected: expected, Got: got}
}

func NewSubtypeError(loc source.Location, message string, expected, got types.Type) *Diagnostic {
	return &Diagnostic{Kind: SubtypeError, Loc: loc, Message: message, Expected: expected, Got: got}
}

func NewShapeError(loc source.Location, message string) *Diagnostic {
	return &Diagnostic{Kind: ShapeError, Loc: loc, Message: message}
}

func NewControlFlowError(loc source.Location, message string) *Diagnostic {
	return &Diagnostic{Kind: ControlFlowError, Loc: loc, Message: message}
}

func NewIRInvariant(loc source.Location, message string) *Diagnostic {
	return &Diagnostic{Kind: IRInvariant, Loc: loc, Message: message}
}
