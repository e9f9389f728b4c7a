package ast

import (
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// IfBranch is one `if`/`elseif` arm of an IfElse chain.
type IfBranch struct {
	Predicate Node
	Body      Node
}

// IfElse is an ordered if/elseif/else chain with a declared result type
// (§3.4, §3.5): if every branch body is Never, the node's declared type
// must itself be Never, and vice versa.
type IfElse struct {
	Loc      source.Location
	Type     types.Type
	Branches []IfBranch
	Else     Node
}

func (i *IfElse) Pos() source.Location { return i.Loc }

// While loops while Predicate is true; its type is always Null.
type While struct {
	Loc       source.Location
	Predicate Node
	Body      Node
}

func (w *While) Pos() source.Location { return w.Loc }

// ForArray iterates a value of Array(T), binding KeyVar to the Integer
// index and ValueVar to the element.
type ForArray struct {
	Loc        source.Location
	Collection Node
	KeyVar     string
	ValueVar   string
	Body       Node
}

func (f *ForArray) Pos() source.Location { return f.Loc }

// ForSet iterates a value of Set(K), binding ValueVar to each key.
type ForSet struct {
	Loc        source.Location
	Collection Node
	ValueVar   string
	Body       Node
}

func (f *ForSet) Pos() source.Location { return f.Loc }

// ForDict iterates a value of Dict(K, V), binding KeyVar and ValueVar.
type ForDict struct {
	Loc        source.Location
	Collection Node
	KeyVar     string
	ValueVar   string
	Body       Node
}

func (f *ForDict) Pos() source.Location { return f.Loc }

// Match dispatches on a Variant value. Each arm binds CaseVar to the
// matched case's payload inside Body. The case set must exactly match the
// (expanded) variant's cases for the analyzer to accept it (§4.3 "Match").
type MatchCase struct {
	CaseName string
	CaseVar  string
	Body     Node
}

type Match struct {
	Loc     source.Location
	Type    types.Type
	Variant Node
	Cases   []MatchCase
}

func (m *Match) Pos() source.Location { return m.Loc }

// Return exits the enclosing function with Value; its type is Never.
type Return struct {
	Loc   source.Location
	Value Node
}

func (r *Return) Pos() source.Location { return r.Loc }

// Break exits the enclosing loop; its type is Never.
type Break struct {
	Loc source.Location
}

func (b *Break) Pos() source.Location { return b.Loc }

// Continue skips to the next iteration of the enclosing loop; its type is
// Never.
type Continue struct {
	Loc source.Location
}

func (c *Continue) Pos() source.Location { return c.Loc }

// Error raises a runtime error carrying Message (must be String-typed);
// its type is Never.
type Error struct {
	Loc     source.Location
	Message Node
}

func (e *Error) Pos() source.Location { return e.Loc }

// TryCatch runs Try; on error, binds MessageVar (String) and StackVar
// (Array<Struct{filename: String, line: Integer, column: Integer}>) and
// runs Catch. Finally, if present, always runs afterward and contributes
// to is_async but not to the node's result type (§4.3 "TryCatch").
type TryCatch struct {
	Loc        source.Location
	Type       types.Type
	Try        Node
	MessageVar string
	StackVar   string
	Catch      Node
	Finally    Node // may be nil
}

func (t *TryCatch) Pos() source.Location { return t.Loc }
