package ast

import (
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// Param is one parameter of a Function/AsyncFunction definition.
type Param struct {
	Name    string
	Type    types.Type
	Mutable bool
}

// Function is a pure synchronous function literal. The builder supplies
// no capture list: free-variable analysis and capture-list construction
// happen during lowering (§4.2), not here.
type Function struct {
	Loc    source.Location
	Params []Param
	Output types.Type
	Body   Node
}

func (f *Function) Pos() source.Location { return f.Loc }

// AsyncFunction is a function literal whose call yields a future.
type AsyncFunction struct {
	Loc    source.Location
	Params []Param
	Output types.Type
	Body   Node
}

func (f *AsyncFunction) Pos() source.Location { return f.Loc }

// Call invokes a Function-typed expression synchronously.
type Call struct {
	Loc  source.Location
	Fn   Node
	Args []Node
}

func (c *Call) Pos() source.Location { return c.Loc }

// CallAsync invokes an AsyncFunction-typed expression; always async.
type CallAsync struct {
	Loc  source.Location
	Fn   Node
	Args []Node
}

func (c *CallAsync) Pos() source.Location { return c.Loc }

// Platform calls an externally-registered platform function by name, with
// the declared output type the builder believes the registry will report
// (the analyzer cross-checks this against the platform table, §4.3).
type Platform struct {
	Loc    source.Location
	Name   string
	Args   []Node
	Output types.Type
}

func (p *Platform) Pos() source.Location { return p.Loc }

// Builtin calls a statically-known builtin operation by name.
type Builtin struct {
	Loc    source.Location
	Name   string
	Args   []Node
	Output types.Type
}

func (b *Builtin) Pos() source.Location { return b.Loc }
