// Package ir defines East's lowered intermediate representation: a tree
// that mirrors the AST but with every variable reference resolved to a
// shared *VarDef pointer instead of a name, and (after the semantic
// analyzer runs) an is_async flag and, on variable definitions, a captured
// flag (§3.4, §6.1).
//
// Per §9's "duplicate work avoidance" note, the analyzer mutates these
// flags in place on the tree produced by lowering rather than allocating a
// parallel tree: the is_async flag, VarDef.Captured, and Base.Type on the
// nodes and variable definitions lowering leaves untyped are the only
// fields any later pass writes.
package ir

import (
	"github.com/elaraai/east-sub001/internal/source"
	"github.com/elaraai/east-sub001/internal/types"
)

// Node is the common interface for every IR node.
type Node interface {
	Pos() source.Location
	NodeType() types.Type
	IsAsync() bool
	setAsync(bool)
	setType(types.Type)
}

// Base is embedded by every IR node and carries the three fields §3.4
// requires on all of them: location, static type, and the analyzer-filled
// is_async flag. For node kinds whose type the builder cannot declare up
// front (Call, CallAsync, GetField, and the control-flow nodes whose type
// is always Never or Null), Type starts nil and is filled in by the
// analyzer from the same single mutation point as is_async.
type Base struct {
	Loc     source.Location
	Type    types.Type
	isAsync bool
}

func (b *Base) Pos() source.Location { return b.Loc }
func (b *Base) NodeType() types.Type { return b.Type }
func (b *Base) IsAsync() bool        { return b.isAsync }
func (b *Base) setAsync(v bool)      { b.isAsync = v }
func (b *Base) setType(t types.Type) { b.Type = t }

// MarkAsync is the analyzer's mutation point for a node's is_async flag;
// exported so the semantic package (a different package) can set it.
func MarkAsync(n Node, v bool) { n.setAsync(v) }

// SetType is the analyzer's mutation point for a node's derived static
// type, for the node kinds that don't carry one from the builder.
func SetType(n Node, t types.Type) { n.setType(t) }

// VarDef is a variable-definition node: a Let binding or a function
// parameter. It carries the stable identifier assigned during lowering
// (§4.2) and the captured flag the analyzer fills in (§4.3). VarDef
// pointers are shared: a Function's Captures slice holds the very same
// pointers as the outer scope's Let/Param nodes, and every Variable that
// resolves to a given binding points at the same VarDef — so marking
// Captured true in one place is visible everywhere that binding is
// referenced.
type VarDef struct {
	Base
	ID       string // stable unique identifier (lowering)
	Name     string // original surface name, for diagnostics
	Mutable  bool
	Captured bool
}

// Variable references a binding by its resolved *VarDef. Mutable carries
// the builder's declared mutability for that reference site, checked
// against Def.Mutable by the analyzer alongside Base.Type vs Def.Type
// (§4.3 "Variable": declared metadata must match the binding exactly).
type Variable struct {
	Base
	Def     *VarDef
	Mutable bool
}

// Let is a variable-definition node with an initializer. It embeds a
// *VarDef (not a value) so that the very same pointer can be shared with
// the scope table and any Function.Captures slice that closes over it —
// mutating Captured through either handle is visible through the other.
type Let struct {
	*VarDef
	Init Node
}

// Assign stores a new value into a mutable binding.
type Assign struct {
	Base
	Def   *VarDef
	Value Node
}

// Block sequences statements; its type is the last statement's type.
type Block struct {
	Base
	Statements []Node
}

// As is an explicit upcast.
type As struct {
	Base
	Value Node
}

// Param is a function parameter; it is itself a VarDef (no initializer).
type Param = VarDef

// Function is a pure synchronous function with an explicit, lowering-
// computed capture list (§4.2).
type Function struct {
	Base
	Params   []*Param
	Captures []*VarDef
	Body     Node
}

// AsyncFunction is a function literal whose call yields a future.
type AsyncFunction struct {
	Base
	Params   []*Param
	Captures []*VarDef
	Body     Node
}

// Call invokes a Function-typed expression synchronously.
type Call struct {
	Base
	Fn   Node
	Args []Node
}

// CallAsync invokes an AsyncFunction-typed expression; always async.
type CallAsync struct {
	Base
	Fn   Node
	Args []Node
}

// Platform calls an externally-registered platform function by name.
type Platform struct {
	Base
	Name string
	Args []Node
}

// Builtin calls a statically-known builtin operation by name.
type Builtin struct {
	Base
	Name string
	Args []Node
}

// Return exits the enclosing function with Value.
type Return struct {
	Base
	Value Node
}

// Break exits the enclosing loop.
type Break struct{ Base }

// Continue skips to the next iteration of the enclosing loop.
type Continue struct{ Base }

// Error raises a runtime error carrying Message.
type Error struct {
	Base
	Message Node
}

// TryCatch runs Try, and on error binds MessageVar/StackVar and runs
// Catch; Finally always runs afterward.
type TryCatch struct {
	Base
	Try        Node
	MessageVar *VarDef
	StackVar   *VarDef
	Catch      Node
	Finally    Node // may be nil
}

// While loops while Predicate is true.
type While struct {
	Base
	Predicate Node
	Body      Node
}

// ForArray iterates an Array(T), binding KeyVar/ValueVar.
type ForArray struct {
	Base
	Collection Node
	KeyVar     *VarDef
	ValueVar   *VarDef
	Body       Node
}

// ForSet iterates a Set(K), binding ValueVar.
type ForSet struct {
	Base
	Collection Node
	ValueVar   *VarDef
	Body       Node
}

// ForDict iterates a Dict(K, V), binding KeyVar/ValueVar.
type ForDict struct {
	Base
	Collection Node
	KeyVar     *VarDef
	ValueVar   *VarDef
	Body       Node
}

// IfBranch is one if/elseif arm.
type IfBranch struct {
	Predicate Node
	Body      Node
}

// IfElse is an ordered if/elseif/else chain with a declared result type.
type IfElse struct {
	Base
	Branches []IfBranch
	Else     Node
}

// MatchCase is one arm of a Match, binding CaseVar inside Body.
type MatchCase struct {
	CaseName string
	CaseVar  *VarDef
	Body     Node
}

// Match dispatches on a Variant value.
type Match struct {
	Base
	Variant Node
	Cases   []MatchCase
}

// NewRef allocates a fresh Ref(T) cell.
type NewRef struct {
	Base
	Init Node
}

// NewArray constructs an Array(T).
type NewArray struct {
	Base
	Elements []Node
}

// NewSet constructs a Set(K).
type NewSet struct {
	Base
	Elements []Node
}

// DictEntry is one key/value pair of a NewDict construction.
type DictEntry struct {
	Key   Node
	Value Node
}

// NewDict constructs a Dict(K, V).
type NewDict struct {
	Base
	Entries []DictEntry
}

// StructFieldValue is one field value supplied to a Struct construction.
type StructFieldValue struct {
	Name  string
	Value Node
}

// Struct constructs a value of a declared StructType.
type Struct struct {
	Base
	Fields []StructFieldValue
}

// Variant constructs a tagged value for one case of a declared
// VariantType.
type Variant struct {
	Base
	Case    string
	Payload Node
}

// GetField projects a named field out of a Struct-typed value.
type GetField struct {
	Base
	Struct Node
	Field  string
}

// WrapRecursive retypes a value of a Recursive type's body as the wrapper.
type WrapRecursive struct {
	Base
	Value Node
}

// UnwrapRecursive retypes a value of a Recursive wrapper as its body.
type UnwrapRecursive struct {
	Base
	Value Node
}

// Value is a literal of a primitive or otherwise directly-representable
// type.
type Value struct {
	Base
	Literal interface{}
}
