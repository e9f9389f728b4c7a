package ir

import "github.com/elaraai/east-sub001/internal/types"

// StackFrameType is the fixed East type of one entry in a TryCatch stack
// variable: Struct{filename: String, line: Integer, column: Integer}.
var StackFrameType = types.NewStruct(
	types.Field{Name: "filename", Type: types.String},
	types.Field{Name: "line", Type: types.Integer},
	types.Field{Name: "column", Type: types.Integer},
)

// StackType is the fixed East type of a TryCatch stack variable:
// Array<Struct{filename: String, line: Integer, column: Integer}>.
var StackType = types.NewArray(StackFrameType)
