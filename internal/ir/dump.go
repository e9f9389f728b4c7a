package ir

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DebugDump renders an IR tree as JSON for tooling (cmd/east's analyze
// subcommand, with --query or --patch). There's no third-party struct-to-JSON mapper in
// the retrieved stack that fits a recursive interface tree like this one
// (goccy/go-yaml marshals to YAML, not JSON; gjson/sjson only operate on
// already-serialized text), so the initial encode goes through
// encoding/json over a plain map built by nodeToMap; once it's text, every
// further read or edit goes through gjson/sjson instead of touching Go
// structs again.
func DebugDump(n Node) ([]byte, error) {
	return json.MarshalIndent(nodeToMap(n), "", "  ")
}

// Query extracts a value from a dumped tree by gjson path, e.g.
// "body.statements.0.type".
func Query(doc []byte, path string) string {
	return gjson.GetBytes(doc, path).String()
}

// Patch rewrites a single field of a dumped tree by sjson path, returning
// the updated document. Used by cmd/east's --patch debugging flag to
// experiment with a hypothetical edit without re-lowering.
func Patch(doc []byte, path string, value interface{}) ([]byte, error) {
	return sjson.SetBytes(doc, path, value)
}

func nodeToMap(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	out := map[string]interface{}{
		"kind":    kindName(n),
		"loc":     n.Pos().String(),
		"isAsync": n.IsAsync(),
	}
	if t := n.NodeType(); t != nil {
		out["type"] = t.String()
	}
	switch v := n.(type) {
	case *Value:
		out["literal"] = v.Literal
	case *Variable:
		out["def"] = varDefToMap(v.Def)
		out["mutable"] = v.Mutable
	case *Let:
		out["def"] = varDefToMap(v.VarDef)
		out["init"] = nodeToMap(v.Init)
	case *Assign:
		out["def"] = varDefToMap(v.Def)
		out["value"] = nodeToMap(v.Value)
	case *Block:
		out["statements"] = nodeListToMaps(v.Statements)
	case *As:
		out["value"] = nodeToMap(v.Value)
	case *Function:
		out["params"] = varDefListToMaps(v.Params)
		out["captures"] = varDefListToMaps(v.Captures)
		out["body"] = nodeToMap(v.Body)
	case *AsyncFunction:
		out["params"] = varDefListToMaps(v.Params)
		out["captures"] = varDefListToMaps(v.Captures)
		out["body"] = nodeToMap(v.Body)
	case *Call:
		out["fn"] = nodeToMap(v.Fn)
		out["args"] = nodeListToMaps(v.Args)
	case *CallAsync:
		out["fn"] = nodeToMap(v.Fn)
		out["args"] = nodeListToMaps(v.Args)
	case *Platform:
		out["name"] = v.Name
		out["args"] = nodeListToMaps(v.Args)
	case *Builtin:
		out["name"] = v.Name
		out["args"] = nodeListToMaps(v.Args)
	case *Return:
		out["value"] = nodeToMap(v.Value)
	case *Error:
		out["message"] = nodeToMap(v.Message)
	case *TryCatch:
		out["try"] = nodeToMap(v.Try)
		out["messageVar"] = varDefToMap(v.MessageVar)
		out["stackVar"] = varDefToMap(v.StackVar)
		out["catch"] = nodeToMap(v.Catch)
		out["finally"] = nodeToMap(v.Finally)
	case *While:
		out["predicate"] = nodeToMap(v.Predicate)
		out["body"] = nodeToMap(v.Body)
	case *ForArray:
		out["collection"] = nodeToMap(v.Collection)
		out["keyVar"] = varDefToMap(v.KeyVar)
		out["valueVar"] = varDefToMap(v.ValueVar)
		out["body"] = nodeToMap(v.Body)
	case *ForSet:
		out["collection"] = nodeToMap(v.Collection)
		out["valueVar"] = varDefToMap(v.ValueVar)
		out["body"] = nodeToMap(v.Body)
	case *ForDict:
		out["collection"] = nodeToMap(v.Collection)
		out["keyVar"] = varDefToMap(v.KeyVar)
		out["valueVar"] = varDefToMap(v.ValueVar)
		out["body"] = nodeToMap(v.Body)
	case *IfElse:
		branches := make([]map[string]interface{}, len(v.Branches))
		for i, b := range v.Branches {
			branches[i] = map[string]interface{}{
				"predicate": nodeToMap(b.Predicate),
				"body":      nodeToMap(b.Body),
			}
		}
		out["branches"] = branches
		out["else"] = nodeToMap(v.Else)
	case *Match:
		out["variant"] = nodeToMap(v.Variant)
		cases := make([]map[string]interface{}, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = map[string]interface{}{
				"case":    c.CaseName,
				"caseVar": varDefToMap(c.CaseVar),
				"body":    nodeToMap(c.Body),
			}
		}
		out["cases"] = cases
	case *NewRef:
		out["init"] = nodeToMap(v.Init)
	case *NewArray:
		out["elements"] = nodeListToMaps(v.Elements)
	case *NewSet:
		out["elements"] = nodeListToMaps(v.Elements)
	case *NewDict:
		entries := make([]map[string]interface{}, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = map[string]interface{}{"key": nodeToMap(e.Key), "value": nodeToMap(e.Value)}
		}
		out["entries"] = entries
	case *Struct:
		fields := make([]map[string]interface{}, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = map[string]interface{}{"name": f.Name, "value": nodeToMap(f.Value)}
		}
		out["fields"] = fields
	case *Variant:
		out["case"] = v.Case
		out["payload"] = nodeToMap(v.Payload)
	case *GetField:
		out["struct"] = nodeToMap(v.Struct)
		out["field"] = v.Field
	case *WrapRecursive:
		out["value"] = nodeToMap(v.Value)
	case *UnwrapRecursive:
		out["value"] = nodeToMap(v.Value)
	}
	return out
}

func varDefToMap(vd *VarDef) map[string]interface{} {
	if vd == nil {
		return nil
	}
	m := map[string]interface{}{
		"id":       vd.ID,
		"name":     vd.Name,
		"mutable":  vd.Mutable,
		"captured": vd.Captured,
	}
	if vd.Type != nil {
		m["type"] = vd.Type.String()
	}
	return m
}

func varDefListToMaps(vds []*VarDef) []map[string]interface{} {
	out := make([]map[string]interface{}, len(vds))
	for i, vd := range vds {
		out[i] = varDefToMap(vd)
	}
	return out
}

func nodeListToMaps(ns []Node) []map[string]interface{} {
	out := make([]map[string]interface{}, len(ns))
	for i, n := range ns {
		out[i] = nodeToMap(n)
	}
	return out
}

func kindName(n Node) string {
	switch n.(type) {
	case *Value:
		return "Value"
	case *Variable:
		return "Variable"
	case *Let:
		return "Let"
	case *Assign:
		return "Assign"
	case *Block:
		return "Block"
	case *As:
		return "As"
	case *Function:
		return "Function"
	case *AsyncFunction:
		return "AsyncFunction"
	case *Call:
		return "Call"
	case *CallAsync:
		return "CallAsync"
	case *Platform:
		return "Platform"
	case *Builtin:
		return "Builtin"
	case *Return:
		return "Return"
	case *Break:
		return "Break"
	case *Continue:
		return "Continue"
	case *Error:
		return "Error"
	case *TryCatch:
		return "TryCatch"
	case *While:
		return "While"
	case *ForArray:
		return "ForArray"
	case *ForSet:
		return "ForSet"
	case *ForDict:
		return "ForDict"
	case *IfElse:
		return "IfElse"
	case *Match:
		return "Match"
	case *NewRef:
		return "NewRef"
	case *NewArray:
		return "NewArray"
	case *NewSet:
		return "NewSet"
	case *NewDict:
		return "NewDict"
	case *Struct:
		return "Struct"
	case *Variant:
		return "Variant"
	case *GetField:
		return "GetField"
	case *WrapRecursive:
		return "WrapRecursive"
	case *UnwrapRecursive:
		return "UnwrapRecursive"
	default:
		return "Unknown"
	}
}
