package ir

// Stats summarizes an analyzed tree for a one-line CLI report (cmd/east's
// "analyze" subcommand, humanize-formatted).
type Stats struct {
	Nodes int
	Async int
}

// CountNodes walks n and every descendant, tallying total node count and
// how many carry is_async=true. It mirrors nodeToMap's per-kind child
// traversal (dump.go) without building the intermediate map.
func CountNodes(n Node) Stats {
	var s Stats
	countNodes(n, &s)
	return s
}

func countNodes(n Node, s *Stats) {
	if n == nil {
		return
	}
	s.Nodes++
	if n.IsAsync() {
		s.Async++
	}
	switch v := n.(type) {
	case *Variable, *Value, *Break, *Continue:
		// no children
	case *Let:
		countNodes(v.Init, s)
	case *Assign:
		countNodes(v.Value, s)
	case *Block:
		countNodesList(v.Statements, s)
	case *As:
		countNodes(v.Value, s)
	case *Function:
		countNodes(v.Body, s)
	case *AsyncFunction:
		countNodes(v.Body, s)
	case *Call:
		countNodes(v.Fn, s)
		countNodesList(v.Args, s)
	case *CallAsync:
		countNodes(v.Fn, s)
		countNodesList(v.Args, s)
	case *Platform:
		countNodesList(v.Args, s)
	case *Builtin:
		countNodesList(v.Args, s)
	case *Return:
		countNodes(v.Value, s)
	case *Error:
		countNodes(v.Message, s)
	case *TryCatch:
		countNodes(v.Try, s)
		countNodes(v.Catch, s)
		countNodes(v.Finally, s)
	case *While:
		countNodes(v.Predicate, s)
		countNodes(v.Body, s)
	case *ForArray:
		countNodes(v.Collection, s)
		countNodes(v.Body, s)
	case *ForSet:
		countNodes(v.Collection, s)
		countNodes(v.Body, s)
	case *ForDict:
		countNodes(v.Collection, s)
		countNodes(v.Body, s)
	case *IfElse:
		for _, b := range v.Branches {
			countNodes(b.Predicate, s)
			countNodes(b.Body, s)
		}
		countNodes(v.Else, s)
	case *Match:
		countNodes(v.Variant, s)
		for _, c := range v.Cases {
			countNodes(c.Body, s)
		}
	case *NewRef:
		countNodes(v.Init, s)
	case *NewArray:
		countNodesList(v.Elements, s)
	case *NewSet:
		countNodesList(v.Elements, s)
	case *NewDict:
		for _, e := range v.Entries {
			countNodes(e.Key, s)
			countNodes(e.Value, s)
		}
	case *Struct:
		for _, f := range v.Fields {
			countNodes(f.Value, s)
		}
	case *Variant:
		countNodes(v.Payload, s)
	case *GetField:
		countNodes(v.Struct, s)
	case *WrapRecursive:
		countNodes(v.Value, s)
	case *UnwrapRecursive:
		countNodes(v.Value, s)
	}
}

func countNodesList(ns []Node, s *Stats) {
	for _, n := range ns {
		countNodes(n, s)
	}
}
