package types

// IsDataType reports whether t is eligible to be a Set key or Dict key
// (§3.1). Data types are the primitives, Struct/Variant whose components
// are all data, Recursive types over data, and Set/Dict built from data
// components. Function and AsyncFunction are never data types: there is no
// total order on callables. Ref is excluded too — a mutable cell has no
// stable ordering independent of when it's observed.
func IsDataType(t Type) bool {
	return isDataType(t, map[*RecursiveType]bool{})
}

func isDataType(t Type, visiting map[*RecursiveType]bool) bool {
	switch v := t.(type) {
	case *primitive:
		// Never, Null, Boolean, Integer, Float, String, DateTime, Blob are
		// all total-ordered (or vacuously so, for Never/Null).
		return true
	case *ArrayType:
		return isDataType(v.Elem, visiting)
	case *SetType:
		return isDataType(v.Key, visiting)
	case *DictType:
		return isDataType(v.Key, visiting) && isDataType(v.Value, visiting)
	case *StructType:
		for _, f := range v.Fields {
			if !isDataType(f.Type, visiting) {
				return false
			}
		}
		return true
	case *VariantType:
		for _, c := range v.Cases {
			if !isDataType(c.Type, visiting) {
				return false
			}
		}
		return true
	case *RecursiveType:
		if visiting[v] {
			return true // already assumed data while checking its own body
		}
		visiting[v] = true
		return isDataType(v.body, visiting)
	default:
		return false // RefType, FunctionType, AsyncFunctionType
	}
}
