package schema

import "strings"

// TypeKind discriminates the variants of a resolved type descriptor.
type TypeKind int

const (
	TypeSimple TypeKind = iota
	TypeList
	TypeSet
	TypeMap
	TypeTuple
	TypeUDT
	TypeUnknown
)

// TypeDescriptor is the resolved form of a raw catalog type descriptor.
// Params holds element types: one for list/set, key then value for map,
// all elements for tuple. Fields is populated for TypeUDT only.
type TypeDescriptor struct {
	Kind   TypeKind
	Name   string // simple types only
	Params []TypeDescriptor
	Fields []UDTField
}

// UDTField is one named field of a user-defined type.
type UDTField struct {
	Name string
	Type TypeDescriptor
}

// Render produces the canonical textual type name, e.g. "map<text, text>".
// Output is deterministic: the same descriptor always renders the same string.
func (t TypeDescriptor) Render() string {
	switch t.Kind {
	case TypeSimple:
		return t.Name
	case TypeList:
		return "list<" + renderParam(t.Params, 0) + ">"
	case TypeSet:
		return "set<" + renderParam(t.Params, 0) + ">"
	case TypeMap:
		return "map<" + renderParam(t.Params, 0) + ", " + renderParam(t.Params, 1) + ">"
	case TypeTuple:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.Render()
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case TypeUDT:
		// A nameless field sequence has no UDT name to show; render the
		// field types tuple-style so the output stays a valid type name.
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Type.Render()
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	default:
		return "unknown"
	}
}

func renderParam(params []TypeDescriptor, i int) string {
	if i >= len(params) {
		return "unknown"
	}
	return params[i].Render()
}
