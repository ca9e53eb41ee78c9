package schema

import "fmt"

// maxTypeDepth bounds recursion into nested raw descriptors. A catalog
// malformed enough to nest deeper than this (or to reference itself) resolves
// to unknown instead of growing the stack without limit.
const maxTypeDepth = 32

// typeCodeNames maps protocol type codes to canonical lowercase names.
var typeCodeNames = map[int]string{
	0x00: "custom",
	0x01: "ascii",
	0x02: "bigint",
	0x03: "blob",
	0x04: "boolean",
	0x05: "counter",
	0x06: "decimal",
	0x07: "double",
	0x08: "float",
	0x09: "int",
	0x0a: "text",
	0x0b: "timestamp",
	0x0c: "uuid",
	0x0d: "varchar",
	0x0e: "varint",
	0x0f: "timeuuid",
	0x10: "inet",
	0x11: "date",
	0x12: "time",
	0x13: "smallint",
	0x14: "tinyint",
	0x15: "duration",
	0x20: "list",
	0x21: "map",
	0x22: "set",
	0x30: "udt",
	0x31: "tuple",
}

// Resolve converts a raw type descriptor into a TypeDescriptor. It is total:
// every input maps to exactly one variant, with TypeUnknown as the explicit
// fallback. It never returns an error and never panics on malformed input.
//
// Raw shapes are probed in priority order:
//  1. a plain name string
//  2. a map with a numeric "code"
//  3. a map with a string "name"
//  4. a map with "key" and "value" sub-descriptors (map type)
//  5. a map with an "element" sub-descriptor (list type)
//  6. a map with a single-entry "types" array (set type; see note below)
//  7. a map with a multi-entry "types" array (tuple) or a "fields" array of
//     name/type pairs (user-defined type)
//
// The set detection in step 6 is structural and best-effort: a list encoded as
// a one-entry subtype array is indistinguishable from a set and will resolve
// as set.
func Resolve(raw any) TypeDescriptor {
	return resolveDepth(raw, 0)
}

func resolveDepth(raw any, depth int) TypeDescriptor {
	if depth > maxTypeDepth {
		return TypeDescriptor{Kind: TypeUnknown}
	}

	switch v := raw.(type) {
	case string:
		return TypeDescriptor{Kind: TypeSimple, Name: v}
	case map[string]any:
		return resolveMap(v, depth)
	}
	return TypeDescriptor{Kind: TypeUnknown}
}

func resolveMap(m map[string]any, depth int) TypeDescriptor {
	if code, ok := numericField(m, "code"); ok {
		if name, ok := typeCodeNames[code]; ok {
			return TypeDescriptor{Kind: TypeSimple, Name: name}
		}
		return TypeDescriptor{Kind: TypeSimple, Name: fmt.Sprintf("type_%d", code)}
	}

	if name, ok := m["name"].(string); ok && name != "" {
		return TypeDescriptor{Kind: TypeSimple, Name: name}
	}

	if key, ok := m["key"]; ok {
		if value, ok := m["value"]; ok {
			return TypeDescriptor{
				Kind:   TypeMap,
				Params: []TypeDescriptor{resolveDepth(key, depth+1), resolveDepth(value, depth+1)},
			}
		}
	}

	if element, ok := m["element"]; ok {
		return TypeDescriptor{
			Kind:   TypeList,
			Params: []TypeDescriptor{resolveDepth(element, depth+1)},
		}
	}

	if types, ok := m["types"].([]any); ok && len(types) > 0 {
		if len(types) == 1 {
			return TypeDescriptor{
				Kind:   TypeSet,
				Params: []TypeDescriptor{resolveDepth(types[0], depth+1)},
			}
		}
		params := make([]TypeDescriptor, len(types))
		for i, sub := range types {
			params[i] = resolveDepth(sub, depth+1)
		}
		return TypeDescriptor{Kind: TypeTuple, Params: params}
	}

	if fields := resolveFields(m, depth); len(fields) > 0 {
		return TypeDescriptor{Kind: TypeUDT, Fields: fields}
	}

	return TypeDescriptor{Kind: TypeUnknown}
}

func resolveFields(m map[string]any, depth int) []UDTField {
	raw, ok := m["fields"].([]any)
	if !ok {
		return nil
	}
	var fields []UDTField
	for _, entry := range raw {
		fm, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := fm["name"].(string)
		fields = append(fields, UDTField{
			Name: name,
			Type: resolveDepth(fm["type"], depth+1),
		})
	}
	return fields
}

// numericField reads m[key] as an integer, accepting the numeric types a
// driver or JSON decoder may produce.
func numericField(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
