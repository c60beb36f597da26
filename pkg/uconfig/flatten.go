package uconfig

// Flatten returns a deep copy of v in which every enum member is replaced by
// its primitive value. Lists stay lists and tuples stay tuples.
func Flatten(v Value) Value {
	switch v.kind {
	case KindEnum:
		return v.enum.primitive
	case KindMap:
		return MapValue(FlattenMap(v.fields))
	case KindList, KindTuple:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Flatten(item)
		}
		return Value{kind: v.kind, items: items}
	default:
		return v
	}
}

// FlattenMap applies Flatten to every value of m and returns a new map.
func FlattenMap(m *Map) *Map {
	out := NewMap()
	m.Range(func(k string, v Value) bool {
		out.Set(k, Flatten(v))
		return true
	})
	return out
}

// Plain returns the Go-native form of the flattened value: nil, bool, int64,
// float64, string, []any or map[string]any.
func Plain(v Value) any {
	return Flatten(v).Interface()
}
