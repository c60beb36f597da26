package uconfig

// Normalize returns a deep copy of v in which every tuple, at any depth, is
// rebuilt as a list. Element order and map key order are preserved; scalars
// and enum members pass through unchanged.
//
// Lists and tuples both come back from JSON as lists, so a config keeps
// lists only. Callers that need a tuple convert after reading the field.
func Normalize(v Value) Value {
	switch v.kind {
	case KindMap:
		return MapValue(NormalizeMap(v.fields))
	case KindList, KindTuple:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Normalize(item)
		}
		return List(items...)
	default:
		return v
	}
}

// NormalizeMap applies Normalize to every value of m and returns a new map.
func NormalizeMap(m *Map) *Map {
	out := NewMap()
	m.Range(func(k string, v Value) bool {
		out.Set(k, Normalize(v))
		return true
	})
	return out
}
