package uconfig

// Map is a string-keyed mapping that remembers insertion order.
//
// The zero value is not usable; create maps with NewMap. Read methods accept
// a nil *Map and treat it as empty.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores v under key. Re-setting an existing key keeps its position.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, exists := m.values[key]; !exists {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Values returns the values in insertion order.
func (m *Map) Values() []Value {
	out := make([]Value, 0, m.Len())
	m.Range(func(_ string, v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Range(func(k string, v Value) bool {
		out.Set(k, cloneValue(v))
		return true
	})
	return out
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindList, KindTuple:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = cloneValue(item)
		}
		v.items = items
	case KindMap:
		v.fields = v.fields.Clone()
	}
	return v
}
