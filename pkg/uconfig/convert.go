package uconfig

import (
	"math"
	"reflect"
	"sort"
)

// Tuple is a fixed-arity sequence literal for use in definition hooks:
//
//	b.Set("origin", uconfig.Tuple{0, 0})
//
// Tuples are normalized to lists when the config is constructed.
type Tuple []any

// ValueOf converts a Go value into a config Value.
//
// Supported inputs are nil, bool, every integer and float type, string,
// Enum, Value, *Map, Tuple, slices (lists), arrays (tuples), and maps with
// string keys. Nil pointers become Null and non-nil pointers are followed.
// Go maps have no order, so their keys are sorted. Anything else is wrapped
// with Opaque and fails validation.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Null()
		}
		return *x
	case Enum:
		return x.Value()
	case *Map:
		return MapValue(x)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float64:
		return Float(x)
	case Tuple:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = ValueOf(item)
		}
		return TupleOf(items...)
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = ValueOf(item)
		}
		return List(items...)
	case map[string]any:
		m := NewMap()
		for _, k := range sortedKeys(x) {
			m.Set(k, ValueOf(x[k]))
		}
		return MapValue(m)
	}
	return valueOfReflect(reflect.ValueOf(v), v)
}

func valueOfReflect(rv reflect.Value, orig any) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Opaque(orig)
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return List()
		}
		return List(reflectItems(rv)...)
	case reflect.Array:
		return TupleOf(reflectItems(rv)...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Opaque(orig)
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		m := NewMap()
		for _, k := range keys {
			m.Set(k.String(), ValueOf(rv.MapIndex(k).Interface()))
		}
		return MapValue(m)
	default:
		return Opaque(orig)
	}
}

func reflectItems(rv reflect.Value) []Value {
	items := make([]Value, rv.Len())
	for i := range items {
		items[i] = ValueOf(rv.Index(i).Interface())
	}
	return items
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
