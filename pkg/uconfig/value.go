package uconfig

import (
	"fmt"
	"strconv"
)

// Value is a single node of a config value graph.
//
// The zero Value has KindInvalid; use the constructors (Null, Bool, Int, ...)
// or ValueOf to build values.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	enum   *Enum
	items  []Value
	fields *Map
	opaque any
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

// TupleOf builds a fixed-arity sequence. Tuples are rewritten to lists when a
// config is constructed.
func TupleOf(items ...Value) Value { return Value{kind: KindTuple, items: items} }

// MapValue wraps an ordered mapping. A nil map is treated as empty.
func MapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, fields: m}
}

// Opaque wraps a Go value that cannot be represented in a config.
func Opaque(v any) Value { return Value{kind: KindOpaque, opaque: v} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

func (v Value) AsEnum() (Enum, bool) {
	if v.kind != KindEnum {
		return Enum{}, false
	}
	return *v.enum, true
}

// AsMap returns the mapping held by v, or nil when v is not a map.
func (v Value) AsMap() *Map {
	if v.kind != KindMap {
		return nil
	}
	return v.fields
}

// Items returns the elements of a list or tuple. The slice is shared with v.
func (v Value) Items() []Value {
	if !v.kind.IsSequence() {
		return nil
	}
	return v.items
}

// Len returns the number of elements of a sequence or entries of a map.
func (v Value) Len() int {
	switch {
	case v.kind.IsSequence():
		return len(v.items)
	case v.kind == KindMap:
		return v.fields.Len()
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if !v.kind.IsSequence() || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Interface returns the Go-native form of v: nil, bool, int64, float64,
// string, Enum, []any or map[string]any. Tuples become []any as well.
// Opaque values return the wrapped Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindEnum:
		return *v.enum
	case KindList, KindTuple:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, v.fields.Len())
		v.fields.Range(func(k string, item Value) bool {
			out[k] = item.Interface()
			return true
		})
		return out
	case KindOpaque:
		return v.opaque
	default:
		return nil
	}
}

// GoString renders v for debugging and test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return strconv.Quote(v.s)
	case KindEnum:
		return v.enum.String()
	case KindList, KindTuple:
		open, closing := "[", "]"
		if v.kind == KindTuple {
			open, closing = "(", ")"
		}
		s := open
		for i, item := range v.items {
			if i > 0 {
				s += ", "
			}
			s += item.GoString()
		}
		return s + closing
	case KindMap:
		s := "{"
		first := true
		v.fields.Range(func(k string, item Value) bool {
			if !first {
				s += ", "
			}
			first = false
			s += strconv.Quote(k) + ": " + item.GoString()
			return true
		})
		return s + "}"
	case KindOpaque:
		return fmt.Sprintf("opaque(%T)", v.opaque)
	default:
		return "invalid"
	}
}

// EnumType is a named enumeration whose members all carry a primitive of
// the same kind, e.g. a string-backed or int-backed enum.
type EnumType struct {
	name string
	kind Kind
}

// NewEnumType declares an enumeration backed by primitives of the given kind.
func NewEnumType(name string, kind Kind) *EnumType {
	return &EnumType{name: name, kind: kind}
}

func (t *EnumType) Name() string { return t.name }

// PrimitiveKind returns the kind every member's primitive is expected to have.
func (t *EnumType) PrimitiveKind() Kind { return t.kind }

// Member declares an enumeration value. The primitive is converted with
// ValueOf; a primitive whose kind disagrees with the enum's kind is kept as
// is and rejected later by validation.
func (t *EnumType) Member(name string, primitive any) Enum {
	return Enum{typ: t, name: name, primitive: ValueOf(primitive)}
}

// Enum is a member of an EnumType.
type Enum struct {
	typ       *EnumType
	name      string
	primitive Value
}

func (e Enum) Type() *EnumType { return e.typ }

func (e Enum) Name() string { return e.name }

// Primitive returns the underlying primitive value of the member.
func (e Enum) Primitive() Value { return e.primitive }

// Value wraps the member as a config Value.
func (e Enum) Value() Value { return Value{kind: KindEnum, enum: &e} }

func (e Enum) String() string {
	if e.typ == nil {
		return e.name
	}
	return e.typ.name + "." + e.name
}
