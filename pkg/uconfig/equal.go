package uconfig

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal.
//
// Comparison is by value only: a list and a tuple with equal elements are
// equal, ints and floats compare exactly by numeric value, NaN equals NaN,
// and an enum member equals its own primitive. Booleans never equal numbers. Maps compare without regard
// to key order; sequences compare element by element.
func Equal(a, b Value) bool {
	if a.kind == KindEnum {
		return Equal(a.enum.primitive, b)
	}
	if b.kind == KindEnum {
		return Equal(a, b.enum.primitive)
	}

	switch a.kind {
	case KindNull:
		return b.kind == KindNull
	case KindBool:
		return b.kind == KindBool && a.b == b.b
	case KindInt:
		switch b.kind {
		case KindInt:
			return a.i == b.i
		case KindFloat:
			return intEqualsFloat(a.i, b.f)
		}
		return false
	case KindFloat:
		switch b.kind {
		case KindFloat:
			return a.f == b.f || math.IsNaN(a.f) && math.IsNaN(b.f)
		case KindInt:
			return intEqualsFloat(b.i, a.f)
		}
		return false
	case KindString:
		return b.kind == KindString && a.s == b.s
	case KindList, KindTuple:
		if !b.kind.IsSequence() || len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return b.kind == KindMap && EqualMaps(a.fields, b.fields)
	case KindOpaque:
		return b.kind == KindOpaque && reflect.DeepEqual(a.opaque, b.opaque)
	default:
		return a.kind == b.kind
	}
}

// EqualMaps reports whether a and b hold the same keys with equal values.
func EqualMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Range(func(k string, av Value) bool {
		bv, ok := b.Get(k)
		equal = ok && Equal(av, bv)
		return equal
	})
	return equal
}

// intEqualsFloat compares without rounding i through float64. Only an
// integral f inside the int64 range can match.
func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return int64(f) == i
}
