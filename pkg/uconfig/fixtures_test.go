package uconfig_test

import "github.com/nauticalab/uconfig/pkg/uconfig"

var (
	userTypes  = uconfig.NewEnumType("UserTypes", uconfig.KindString)
	userClient = userTypes.Member("CLIENT", "client")
	userVendor = userTypes.Member("VENDOR", "vendor")

	appID     = uconfig.NewEnumType("AppId", uconfig.KindInt)
	clientApp = appID.Member("CLIENT_APP", 0)
	vendorApp = appID.Member("VENDOR_APP", 1)
)

func setCommon(b *uconfig.Builder) {
	b.Set("bool", false)
	b.Set("int", 6)
	b.Set("float", 7.6)
	b.Set("str", "a third random strin")
	b.Set("enum", userClient)
}

// exampleConfig1 holds every kind of value, lists only.
type exampleConfig1 struct{}

func (exampleConfig1) Define(b *uconfig.Builder) error {
	b.Set("dictionary", map[string]any{
		"a": 1234,
		"b": "some random string",
		"c": []any{1, 2, 3, 4},
		"d": map[string]any{
			"a": []any{1.1, 2.2, 3.3, userVendor},
			"b": "another random string",
		},
		"e": true,
		"f": nil,
		"g": vendorApp,
		"h": []any{[]any{1, 2}, []any{3, 4}},
	})
	b.Set("list", []any{"a", "bc", "def", clientApp})
	setCommon(b)
	return nil
}

// exampleConfig2 is exampleConfig1 written with tuples.
type exampleConfig2 struct{}

func (exampleConfig2) Define(b *uconfig.Builder) error {
	b.Set("dictionary", map[string]any{
		"a": 1234,
		"b": "some random string",
		"c": []any{1, 2, 3, 4},
		"d": map[string]any{
			"a": uconfig.Tuple{1.1, 2.2, 3.3, userVendor},
			"b": "another random string",
		},
		"e": true,
		"f": nil,
		"g": vendorApp,
		"h": []any{[]any{1, 2}, []any{3, 4}},
	})
	b.Set("list", uconfig.Tuple{"a", "bc", "def", clientApp})
	setCommon(b)
	return nil
}

// exampleConfig4 nests tuples in lists and lists in tuples.
type exampleConfig4 struct{}

func (exampleConfig4) Define(b *uconfig.Builder) error {
	b.Set("dictionary", map[string]any{
		"a": 1234,
		"c": uconfig.Tuple{1, 2, 3, 4},
		"h": []any{uconfig.Tuple{1, 2}, []any{3, 4}},
		"i": uconfig.Tuple{[]any{1, 2}, []any{3, 4}},
		"j": uconfig.Tuple{[]any{1, 2}, uconfig.Tuple{3, 4}},
	})
	b.Set("list", []any{"a", "bc", "def", clientApp})
	return nil
}

type exampleConfig5 struct{}

func (exampleConfig5) Define(b *uconfig.Builder) error {
	b.Set("int", 5)
	b.Set("dict", map[string]any{"a": "a", "b": "b"})
	b.Set("float", 4.7)
	b.Set("str", "some string")
	b.Set("bool", true)
	b.Set("list", []any{userClient, clientApp})
	b.Set("tuple", uconfig.Tuple{1, 2, "b", false})
	return nil
}

type exampleConfig6 struct{}

func (exampleConfig6) Define(b *uconfig.Builder) error {
	b.Set("int", 3)
	b.Set("dict", map[string]any{"a": "a", "b": "b"})
	b.Set("float", 4.7)
	b.Set("str", "some strings")
	b.Set("bool", false)
	b.Set("list", []any{userClient, vendorApp})
	return nil
}

// mapOf builds an ordered map from alternating keys and values.
func mapOf(pairs ...any) *uconfig.Map {
	m := uconfig.NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), uconfig.ValueOf(pairs[i+1]))
	}
	return m
}

// definedBy builds a named config from literal fields.
func definedBy(name string, pairs ...any) uconfig.Definer {
	return uconfig.Named(name, uconfig.DefineFunc(func(b *uconfig.Builder) error {
		for i := 0; i+1 < len(pairs); i += 2 {
			b.Set(pairs[i].(string), pairs[i+1])
		}
		return nil
	}))
}

// hasTuple reports whether any tuple remains in v.
func hasTuple(v uconfig.Value) bool {
	switch v.Kind() {
	case uconfig.KindTuple:
		return true
	case uconfig.KindList:
		for _, item := range v.Items() {
			if hasTuple(item) {
				return true
			}
		}
	case uconfig.KindMap:
		for _, item := range v.AsMap().Values() {
			if hasTuple(item) {
				return true
			}
		}
	}
	return false
}
