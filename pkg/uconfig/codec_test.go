package uconfig

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	m := NewMap()
	m.Set("zeta", Int(1))
	m.Set("alpha", ValueOf([]any{1.0, 2.5, 1e-7, "tag", nil, true}))
	m.Set("enum", testVendor.Value())
	m.Set("tuple", ValueOf(Tuple{testVendorApp}))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":[1.0,2.5,1e-07,"tag",null,true],"enum":"vendor","tuple":[1]}`, string(data))

	_, err = Float(math.NaN()).MarshalJSON()
	assert.Error(t, err)
	_, err = Opaque(struct{}{}).MarshalJSON()
	assert.Error(t, err)
}

func TestUnmarshalJSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"b": 1, "a": [2.0, 3e2, "x", null, false, {"k": 9223372036854775808}]}`), &v))

	require.Equal(t, KindMap, v.Kind())
	assert.Equal(t, []string{"b", "a"}, v.AsMap().Keys())

	b, _ := v.AsMap().Get("b")
	assert.Equal(t, KindInt, b.Kind())

	a, _ := v.AsMap().Get("a")
	kinds := []Kind{}
	for _, item := range a.Items() {
		kinds = append(kinds, item.Kind())
	}
	assert.Equal(t, []Kind{KindFloat, KindFloat, KindString, KindNull, KindBool, KindMap}, kinds)

	last, _ := a.Index(5)
	big, _ := last.AsMap().Get("k")
	assert.Equal(t, KindFloat, big.Kind(), "integers beyond int64 fall back to float")

	var m Map
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &m))
	assert.Error(t, v.UnmarshalJSON([]byte(`{} {}`)))
	assert.Error(t, v.UnmarshalJSON([]byte(`{"a": }`)))
}

func TestJSONRoundTrip(t *testing.T) {
	in := Flatten(ValueOf(map[string]any{
		"f":    7.0,
		"i":    7,
		"list": []any{[]any{1, 2}, map[string]any{"x": "y"}},
		"e":    testVendorApp,
	}))

	data, err := MarshalIndentJSON(in, "  ")
	require.NoError(t, err)

	var out Value
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.GoString(), out.GoString())
}

func TestYAML(t *testing.T) {
	m := NewMap()
	m.Set("name", String("true"))
	m.Set("port", Int(8080))
	m.Set("ratio", Float(2))
	m.Set("tags", ValueOf(Tuple{"a", testVendor}))
	m.Set("empty", Null())

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.Index(text, "name") < strings.Index(text, "port"))
	assert.Contains(t, text, `"true"`)
	assert.Contains(t, text, "- vendor")

	decoded := NewMap()
	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.Equal(t, m.Keys(), decoded.Keys())
	assert.True(t, EqualMaps(m, decoded))

	name, _ := decoded.Get("name")
	assert.Equal(t, KindString, name.Kind())
	ratio, _ := decoded.Get("ratio")
	assert.Equal(t, KindFloat, ratio.Kind())
}

func TestYAMLNonFiniteFloats(t *testing.T) {
	m := NewMap()
	m.Set("nan", Float(math.NaN()))
	m.Set("inf", Float(math.Inf(1)))
	m.Set("neg", Float(math.Inf(-1)))
	m.Set("ratio", Float(0.5))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "nan: .nan")
	assert.Contains(t, text, "inf: .inf")
	assert.Contains(t, text, "neg: -.inf")

	decoded := NewMap()
	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.Equal(t, m.Keys(), decoded.Keys())
	assert.True(t, EqualMaps(m, decoded))

	nan, _ := decoded.Get("nan")
	f, ok := nan.AsFloat()
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
	neg, _ := decoded.Get("neg")
	f, _ = neg.AsFloat()
	assert.True(t, math.IsInf(f, -1))
}

func TestYAMLScalarsWithoutConfigForm(t *testing.T) {
	var v Value
	require.NoError(t, yaml.Unmarshal([]byte("when: 2001-12-14\nbase: &b {x: 1}\nref: *b\ncustom: !thing value\n"), &v))

	m := v.AsMap()
	when, _ := m.Get("when")
	assert.Equal(t, KindOpaque, when.Kind())

	ref, _ := m.Get("ref")
	assert.Equal(t, KindMap, ref.Kind())

	custom, _ := m.Get("custom")
	assert.Equal(t, KindOpaque, custom.Kind())

	assert.False(t, IsValid([]Value{v}))
}
