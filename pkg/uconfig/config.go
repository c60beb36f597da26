package uconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Definer populates a config's fields. It is called exactly once, by New.
type Definer interface {
	Define(b *Builder) error
}

// Unimplemented can be embedded by config types; its Define reports
// ErrNotImplemented so a type that forgets to override it fails at New.
type Unimplemented struct{}

func (Unimplemented) Define(*Builder) error { return ErrNotImplemented }

// DefineFunc adapts a function to the Definer interface. Configs built from a
// DefineFunc are named "Config" unless wrapped with Named.
type DefineFunc func(b *Builder) error

func (f DefineFunc) Define(b *Builder) error {
	if f == nil {
		return ErrNotImplemented
	}
	return f(b)
}

// Namer lets a Definer choose the name printed by Config.String.
type Namer interface {
	ConfigName() string
}

type namedDefiner struct {
	Definer
	name string
}

func (n namedDefiner) ConfigName() string { return n.name }

// Named gives def an explicit config name.
func Named(name string, def Definer) Definer {
	return namedDefiner{Definer: def, name: name}
}

// Builder collects fields during a definition hook. The first error
// recorded by Set is returned by New.
type Builder struct {
	fields *Map
	err    error
}

// Set defines (or redefines) a field. Any value accepted by ValueOf may be
// given; shape errors are reported after the hook returns.
func (b *Builder) Set(name string, v any) {
	if b.err != nil {
		return
	}
	if err := checkFieldName(name); err != nil {
		b.err = err
		return
	}
	b.fields.Set(name, ValueOf(v))
}

// Get returns a field defined earlier in the same hook.
func (b *Builder) Get(name string) (Value, bool) {
	return b.fields.Get(name)
}

// Err returns the first error recorded by Set.
func (b *Builder) Err() error { return b.err }

// Config is a named, ordered set of typed configuration fields.
//
// A Config is not safe for concurrent mutation.
type Config struct {
	name   string
	fields *Map
}

// Instance is implemented by *Config and by every type embedding it.
type Instance interface {
	Base() *Config
}

// New runs def's definition hook, normalizes every field (tuples become
// lists) and validates the result against the allowed type set. No Config
// is returned unless every step succeeds.
func New(def Definer) (*Config, error) {
	if isNilDefiner(def) {
		return nil, ErrNotImplemented
	}

	b := &Builder{fields: NewMap()}
	if err := def.Define(b); err != nil {
		if errors.Is(err, ErrNotImplemented) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to define config: %w", err)
	}
	if b.err != nil {
		return nil, b.err
	}

	fields := NormalizeMap(b.fields)
	if err := ValidateMap(fields); err != nil {
		return nil, err
	}

	return &Config{name: definerName(def), fields: fields}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// defaults and tests.
func MustNew(def Definer) *Config {
	c, err := New(def)
	if err != nil {
		panic(err)
	}
	return c
}

func isNilDefiner(def Definer) bool {
	if def == nil {
		return true
	}
	rv := reflect.ValueOf(def)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func definerName(def Definer) string {
	if n, ok := def.(Namer); ok {
		return n.ConfigName()
	}
	if _, ok := def.(DefineFunc); ok {
		return "Config"
	}
	t := reflect.TypeOf(def)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "Config"
	}
	return t.Name()
}

// Base returns c itself; it makes every type embedding *Config an Instance.
func (c *Config) Base() *Config { return c }

// Name returns the config's type name.
func (c *Config) Name() string { return c.name }

// Get returns the value of a field.
func (c *Config) Get(name string) (Value, bool) { return c.fields.Get(name) }

// Has reports whether a field exists.
func (c *Config) Has(name string) bool { return c.fields.Has(name) }

// Keys returns the field names in definition order.
func (c *Config) Keys() []string { return c.fields.Keys() }

// Len returns the number of fields.
func (c *Config) Len() int { return c.fields.Len() }

// Fields returns a deep copy of the field mapping.
func (c *Config) Fields() *Map { return c.fields.Clone() }

// Set assigns a field directly. Like attribute assignment on a constructed
// config, it neither normalizes nor validates the value; call Revalidate
// to check the result.
func (c *Config) Set(name string, v any) error {
	if err := checkFieldName(name); err != nil {
		return err
	}
	c.fields.Set(name, ValueOf(v))
	return nil
}

// Delete removes a field and reports whether it existed.
func (c *Config) Delete(name string) bool { return c.fields.Delete(name) }

// Revalidate runs the constructor's validation over the current fields.
// Load and Set skip validation; this is the explicit check.
func (c *Config) Revalidate() error { return ValidateMap(c.fields) }

// Flattened returns the fields with every enum member replaced by its
// primitive value, in definition order.
func (c *Config) Flattened() *Map { return FlattenMap(c.fields) }

// ToPlainMap returns the flattened fields as Go-native data.
func (c *Config) ToPlainMap() map[string]any {
	return MapValue(c.Flattened()).Interface().(map[string]any)
}

// String renders the config name followed by its indented JSON form.
func (c *Config) String() string {
	flat := MapValue(c.Flattened())
	body, err := MarshalIndentJSON(flat, strings.Repeat(" ", DefaultJSONIndent))
	if err != nil {
		return fmt.Sprintf("%s instance: (\n%s\n)", c.name, flat.GoString())
	}
	return fmt.Sprintf("%s instance: (\n%s\n)", c.name, body)
}

// Equal reports whether other is a config with structurally equal fields.
// It returns a *TypeError when other is not a config instance.
func (c *Config) Equal(other any) (bool, error) {
	o, err := asConfig("equality", other)
	if err != nil {
		return false, err
	}
	return EqualMaps(c.fields, o.fields), nil
}

// Difference compares c with other field by field. Every field of c that
// other lacks or holds with a different value is reported as "first.<name>"
// with c's value; every field of other that c lacks or holds differently is
// reported as "second.<name>" with other's value. Equal configs yield an
// empty map. It returns a *TypeError when other is not a config instance.
func (c *Config) Difference(other any) (*Map, error) {
	o, err := asConfig("difference", other)
	if err != nil {
		return nil, err
	}
	return DiffMaps(c.fields, o.fields), nil
}

// DiffMaps computes the first./second. difference of two field mappings.
func DiffMaps(first, second *Map) *Map {
	diff := NewMap()
	first.Range(func(k string, v Value) bool {
		if ov, ok := second.Get(k); !ok || !Equal(v, ov) {
			diff.Set("first."+k, v)
		}
		return true
	})
	second.Range(func(k string, v Value) bool {
		if sv, ok := first.Get(k); !ok || !Equal(v, sv) {
			diff.Set("second."+k, v)
		}
		return true
	})
	return diff
}

func asConfig(op string, other any) (*Config, error) {
	inst, ok := other.(Instance)
	if !ok {
		return nil, &TypeError{Op: op, Operand: other}
	}
	c := inst.Base()
	if c == nil {
		return nil, &TypeError{Op: op, Operand: other}
	}
	return c, nil
}
