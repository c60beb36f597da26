package uconfig

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders v as a yaml.Node so map order survives encoding.
func (v Value) MarshalYAML() (any, error) {
	return toYAMLNode(v)
}

// UnmarshalYAML decodes a YAML node into v. Scalars with no config
// representation (timestamps, binary, custom tags) become Opaque values and
// fail validation.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML renders m as an ordered YAML mapping.
func (m *Map) MarshalYAML() (any, error) {
	return toYAMLNode(MapValue(m))
}

// UnmarshalYAML replaces the contents of m with a decoded YAML mapping.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	if decoded.kind != KindMap {
		return fmt.Errorf("line %d: expected a YAML mapping, got %s", node.Line, decoded.kind)
	}
	*m = *decoded.fields
	return nil
}

func toYAMLNode(v Value) (*yaml.Node, error) {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}, nil
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.i, 10)}, nil
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(v.f)}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}, nil
	case KindEnum:
		return toYAMLNode(v.enum.primitive)
	case KindList, KindTuple:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		v.fields.Range(func(k string, item Value) bool {
			var child *yaml.Node
			if child, err = toYAMLNode(item); err != nil {
				return false
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			node.Content = append(node.Content, key, child)
			return true
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot encode %s value as YAML", v.kind)
	}
}

// yamlFloat spells non-finite values the way YAML 1.2 resolves them.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return formatFloat(f)
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := fromYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			item, err := fromYAMLNode(valueNode)
			if err != nil {
				return Value{}, err
			}
			m.Set(keyNode.Value, item)
		}
		return MapValue(m), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!str":
		return String(node.Value), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return Value{}, err
		}
		return Opaque(t), nil
	default:
		return Opaque(node.Value), nil
	}
}
