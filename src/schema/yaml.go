package schema

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document keeping the key order of every mapping.
// Integers and floats both decode to float64 like they would from JSON.
func ParseYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parseYAML")
	}
	if doc.Kind == 0 {
		return nil, errors.New("parseYAML: empty document")
	}
	return decodeYAML(&doc)
}

func decodeYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeYAML(node.Content[0])
	case yaml.AliasNode:
		return decodeYAML(node.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			member, err := decodeYAML(val)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key.Value)
			}
			obj.Set(key.Value, member)
		}
		return obj, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for i, child := range node.Content {
			item, err := decodeYAML(child)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node)
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %v", node.Line, node.Kind)
	}
}

func decodeYAMLScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, errors.Wrapf(err, "line %d", node.Line)
	case "!!int", "!!float":
		var f float64
		err := node.Decode(&f)
		return f, errors.Wrapf(err, "line %d", node.Line)
	default:
		return node.Value, nil
	}
}
