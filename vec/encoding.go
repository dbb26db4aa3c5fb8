package vec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes v as a flow sequence [x, y, z].
func (v Vec3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range v.Array() {
		var item yaml.Node
		if err := item.Encode(f); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}
	return node, nil
}

// UnmarshalYAML accepts either a sequence of up to three numbers or a mapping with
// x, y and z keys. Missing components are 0; extra components or keys are an error.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var s []float32
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("decoding vector: %w", err)
		}
		if len(s) > ElementCount3 {
			return fmt.Errorf("line %d: vector has %d components, want at most %d", node.Line, len(s), ElementCount3)
		}
		*v = FromSlice(s...)
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch key := node.Content[i]; key.Value {
			case "x", "y", "z":
			default:
				return fmt.Errorf("line %d: unknown vector component %q", key.Line, key.Value)
			}
		}
		var m struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
			Z float32 `yaml:"z"`
		}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("decoding vector: %w", err)
		}
		*v = V(m.X, m.Y, m.Z)
		return nil
	}
	return fmt.Errorf("line %d: vector must be a sequence or a mapping", node.Line)
}

// VectorJSON is the JSON form of a Vec3
type VectorJSON struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(VectorJSON{X: v.X, Y: v.Y, Z: v.Z})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var j VectorJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*v = V(j.X, j.Y, j.Z)
	return nil
}
