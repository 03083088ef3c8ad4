package prefabs

import (
	"fmt"

	"github.com/milk9111/linklike/collision"
	"gopkg.in/yaml.v3"
)

// MarshalFrame renders f as one keyframe entry of an attack prefab, ready to
// paste under keyframes:.
func MarshalFrame(f collision.Frame) ([]byte, error) {
	boxes := make([]HitboxSpec, f.Len())
	for i, h := range f.Hitboxes() {
		boxes[i] = HitboxSpecFromHitbox(h)
	}
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, b := range boxes {
		var n yaml.Node
		if err := n.Encode(b); err != nil {
			return nil, fmt.Errorf("prefabs: encode hitbox: %w", err)
		}
		n.Style = yaml.FlowStyle
		node.Content = append(node.Content, &n)
	}
	doc := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{node}}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal frame: %w", err)
	}
	return out, nil
}
