package tree

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Metadata holds the arbitrary fields of a generic node.
type Metadata map[string]any

// Item is a generic input node. In JSON, every key other than "id" and
// "children" is collected into Meta.
type Item struct {
	ID       int
	Meta     Metadata
	Children []Item
}

// TreeID implements [Source].
func (it Item) TreeID() int { return it.ID }

// TreeChildren implements [Source].
func (it Item) TreeChildren() []Item { return it.Children }

// UnmarshalJSON decodes a flat JSON object into an Item.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Item
	for k, v := range raw {
		switch k {
		case "id":
			if err := json.Unmarshal(v, &out.ID); err != nil {
				return fmt.Errorf("id: %w", err)
			}
		case "children":
			if err := json.Unmarshal(v, &out.Children); err != nil {
				return fmt.Errorf("item %d children: %w", out.ID, err)
			}
		default:
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return fmt.Errorf("field %s: %w", k, err)
			}
			if out.Meta == nil {
				out.Meta = Metadata{}
			}
			out.Meta[k] = val
		}
	}
	*it = out
	return nil
}

// Node is a generic output node produced by [Copy].
type Node struct {
	ID       int
	Order    int
	Meta     Metadata
	Children []*Node
}

// MarshalJSON encodes the node as a flat object: Meta keys sit next to "id",
// "order" and "children". The reserved keys win over Meta entries.
func (n *Node) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(n.Meta)+3)
	maps.Copy(obj, n.Meta)
	obj["id"] = n.ID
	obj["order"] = n.Order
	children := n.Children
	if children == nil {
		children = []*Node{}
	}
	obj["children"] = children
	return json.Marshal(obj)
}

// Copy is the default transform: a shallow copy of the item's fields plus
// the computed order and built children.
func Copy(in Item, order int, children []*Node) *Node {
	return &Node{
		ID:       in.ID,
		Order:    order,
		Meta:     maps.Clone(in.Meta),
		Children: children,
	}
}
