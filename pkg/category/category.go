package category

import "context"

// Category is a raw category record as delivered by the content source.
// Wire keys keep the source's spelling.
type Category struct {
	ID                 int        `json:"id" yaml:"id" bson:"id"`
	Name               string     `json:"name" yaml:"name" bson:"name"`
	HasChildren        bool       `json:"hasChildren" yaml:"hasChildren" bson:"hasChildren"`
	Title              string     `json:"Title" yaml:"Title" bson:"Title"`
	MetaTagDescription string     `json:"MetaTagDescription" yaml:"MetaTagDescription" bson:"MetaTagDescription"`
	URL                string     `json:"url" yaml:"url" bson:"url"`
	Children           []Category `json:"children,omitempty" yaml:"children,omitempty" bson:"children,omitempty"`
}

// TreeID returns the category ID.
func (c Category) TreeID() int { return c.ID }

// TreeChildren returns the nested categories.
func (c Category) TreeChildren() []Category { return c.Children }

// Node is a built category tree node.
type Node struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Image      string  `json:"image" yaml:"image"`
	Order      int     `json:"order" yaml:"order"`
	Children   []*Node `json:"children" yaml:"children"`
	ShowOnHome bool    `json:"showOnHome" yaml:"showOnHome"`
}

// Response is the value a query resolves to.
type Response struct {
	Data []Category `json:"data" yaml:"data"`
}

// QueryFunc fetches the raw category list. It is called once per
// [FromQuery] call and receives the caller's context.
type QueryFunc func(ctx context.Context) (*Response, error)
