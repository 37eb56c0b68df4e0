package category

import (
	"github.com/matzehuels/cattree/pkg/tree"
)

// Builder builds category trees. It holds only configuration and is safe for
// concurrent use.
type Builder struct {
	tree   *tree.Builder[Category, *Node]
	policy Policy
}

// Option configures a [Builder].
type Option func(*Builder)

// WithPolicy overrides the home page thresholds. Zero fields keep their
// defaults.
func WithPolicy(p Policy) Option {
	return func(b *Builder) { b.policy = p.withDefaults() }
}

// NewBuilder returns a Builder using [Order], [Transform] and
// [DefaultPolicy] unless overridden by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		tree: tree.MustNew(tree.Config[Category, *Node]{
			Order:     Order,
			Transform: Transform,
		}),
		policy: DefaultPolicy,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Policy returns the builder's home page thresholds.
func (b *Builder) Policy() Policy { return b.policy }

// BuildTree orders categories and flags the home page nodes. Empty input
// yields an empty, non-nil slice.
func (b *Builder) BuildTree(categories []Category) []*Node {
	if len(categories) == 0 {
		return []*Node{}
	}
	nodes := b.tree.Build(categories)
	SetHomeFlags(nodes, HomeMarked(categories), b.policy)
	return nodes
}

var defaultBuilder = NewBuilder()

// BuildTree builds categories with the default builder.
func BuildTree(categories []Category) []*Node {
	return defaultBuilder.BuildTree(categories)
}

func children(n *Node) []*Node { return n.Children }

// Walk visits nodes in pre-order. Returning false from fn skips the node's
// children.
func Walk(nodes []*Node, fn func(n *Node, depth int) bool) {
	tree.Walk(nodes, children, fn)
}

// Count returns the number of nodes at every level.
func Count(nodes []*Node) int {
	return tree.Count(nodes, children)
}

// HomeNodes returns the top-level nodes flagged for the home page, in order.
func HomeNodes(nodes []*Node) []*Node {
	home := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ShowOnHome {
			home = append(home, n)
		}
	}
	return home
}
