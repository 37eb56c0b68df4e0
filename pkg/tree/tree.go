package tree

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNoTransform is returned by [New] when no transform is configured and the
// output type has no default transform. Only the [Item] to [*Node] pair has one.
var ErrNoTransform = errors.New("no transform configured for output type")

// Source is the constraint satisfied by input nodes. A nil and an empty
// children slice are treated identically.
type Source[T any] interface {
	TreeID() int
	TreeChildren() []T
}

// OrderFunc computes the order of a single input node.
type OrderFunc[T any] func(in T) int

// TransformFunc produces the output node for in. The children slice is
// already sorted and never nil.
type TransformFunc[T, R any] func(in T, order int, children []R) R

// Config holds the functions a [Builder] is parameterized by.
// A nil Order orders nodes by their identifier.
type Config[T, R any] struct {
	Order     OrderFunc[T]
	Transform TransformFunc[T, R]
}

// Builder builds ordered output trees. Create one with [New].
type Builder[T Source[T], R any] struct {
	order     OrderFunc[T]
	transform TransformFunc[T, R]
}

// New returns a Builder for cfg, filling in defaults for nil functions.
func New[T Source[T], R any](cfg Config[T, R]) (*Builder[T, R], error) {
	b := &Builder[T, R]{order: cfg.Order, transform: cfg.Transform}
	if b.order == nil {
		b.order = byID[T]
	}
	if b.transform == nil {
		t, ok := any(TransformFunc[Item, *Node](Copy)).(TransformFunc[T, R])
		if !ok {
			return nil, ErrNoTransform
		}
		b.transform = t
	}
	return b, nil
}

// MustNew is like [New] but panics if the configuration is incomplete.
// It is meant for package-level builders whose configuration is static.
func MustNew[T Source[T], R any](cfg Config[T, R]) *Builder[T, R] {
	b, err := New(cfg)
	if err != nil {
		panic("tree: " + err.Error())
	}
	return b
}

// Default returns a Builder over generic items that orders by identifier and
// copies every item with [Copy].
func Default() *Builder[Item, *Node] {
	return MustNew(Config[Item, *Node]{})
}

func byID[T Source[T]](in T) int { return in.TreeID() }

// entry pairs a built node with the order it was built with, so sorting does
// not depend on how R exposes its order.
type entry[R any] struct {
	order int
	node  R
}

// Build returns the ordered output tree for items. The result has one node
// per input node at every level and is never nil.
func (b *Builder[T, R]) Build(items []T) []R {
	entries := make([]entry[R], 0, len(items))
	for _, in := range items {
		children := b.Build(in.TreeChildren())
		order := b.order(in)
		entries = append(entries, entry[R]{order: order, node: b.transform(in, order, children)})
	}

	slices.SortStableFunc(entries, func(x, y entry[R]) int {
		return cmp.Compare(x.order, y.order)
	})

	out := make([]R, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}
	return out
}
