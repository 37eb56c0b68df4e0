// Package tree builds ordered trees from nested input nodes.
//
// # Overview
//
// A [Builder] walks a sequence of input nodes depth-first, builds every
// node's children before the node itself, and sorts each sibling list by a
// computed order. Two functions configure it:
//
//   - [OrderFunc]: extracts the order of a single input node
//   - [TransformFunc]: turns an input node, its order and its already built
//     children into an output node
//
// The order of a node depends only on the node itself. Siblings are sorted
// with a stable sort, so nodes sharing an order keep their input sequence.
//
// # Basic Usage
//
// Input types implement [Source]. The generic [Item] and [Node] types cover
// free-form data and are wired to the default configuration by [Default]:
//
//	b := tree.Default()
//	nodes := b.Build([]tree.Item{
//	    {ID: 2, Meta: tree.Metadata{"name": "b"}},
//	    {ID: 1, Meta: tree.Metadata{"name": "a"}},
//	})
//	// nodes[0].ID == 1
//
// Domain packages supply their own types and functions through [New]:
//
//	b, err := tree.New(tree.Config[Category, *Node]{
//	    Order:     orderFromTitle,
//	    Transform: toNode,
//	})
//
// # Concurrency
//
// A Builder carries only its configuration. [Builder.Build] allocates a new
// output tree on every call and never mutates its input, so one Builder can
// serve concurrent callers.
package tree
