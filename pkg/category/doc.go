// Package category turns raw content-source category records into an ordered
// tree ready for presentation.
//
// # Ordering
//
// A category's order comes from its Title when the title is a plain number,
// optionally followed by one '#': "3" orders as 3 and "12#" as 12. Any other
// title, including the empty string, falls back to the category ID. Siblings
// are sorted by order at every level; ties keep their input sequence.
//
// # Home Page Selection
//
// After the tree is built, [Builder.BuildTree] sets ShowOnHome on top-level
// nodes using the first rule that applies:
//
//  1. At most [Policy.HomeLimit] (5) top-level nodes: all of them.
//  2. Some top-level titles contain '#' anywhere: exactly those.
//  3. Otherwise: the first [Policy.DefaultHome] (3) nodes in sorted order.
//
// The '#' marks are read from the raw titles, independently of ordering, so
// a title such as "12#abc" orders by ID yet still counts as marked.
//
// # Querying
//
// [FromQuery] runs a [QueryFunc] once and builds the tree from its data. It
// never fails: query errors and panics are logged through the logger carried
// in the context (see [WithLogger]) and produce an empty tree.
//
//	nodes := category.FromQuery(ctx, source.HTTP(url))
package category
