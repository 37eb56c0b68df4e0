package category

import "strings"

// Policy holds the home page selection thresholds.
type Policy struct {
	// HomeLimit is the largest top-level count for which every node is shown.
	HomeLimit int
	// DefaultHome is how many leading nodes are shown when nothing is marked.
	DefaultHome int
}

// DefaultPolicy shows up to 5 categories outright and falls back to the
// first 3.
var DefaultPolicy = Policy{HomeLimit: 5, DefaultHome: 3}

func (p Policy) withDefaults() Policy {
	if p.HomeLimit <= 0 {
		p.HomeLimit = DefaultPolicy.HomeLimit
	}
	if p.DefaultHome <= 0 {
		p.DefaultHome = DefaultPolicy.DefaultHome
	}
	return p
}

// HomeMarked returns the IDs of the given categories whose title contains a
// '#' anywhere. Nested categories are not inspected.
func HomeMarked(categories []Category) map[int]struct{} {
	marked := make(map[int]struct{})
	for _, c := range categories {
		if strings.Contains(c.Title, "#") {
			marked[c.ID] = struct{}{}
		}
	}
	return marked
}

// SetHomeFlags sets ShowOnHome on the top-level nodes, which must already be
// in final order. Exactly one rule applies:
//
//   - len(nodes) <= p.HomeLimit: every node
//   - marked is non-empty: nodes whose ID is marked
//   - otherwise: the first p.DefaultHome nodes
//
// Children are never touched.
func SetHomeFlags(nodes []*Node, marked map[int]struct{}, p Policy) {
	p = p.withDefaults()

	switch {
	case len(nodes) <= p.HomeLimit:
		for _, n := range nodes {
			n.ShowOnHome = true
		}
	case len(marked) > 0:
		for _, n := range nodes {
			_, ok := marked[n.ID]
			n.ShowOnHome = ok
		}
	default:
		for i, n := range nodes {
			n.ShowOnHome = i < p.DefaultHome
		}
	}
}
