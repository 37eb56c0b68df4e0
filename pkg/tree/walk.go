package tree

// Walk visits nodes in pre-order, passing each node's depth (0 for the given
// nodes). If fn returns false the node's children are skipped.
func Walk[N any](nodes []N, children func(N) []N, fn func(n N, depth int) bool) {
	walk(nodes, children, fn, 0)
}

func walk[N any](nodes []N, children func(N) []N, fn func(N, int) bool, depth int) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(children(n), children, fn, depth+1)
		}
	}
}

// Count returns the number of nodes in the tree rooted at nodes.
func Count[N any](nodes []N, children func(N) []N) int {
	total := 0
	Walk(nodes, children, func(N, int) bool {
		total++
		return true
	})
	return total
}
