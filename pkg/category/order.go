package category

import (
	"regexp"
	"strconv"
)

var titleOrderRe = regexp.MustCompile(`^([0-9]+)#?$`)

// OrderFromTitle parses an order from a title made of ASCII digits and at
// most one trailing '#'. It reports false for any other title.
func OrderFromTitle(title string) (int, bool) {
	m := titleOrderRe.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// digit run overflows int
		return 0, false
	}
	return n, true
}

// Order returns the category's title order, or its ID when the title does
// not carry one.
func Order(c Category) int {
	if n, ok := OrderFromTitle(c.Title); ok {
		return n
	}
	return c.ID
}

// Transform maps a category to its output node. ShowOnHome starts false and
// is set by [SetHomeFlags].
func Transform(c Category, order int, children []*Node) *Node {
	return &Node{
		ID:       c.ID,
		Name:     c.Name,
		Image:    c.MetaTagDescription,
		Order:    order,
		Children: children,
	}
}
