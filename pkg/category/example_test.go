package category_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/cattree/pkg/category"
)

func ExampleBuildTree() {
	nodes := category.BuildTree([]category.Category{
		{ID: 10, Name: "Garden", Title: "2"},
		{ID: 11, Name: "Kitchen", Title: "1#", Children: []category.Category{
			{ID: 21, Name: "Knives", Title: "5"},
			{ID: 20, Name: "Pans", Title: "4"},
		}},
		{ID: 12, Name: "Misc", Title: "misc"},
	})

	category.Walk(nodes, func(n *category.Node, depth int) bool {
		fmt.Printf("%s%s order=%d home=%v\n", strings.Repeat("  ", depth), n.Name, n.Order, n.ShowOnHome)
		return true
	})
	// Output:
	// Kitchen order=1 home=true
	//   Pans order=4 home=false
	//   Knives order=5 home=false
	// Garden order=2 home=true
	// Misc order=12 home=true
}

func ExampleFromQuery() {
	failing := func(context.Context) (*category.Response, error) {
		return nil, fmt.Errorf("upstream unavailable")
	}

	nodes := category.FromQuery(context.Background(), failing)
	fmt.Println(len(nodes), nodes != nil)
	// Output:
	// 0 true
}
