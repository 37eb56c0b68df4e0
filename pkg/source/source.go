package source

import (
	"context"
	"slices"

	"github.com/matzehuels/cattree/pkg/category"
	"github.com/matzehuels/cattree/pkg/io"
)

// Static returns a query that resolves to a copy of cats.
func Static(cats []category.Category) category.QueryFunc {
	data := slices.Clone(cats)
	return func(ctx context.Context) (*category.Response, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &category.Response{Data: slices.Clone(data)}, nil
	}
}

// File returns a query that reads the category file at path on every call.
// The format follows the extension (.yaml/.yml or JSON otherwise).
func File(path string) category.QueryFunc {
	return func(ctx context.Context) (*category.Response, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cats, err := io.ImportCategories(path)
		if err != nil {
			return nil, err
		}
		return &category.Response{Data: cats}, nil
	}
}
