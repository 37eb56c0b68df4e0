// Package redis reads categories from a Redis key.
//
// The key holds the same JSON document an HTTP content API would return,
// either {"data": [...]} or a bare list. Content pipelines typically write
// it with a plain SET after each publish:
//
//	client := backend.NewClient(&backend.Options{Addr: "localhost:6379"})
//	nodes := category.FromQuery(ctx, redis.New(client, "cms:categories"))
package redis

import (
	"bytes"
	"context"
	"errors"

	backend "github.com/redis/go-redis/v9"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
	"github.com/matzehuels/cattree/pkg/io"
)

// New returns a query that GETs key from client on every call.
func New(client backend.Cmdable, key string) category.QueryFunc {
	return func(ctx context.Context) (*category.Response, error) {
		if err := errs.ValidateKey(key); err != nil {
			return nil, err
		}
		data, err := client.Get(ctx, key).Bytes()
		if errors.Is(err, backend.Nil) {
			return nil, errs.New(errs.ErrCodeNotFound, "redis key %q not found", key)
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeNetwork, err, "redis GET %q", key)
		}
		cats, err := io.ReadCategories(bytes.NewReader(data), io.FormatJSON)
		if err != nil {
			return nil, err
		}
		return &category.Response{Data: cats}, nil
	}
}

// Dial connects to the server at addr and returns a query over key together
// with a function that closes the connection pool.
func Dial(addr, password string, db int, key string) (category.QueryFunc, func() error) {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return New(client, key), client.Close
}
