// Package source provides query functions that feed the category builder.
//
// Each constructor returns a [category.QueryFunc]. The builder calls it once
// per [category.FromQuery] and never inspects where the data came from:
//
//	q := source.HTTP("https://cms.example.com/api/categories",
//	    source.WithHeaders(map[string]string{"Authorization": "Bearer " + token}),
//	)
//	nodes := category.FromQuery(ctx, q)
//
// Available sources:
//
//   - [Static]: an in-memory list, mostly for tests
//   - [File]: a JSON or YAML file on disk
//   - [HTTP]: a GET against a content API returning {"data": [...]}
//
// MongoDB and Redis sources live in the mongo and redis subpackages.
//
// Errors are coded with pkg/errors: NOT_FOUND for missing files, keys and
// 404 responses, NETWORK_ERROR for transport failures and other bad
// statuses, INVALID_FORMAT for undecodable bodies.
package source
