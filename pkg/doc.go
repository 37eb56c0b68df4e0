// Package pkg provides the libraries behind cattree, an ordered category tree
// builder for storefront navigation.
//
// # Overview
//
// A content source delivers categories as a nested list. cattree turns that
// list into a presentation-ready tree: every node gets a deterministic order,
// children are sorted recursively, and a few top-level nodes are flagged for
// the home page. The pkg directory is organized into these areas:
//
//  1. [tree] - Generic ordered tree builder (order + transform functions)
//  2. [category] - Category policy: title ordering, home page selection, safe query entry point
//  3. [source] - Query functions for files, HTTP APIs, MongoDB and Redis
//  4. [pipeline] - Orchestration (source → build → export)
//  5. [io] - JSON and YAML encoding of categories and trees
//
// Supporting packages: [config] (TOML settings), [errors] (coded errors),
// [httputil] (retry), [observability] (hooks and Prometheus metrics) and
// [buildinfo] (version data).
//
// # Architecture
//
// The typical data flow:
//
//	Content source (file, HTTP, MongoDB, Redis)
//	         ↓
//	    [source] package (category.QueryFunc)
//	         ↓
//	    [category] package (FromQuery: order, recurse, flag home)
//	         ↓
//	    [io] package (JSON/YAML output)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/cattree/pkg/category"
//	    "github.com/matzehuels/cattree/pkg/source"
//	)
//
//	nodes := category.FromQuery(ctx, source.HTTP("https://cms.example.com/api/categories"))
//	for _, n := range category.HomeNodes(nodes) {
//	    fmt.Println(n.Order, n.Name)
//	}
//
// FromQuery never fails: a broken source is logged and yields an empty tree.
//
// [tree]: github.com/matzehuels/cattree/pkg/tree
// [category]: github.com/matzehuels/cattree/pkg/category
// [source]: github.com/matzehuels/cattree/pkg/source
// [pipeline]: github.com/matzehuels/cattree/pkg/pipeline
// [io]: github.com/matzehuels/cattree/pkg/io
// [config]: github.com/matzehuels/cattree/pkg/config
// [errors]: github.com/matzehuels/cattree/pkg/errors
// [httputil]: github.com/matzehuels/cattree/pkg/httputil
// [observability]: github.com/matzehuels/cattree/pkg/observability
// [buildinfo]: github.com/matzehuels/cattree/pkg/buildinfo
package pkg
