// Package io reads raw category lists and writes built category trees.
//
// # Formats
//
// Two encodings are supported, selected explicitly with [ParseFormat] or
// from a file extension with [FormatFromPath]:
//
//   - json: the default, and the wire format of most content APIs
//   - yaml: handy for hand-written fixtures (".yaml" or ".yml")
//
// # Input
//
// [ReadCategories] accepts either a bare list of categories or the envelope
// returned by content APIs:
//
//	{"data": [{"id": 1, "name": "Kitchen", "Title": "1#", "children": []}]}
//
// Both decode to the same []category.Category. Malformed input yields an
// INVALID_FORMAT error from pkg/errors. [ImportCategories] does the same for
// a file path.
//
// # Output
//
// [WriteTree] encodes built nodes with two-space indentation. Children are
// always written as a list, never null, so consumers can iterate without
// checks:
//
//	err := io.WriteTree(os.Stdout, nodes, io.FormatYAML)
//
// [ExportTree] writes to a file path. Without an explicit format it picks one
// from the extension.
package io
