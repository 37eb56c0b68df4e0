package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cattree/pkg/category"
)

// WriteTree encodes nodes to w. A nil slice is written as an empty list.
func WriteTree(w io.Writer, nodes []*category.Node, f Format) error {
	if nodes == nil {
		nodes = []*category.Node{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}

// ExportTree writes nodes to the file at path, creating or truncating it.
// An empty format follows the file extension.
func ExportTree(nodes []*category.Node, path string, format Format) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTree(f, nodes, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
