package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
)

// ReadCategories decodes a category list from r. The document may be a bare
// list or a {"data": [...]} envelope. An empty document decodes to an empty
// list. ReadCategories does not close r.
func ReadCategories(r io.Reader, f Format) ([]category.Category, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []category.Category{}, nil
	}

	var cats []category.Category
	switch f {
	case FormatJSON:
		cats, err = decodeJSON(data)
	case FormatYAML:
		cats, err = decodeYAML(data)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode %s categories", f)
	}
	if cats == nil {
		cats = []category.Category{}
	}
	return cats, nil
}

// ImportCategories reads the category file at path. The format follows the
// file extension.
func ImportCategories(path string) ([]category.Category, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCategories(f, FormatFromPath(path))
}

func decodeJSON(data []byte) ([]category.Category, error) {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var cats []category.Category
		err := json.Unmarshal(data, &cats)
		return cats, err
	}
	var resp category.Response
	err := json.Unmarshal(data, &resp)
	return resp.Data, err
}

func decodeYAML(data []byte) ([]category.Category, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var cats []category.Category
		err := root.Decode(&cats)
		return cats, err
	}
	var resp category.Response
	err := root.Decode(&resp)
	return resp.Data, err
}
