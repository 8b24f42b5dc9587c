// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sdrpp models the SDR++ frequency manager document and merges
// converted bookmarks into it. The base document is only ever read; merged
// output goes to a separate path.
package sdrpp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// List is one named bookmark list in the frequency manager.
type List struct {
	ShowOnWaterfall bool          `json:"showOnWaterfall"`
	Bookmarks       []types.Entry `json:"bookmarks"`
}

// Document is a frequency manager configuration. Top-level keys other than
// "lists" are kept verbatim so the output stays schema-identical to the
// base document across SDR++ versions.
type Document struct {
	Lists map[string]*List

	extra map[string]json.RawMessage
}

// listsKey is the top-level container holding the bookmark lists.
const listsKey = "lists"

// NewDocument returns an empty document with an initialized lists container.
func NewDocument() *Document {
	return &Document{Lists: make(map[string]*List)}
}

// UnmarshalJSON decodes the document, requiring a "lists" object and
// preserving every other top-level field untouched.
func (d *Document) UnmarshalJSON(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}

	raw, ok := top[listsKey]
	if !ok {
		return fmt.Errorf("missing top-level %q object", listsKey)
	}
	lists := make(map[string]*List)
	if err := json.Unmarshal(raw, &lists); err != nil {
		return fmt.Errorf("decoding %q: %w", listsKey, err)
	}
	for name, list := range lists {
		if list == nil {
			lists[name] = &List{ShowOnWaterfall: true}
		}
	}

	delete(top, listsKey)
	d.Lists = lists
	d.extra = top
	return nil
}

// MarshalJSON re-assembles the document, restoring preserved fields.
func (d *Document) MarshalJSON() ([]byte, error) {
	top := make(map[string]json.RawMessage, len(d.extra)+1)
	for k, v := range d.extra {
		top[k] = v
	}
	raw, err := json.Marshal(d.Lists)
	if err != nil {
		return nil, err
	}
	top[listsKey] = raw
	return json.Marshal(top)
}

// Load reads and validates the base document at path. It reports
// MissingInputFileError when the file is absent and InvalidBaseFormatError
// when the content is not valid JSON or lacks the lists container.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &types.MissingInputFileError{Path: path}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &types.InvalidBaseFormatError{Path: path, Err: err}
	}
	return doc, nil
}

// Write serializes the document to path, indented the way SDR++ writes its
// own configuration. The base document is never the target.
func Write(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.WriteError{Path: path, Err: err}
	}
	return nil
}
