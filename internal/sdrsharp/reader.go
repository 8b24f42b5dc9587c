// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sdrsharp reads SDR# Frequencies.xml bookmark files into typed
// records. Validation happens here, at the parse boundary: later stages
// never see a record without a usable frequency or name.
package sdrsharp

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// rootElement is the document element SDR# writes around its memory entries.
const rootElement = "ArrayOfMemoryEntry"

// memoryFile mirrors the Frequencies.xml document structure.
type memoryFile struct {
	XMLName xml.Name
	Entries []memoryEntry `xml:"MemoryEntry"`
}

// memoryEntry mirrors one MemoryEntry element. All fields are child
// elements holding text.
type memoryEntry struct {
	Name            string `xml:"Name"`
	GroupName       string `xml:"GroupName"`
	Frequency       string `xml:"Frequency"`
	DetectorType    string `xml:"DetectorType"`
	FilterBandwidth string `xml:"FilterBandwidth"`
	IsFavourite     string `xml:"IsFavourite"`
}

// ReadFile parses the SDR# bookmark file at path and returns its entries in
// document order. It reports MissingInputFileError when the file is absent,
// MalformedInputError when the document is not well-formed or has the wrong
// root element, and MissingFieldError when an entry has no usable frequency.
func ReadFile(path string) ([]types.Bookmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &types.MissingInputFileError{Path: path}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc memoryFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &types.MalformedInputError{Path: path, Err: err}
	}
	if doc.XMLName.Local != rootElement {
		return nil, &types.MalformedInputError{
			Path: path,
			Err:  fmt.Errorf("unexpected root element %q, want %q", doc.XMLName.Local, rootElement),
		}
	}

	bookmarks := make([]types.Bookmark, 0, len(doc.Entries))
	for i, entry := range doc.Entries {
		b, err := toBookmark(entry)
		if err != nil {
			return nil, &types.MissingFieldError{Path: path, Index: i, Field: "frequency"}
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// toBookmark converts one parsed element into a validated record. The only
// rejection case is a missing or unusable frequency; every other field has
// a fallback.
func toBookmark(entry memoryEntry) (types.Bookmark, error) {
	freq, err := parseFrequency(entry.Frequency)
	if err != nil {
		return types.Bookmark{}, err
	}

	name := strings.TrimSpace(entry.Name)
	if name == "" {
		// SDR# allows unnamed entries; derive a label from the frequency.
		name = fmt.Sprintf("%d Hz", freq)
	}

	var bandwidth float64
	if bw := strings.TrimSpace(entry.FilterBandwidth); bw != "" {
		// An unparseable bandwidth is treated as absent, same as SDR#
		// entries that omit the element. The mapper fills in a default.
		if v, err := strconv.ParseFloat(bw, 64); err == nil && v > 0 {
			bandwidth = v
		}
	}

	return types.Bookmark{
		Frequency: freq,
		Name:      name,
		Category:  strings.TrimSpace(entry.GroupName),
		Mode:      strings.TrimSpace(entry.DetectorType),
		Bandwidth: bandwidth,
		Favourite: parseFavourite(entry.IsFavourite),
	}, nil
}

// parseFrequency parses the Frequency element text into non-negative hertz.
// SDR# writes plain integers, but some exports carry a decimal point.
func parseFrequency(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty frequency")
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative frequency %d", v)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid frequency %q", text)
	}
	return int64(f), nil
}

// parseFavourite interprets the IsFavourite element text.
func parseFavourite(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
