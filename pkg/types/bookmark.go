// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the sdrconv pipeline:
// the source bookmark record parsed from SDR# XML, the destination entry
// written into the SDR++ frequency manager document, and the error kinds
// the pipeline reports.
package types

// Bookmark is one memory entry read from an SDR# Frequencies.xml file.
// Records keep the order they appear in the source document.
type Bookmark struct {
	// Frequency is the tuned frequency in hertz. Always non-negative.
	Frequency int64

	// Name is the display label. Never empty: the reader substitutes
	// "<frequency> Hz" when the source name is blank.
	Name string

	// Category is the SDR# group name, trimmed. May be empty.
	Category string

	// Mode is the SDR# detector token (NFM, WFM, AM, USB, LSB), as written
	// in the source file. Matching against the mode table is case-insensitive.
	Mode string

	// Bandwidth is the filter bandwidth in hertz, or 0 when the source
	// entry carries none. The mapper fills in a per-mode default.
	Bandwidth float64

	// Favourite reports whether the entry was marked as a favourite.
	Favourite bool
}

// Entry is one bookmark in an SDR++ frequency manager list.
type Entry struct {
	Name      string  `json:"name"`
	Frequency int64   `json:"frequency"`
	Bandwidth float64 `json:"bandwidth"`
	Mode      int     `json:"mode"`
	Selected  bool    `json:"selected"`
}

// Mapped pairs a destination-ready entry with the category it should land
// in. CategoryKey is the raw source group text and identifies the logical
// category during merge disambiguation; Category is the sanitized candidate
// list name.
type Mapped struct {
	Entry       Entry
	Category    string
	CategoryKey string
}
