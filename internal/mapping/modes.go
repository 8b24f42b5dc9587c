// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapping translates SDR# bookmark records into SDR++-ready entries:
// detector tokens become the SDR++ mode enum, group names become list name
// candidates, and missing bandwidths get per-mode defaults.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// defaultModes is the SDR# detector token to SDR++ mode enum table. The
// SDR++ enum has varied across builds, so the table can be replaced via
// configuration (see Table).
var defaultModes = map[string]int{
	"NFM": 0,
	"WFM": 1,
	"AM":  2,
	"USB": 4,
	"LSB": 5,
}

// Bandwidth defaults in hertz, used when the source entry carries no
// FilterBandwidth. Wideband FM needs far more than the narrow modes.
const (
	defaultBandwidthWFM = 200000
	defaultBandwidthNFM = 12000
	defaultBandwidth    = 10000
)

// Table resolves detector tokens to SDR++ mode codes.
type Table map[string]int

// DefaultTable returns a copy of the built-in mode table.
func DefaultTable() Table {
	t := make(Table, len(defaultModes))
	for k, v := range defaultModes {
		t[k] = v
	}
	return t
}

// TableFromOverrides builds a mode table from a configuration override map.
// An override must cover exactly the recognized tokens — partial maps are
// rejected so that a typo cannot silently fall back to a built-in code —
// and every code must be a non-negative integer.
func TableFromOverrides(overrides map[string]int) (Table, error) {
	t := make(Table, len(defaultModes))
	for token, code := range overrides {
		upper := strings.ToUpper(strings.TrimSpace(token))
		if _, ok := defaultModes[upper]; !ok {
			return nil, fmt.Errorf("mode override: unrecognized token %q (recognized: %s)", token, recognizedTokens())
		}
		if code < 0 {
			return nil, fmt.Errorf("mode override: %s maps to negative code %d", upper, code)
		}
		if _, dup := t[upper]; dup {
			return nil, fmt.Errorf("mode override: duplicate token %q", token)
		}
		t[upper] = code
	}
	if len(t) != len(defaultModes) {
		return nil, fmt.Errorf("mode override must cover all tokens (%s), got %d of %d",
			recognizedTokens(), len(t), len(defaultModes))
	}
	return t, nil
}

// Lookup resolves a detector token case-insensitively.
func (t Table) Lookup(token string) (int, bool) {
	code, ok := t[strings.ToUpper(strings.TrimSpace(token))]
	return code, ok
}

// recognizedTokens returns the token set as a stable, readable list.
func recognizedTokens() string {
	tokens := make([]string, 0, len(defaultModes))
	for k := range defaultModes {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ", ")
}

// defaultBandwidthFor picks a bandwidth for entries that carry none.
func defaultBandwidthFor(token string) float64 {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "WFM":
		return defaultBandwidthWFM
	case "NFM":
		return defaultBandwidthNFM
	default:
		return defaultBandwidth
	}
}

// Options control per-record mapping behavior.
type Options struct {
	// Flatten puts every record into the fallback category instead of its
	// source group.
	Flatten bool

	// FavouritePrefix prefixes favourite bookmark names with a star.
	FavouritePrefix bool
}

// favouriteMark is prepended to favourite names when FavouritePrefix is set.
const favouriteMark = "★ "

// Map converts source records into destination-ready entries paired with
// their category candidates. It fails on the first unrecognized detector
// token; nothing is ever silently defaulted to another mode.
func Map(records []types.Bookmark, modes Table, opts Options) ([]types.Mapped, error) {
	mapped := make([]types.Mapped, 0, len(records))
	for i, rec := range records {
		code, ok := modes.Lookup(rec.Mode)
		if !ok {
			return nil, &types.UnknownModeError{Token: rec.Mode, Index: i}
		}

		bandwidth := rec.Bandwidth
		if bandwidth == 0 {
			bandwidth = defaultBandwidthFor(rec.Mode)
		}

		name := rec.Name
		if opts.FavouritePrefix && rec.Favourite {
			name = favouriteMark + name
		}

		key := rec.Category
		if opts.Flatten {
			key = ""
		}

		mapped = append(mapped, types.Mapped{
			Entry: types.Entry{
				Name:      name,
				Frequency: rec.Frequency,
				Bandwidth: bandwidth,
				Mode:      code,
			},
			Category:    CandidateName(key),
			CategoryKey: key,
		})
	}
	return mapped, nil
}
