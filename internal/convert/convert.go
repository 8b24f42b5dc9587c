// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the SDR# to SDR++ conversion pipeline: read the
// source bookmarks, map modes and categories, merge into the base document,
// and write the result to a new file. The run either completes or fails
// outright; no partial output is committed.
package convert

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/sdrconv/internal/mapping"
	"github.com/pdiddy/sdrconv/internal/sdrpp"
	"github.com/pdiddy/sdrconv/internal/sdrsharp"
)

// OutputSuffix is appended to the base path when no explicit output path is
// given, so the base document is never overwritten in place.
const OutputSuffix = ".new"

// Options configure one conversion run.
type Options struct {
	// SourcePath is the SDR# Frequencies.xml file.
	SourcePath string

	// BasePath is the SDR++ frequency_manager_config.json to merge into.
	// It is only ever read.
	BasePath string

	// OutPath is where the merged document is written. Empty means
	// BasePath + OutputSuffix.
	OutPath string

	// Modes overrides the built-in mode table when non-nil. Must cover
	// every recognized token.
	Modes map[string]int

	// Flatten puts every bookmark into the fallback category.
	Flatten bool

	// FavouritePrefix stars favourite bookmark names.
	FavouritePrefix bool

	// ReportPath, when non-empty, receives a YAML run report.
	ReportPath string
}

// Result summarizes a completed run.
type Result struct {
	OutPath    string
	Added      int
	Categories map[string]int
}

// Run executes the pipeline once, printing per-stage status to w. On any
// error the output file is not written.
func Run(opts Options, w io.Writer) (Result, error) {
	modes := mapping.DefaultTable()
	if opts.Modes != nil {
		t, err := mapping.TableFromOverrides(opts.Modes)
		if err != nil {
			return Result{}, err
		}
		modes = t
	}

	records, err := sdrsharp.ReadFile(opts.SourcePath)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "read %d bookmarks from %s\n", len(records), opts.SourcePath)

	mapped, err := mapping.Map(records, modes, mapping.Options{
		Flatten:         opts.Flatten,
		FavouritePrefix: opts.FavouritePrefix,
	})
	if err != nil {
		return Result{}, err
	}

	doc, err := sdrpp.Load(opts.BasePath)
	if err != nil {
		return Result{}, err
	}

	counts := sdrpp.Merge(doc, mapped)

	outPath := opts.OutPath
	if outPath == "" {
		outPath = opts.BasePath + OutputSuffix
	}
	if err := sdrpp.Write(doc, outPath); err != nil {
		return Result{}, err
	}

	result := Result{OutPath: outPath, Added: len(mapped), Categories: counts}
	for _, name := range sortedNames(counts) {
		fmt.Fprintf(w, "  %s: %d added\n", name, counts[name])
	}
	fmt.Fprintf(w, "wrote %s (%d bookmarks)\n", outPath, result.Added)

	if opts.ReportPath != "" {
		if err := WriteReport(opts.ReportPath, opts, result); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "wrote report %s\n", opts.ReportPath)
	}
	return result, nil
}

// sortedNames returns the map keys in stable order for output.
func sortedNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
