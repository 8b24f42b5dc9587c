// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk record of a conversion run. Useful when replacing
// the live SDR++ configuration later: it says where the output came from
// and what was added.
type Report struct {
	Source     string         `yaml:"source"`
	Base       string         `yaml:"base"`
	Output     string         `yaml:"output"`
	Added      int            `yaml:"added"`
	Categories map[string]int `yaml:"categories"`
	Timestamp  time.Time      `yaml:"timestamp"`
}

// WriteReport saves a run summary to a YAML file.
func WriteReport(path string, opts Options, result Result) error {
	r := Report{
		Source:     opts.SourcePath,
		Base:       opts.BasePath,
		Output:     result.OutPath,
		Added:      result.Added,
		Categories: result.Categories,
		Timestamp:  time.Now(),
	}
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
