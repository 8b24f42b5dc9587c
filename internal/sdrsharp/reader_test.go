// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sdrsharp

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// writeXML writes content to a temp file and returns its path.
func writeXML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Frequencies.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	xml := `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfMemoryEntry xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <MemoryEntry>
    <IsFavourite>true</IsFavourite>
    <Name>Repeater A</Name>
    <GroupName>VHF</GroupName>
    <Frequency>145500000</Frequency>
    <DetectorType>NFM</DetectorType>
    <FilterBandwidth>12500</FilterBandwidth>
  </MemoryEntry>
  <MemoryEntry>
    <IsFavourite>false</IsFavourite>
    <Name> Гроза 40м </Name>
    <GroupName></GroupName>
    <Frequency>7100000</Frequency>
    <DetectorType>lsb</DetectorType>
  </MemoryEntry>
</ArrayOfMemoryEntry>`

	got, err := ReadFile(writeXML(t, xml))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	want := []types.Bookmark{
		{
			Frequency: 145500000,
			Name:      "Repeater A",
			Category:  "VHF",
			Mode:      "NFM",
			Bandwidth: 12500,
			Favourite: true,
		},
		{
			Frequency: 7100000,
			Name:      "Гроза 40м",
			Category:  "",
			Mode:      "lsb",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadFile = %+v, want %+v", got, want)
	}
}

func TestReadFileNameFallback(t *testing.T) {
	xml := `<ArrayOfMemoryEntry>
  <MemoryEntry>
    <Name>   </Name>
    <Frequency>7100000</Frequency>
    <DetectorType>LSB</DetectorType>
  </MemoryEntry>
</ArrayOfMemoryEntry>`

	got, err := ReadFile(writeXML(t, xml))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(got))
	}
	if got[0].Name != "7100000 Hz" {
		t.Errorf("fallback name = %q, want %q", got[0].Name, "7100000 Hz")
	}
}

func TestReadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "not XML",
			content: `{"lists": {}}`,
			check: func(t *testing.T, err error) {
				var e *types.MalformedInputError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want MalformedInputError", err)
				}
			},
		},
		{
			name:    "truncated document",
			content: `<ArrayOfMemoryEntry><MemoryEntry>`,
			check: func(t *testing.T, err error) {
				var e *types.MalformedInputError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want MalformedInputError", err)
				}
			},
		},
		{
			name:    "wrong root element",
			content: `<Bookmarks><MemoryEntry><Frequency>1000</Frequency></MemoryEntry></Bookmarks>`,
			check: func(t *testing.T, err error) {
				var e *types.MalformedInputError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want MalformedInputError", err)
				}
			},
		},
		{
			name: "missing frequency",
			content: `<ArrayOfMemoryEntry>
  <MemoryEntry><Name>ok</Name><Frequency>1000</Frequency><DetectorType>AM</DetectorType></MemoryEntry>
  <MemoryEntry><Name>bad</Name><DetectorType>AM</DetectorType></MemoryEntry>
</ArrayOfMemoryEntry>`,
			check: func(t *testing.T, err error) {
				var e *types.MissingFieldError
				if !errors.As(err, &e) {
					t.Fatalf("err = %v, want MissingFieldError", err)
				}
				if e.Index != 1 || e.Field != "frequency" {
					t.Errorf("got index %d field %q, want index 1 field \"frequency\"", e.Index, e.Field)
				}
			},
		},
		{
			name: "negative frequency",
			content: `<ArrayOfMemoryEntry>
  <MemoryEntry><Name>bad</Name><Frequency>-7100000</Frequency><DetectorType>AM</DetectorType></MemoryEntry>
</ArrayOfMemoryEntry>`,
			check: func(t *testing.T, err error) {
				var e *types.MissingFieldError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want MissingFieldError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(writeXML(t, tt.content))
			if err == nil {
				t.Fatal("ReadFile succeeded, want error")
			}
			tt.check(t, err)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.xml"))
	var e *types.MissingInputFileError
	if !errors.As(err, &e) {
		t.Errorf("err = %v, want MissingInputFileError", err)
	}
}

func TestParseFrequencyDecimalPoint(t *testing.T) {
	got, err := parseFrequency("145500000.0")
	if err != nil {
		t.Fatalf("parseFrequency: %v", err)
	}
	if got != 145500000 {
		t.Errorf("parseFrequency = %d, want 145500000", got)
	}
}
