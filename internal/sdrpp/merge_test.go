// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sdrpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// entry builds a minimal destination entry for merge tests.
func entry(name string, freq int64) types.Entry {
	return types.Entry{Name: name, Frequency: freq, Bandwidth: 10000}
}

func TestMergeAppendsToExistingList(t *testing.T) {
	doc := NewDocument()
	doc.Lists["VHF"] = &List{ShowOnWaterfall: false, Bookmarks: []types.Entry{
		entry("Old", 144800000),
	}}

	counts := Merge(doc, []types.Mapped{
		{Entry: entry("New A", 145500000), Category: "VHF", CategoryKey: "VHF"},
		{Entry: entry("New B", 145600000), Category: "VHF", CategoryKey: "VHF"},
	})

	assert.Equal(t, map[string]int{"VHF": 2}, counts)
	list := doc.Lists["VHF"]
	require.Len(t, list.Bookmarks, 3)
	// Existing entries stay first and untouched; new entries keep source order.
	assert.Equal(t, "Old", list.Bookmarks[0].Name)
	assert.Equal(t, "New A", list.Bookmarks[1].Name)
	assert.Equal(t, "New B", list.Bookmarks[2].Name)
	// Display attributes of an existing list are not reset.
	assert.False(t, list.ShowOnWaterfall)
}

func TestMergeCreatesListWithDefaults(t *testing.T) {
	doc := NewDocument()

	Merge(doc, []types.Mapped{
		{Entry: entry("Repeater A", 145500000), Category: "VHF", CategoryKey: "VHF"},
	})

	require.Contains(t, doc.Lists, "VHF")
	assert.True(t, doc.Lists["VHF"].ShowOnWaterfall)
	require.Len(t, doc.Lists["VHF"].Bookmarks, 1)
}

func TestMergeDisambiguatesCollidingGroups(t *testing.T) {
	doc := NewDocument()

	// Two distinct source groups sanitize to the same candidate name.
	counts := Merge(doc, []types.Mapped{
		{Entry: entry("A", 1000), Category: "HF_40m", CategoryKey: "HF/40m"},
		{Entry: entry("B", 2000), Category: "HF_40m", CategoryKey: `HF\40m`},
		{Entry: entry("C", 3000), Category: "HF_40m", CategoryKey: "HF/40m"},
	})

	require.Contains(t, doc.Lists, "HF_40m")
	require.Contains(t, doc.Lists, "HF_40m (1)")
	assert.Equal(t, map[string]int{"HF_40m": 2, "HF_40m (1)": 1}, counts)
	// Same group resolves to the same list both times.
	assert.Equal(t, "A", doc.Lists["HF_40m"].Bookmarks[0].Name)
	assert.Equal(t, "C", doc.Lists["HF_40m"].Bookmarks[1].Name)
	assert.Equal(t, "B", doc.Lists["HF_40m (1)"].Bookmarks[0].Name)
}

func TestMergeIntoBaseListSharedByGroups(t *testing.T) {
	doc := NewDocument()
	doc.Lists["UHF"] = &List{ShowOnWaterfall: true}

	// A candidate matching a pre-existing base list always merges into it,
	// even for distinct source groups.
	counts := Merge(doc, []types.Mapped{
		{Entry: entry("A", 1000), Category: "UHF", CategoryKey: "UHF"},
		{Entry: entry("B", 2000), Category: "UHF", CategoryKey: "UHF\n"},
	})

	assert.Equal(t, map[string]int{"UHF": 2}, counts)
	require.Len(t, doc.Lists["UHF"].Bookmarks, 2)
}

func TestMergeSuffixSkipsBaseListNames(t *testing.T) {
	doc := NewDocument()
	doc.Lists["HF_40m (1)"] = &List{ShowOnWaterfall: true}

	// The second colliding group cannot take "HF_40m (1)": that name
	// belongs to an unrelated base list.
	Merge(doc, []types.Mapped{
		{Entry: entry("A", 1000), Category: "HF_40m", CategoryKey: "HF/40m"},
		{Entry: entry("B", 2000), Category: "HF_40m", CategoryKey: `HF\40m`},
	})

	require.Contains(t, doc.Lists, "HF_40m (2)")
	assert.Equal(t, "B", doc.Lists["HF_40m (2)"].Bookmarks[0].Name)
	assert.Equal(t, "A", doc.Lists["HF_40m"].Bookmarks[0].Name)
	assert.Empty(t, doc.Lists["HF_40m (1)"].Bookmarks)
}
