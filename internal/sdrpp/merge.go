// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sdrpp

import (
	"fmt"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// Merge appends mapped bookmarks into doc, creating lists as needed, and
// returns the number of bookmarks added per final list name. Existing
// entries are never removed, reordered, or overwritten; new entries keep
// source order within their list.
//
// Name resolution: a candidate matching a list already present in the base
// document merges into it. Lists created during this run are tracked by
// the raw source group text, so two distinct groups whose candidates
// collide (after sanitization, or both falling back) get numeric suffixes
// instead of sharing a list.
func Merge(doc *Document, mapped []types.Mapped) map[string]int {
	// Run-local bookkeeping, threaded explicitly: raw group text -> final
	// list name, plus the set of list names created during this run.
	assigned := make(map[string]string)
	created := make(map[string]bool)

	counts := make(map[string]int)
	for _, m := range mapped {
		name := resolveName(doc, assigned, created, m)

		list, ok := doc.Lists[name]
		if !ok {
			list = &List{ShowOnWaterfall: true}
			doc.Lists[name] = list
		}
		list.Bookmarks = append(list.Bookmarks, m.Entry)
		counts[name]++
	}
	return counts
}

// resolveName picks the final list name for one mapped bookmark. Each raw
// group text resolves once per run; later bookmarks from the same group
// reuse the assignment.
func resolveName(doc *Document, assigned map[string]string, created map[string]bool, m types.Mapped) string {
	if name, ok := assigned[m.CategoryKey]; ok {
		return name
	}

	name := m.Category
	if _, inDoc := doc.Lists[name]; inDoc && !created[name] {
		// Pre-existing base list: append to it.
		assigned[m.CategoryKey] = name
		return name
	}

	// Fresh list. Suffix past any name taken by a base list or by a list
	// another group created earlier in this run.
	for n := 1; nameTaken(doc, created, name); n++ {
		name = fmt.Sprintf("%s (%d)", m.Category, n)
	}
	created[name] = true
	assigned[m.CategoryKey] = name
	return name
}

// nameTaken reports whether name already denotes a list this group must not
// share: anything present in the document or created this run.
func nameTaken(doc *Document, created map[string]bool, name string) bool {
	if created[name] {
		return true
	}
	_, ok := doc.Lists[name]
	return ok
}
