package mapping

import "strings"

// FallbackCategory is the list name used for bookmarks whose source entry
// has no group.
const FallbackCategory = "no category"

// CandidateName computes the destination list name for a source group text.
// SDR++ list names are plain map keys, so path separators and newlines are
// flattened. An empty group maps to FallbackCategory.
func CandidateName(group string) string {
	name := strings.TrimSpace(group)
	if name == "" {
		return FallbackCategory
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return FallbackCategory
	}
	return name
}
