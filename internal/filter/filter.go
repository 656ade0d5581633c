package filter

import (
	"path"
	"strings"

	"mtr/registry"
)

// Filter selects registry entries by name pattern
type Filter struct{}

// New creates a new Filter
func New() *Filter {
	return &Filter{}
}

// ByName filters entries by matching pattern against "group.test" names.
// Supports * and ? wildcards (e.g. "strings.*" or "*Compare*"); a pattern
// without wildcards is a substring match.
func (f *Filter) ByName(entries []registry.Entry, pattern string) []registry.Entry {
	if pattern == "" {
		return entries
	}

	var filtered []registry.Entry

	for _, entry := range entries {
		name := entry.GroupName + "." + entry.TestName

		// path.Match handles * and ? wildcards
		matched, err := path.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, entry)
			continue
		}

		// Patterns like "*Compare*" where every non-empty part must appear
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				if !strings.Contains(name, part) {
					allPartsMatch = false
					break
				}
				allPartsMatch = true
			}
			if allPartsMatch {
				filtered = append(filtered, entry)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
