// Package merge combines section sequences parsed from multiple pattern
// files into one sequence for publishing.
package merge

import "github.com/swistaczek/ruby-snippets/core"

// Sections merges sources by section name, in first-appearance order.
// A name seen in more than one source has its pattern lists concatenated
// in source order. Patterns are never deduplicated: the same title
// documented by two source repos stays documented twice. Inputs are not
// mutated.
func Sections(sources ...[]core.Section) []core.Section {
	var merged []core.Section
	byName := make(map[string]int)

	for _, sections := range sources {
		for _, sec := range sections {
			idx, ok := byName[sec.Name]
			if !ok {
				idx = len(merged)
				byName[sec.Name] = idx
				merged = append(merged, core.Section{ID: sec.ID, Name: sec.Name})
			}
			dst := &merged[idx]
			if dst.ID == "" {
				dst.ID = sec.ID
			}
			dst.Patterns = append(dst.Patterns, sec.Patterns...)
		}
	}

	return merged
}
