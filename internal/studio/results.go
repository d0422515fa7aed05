package studio

import "strings"

// Merge returns a new snapshot where every artifact belonging to the
// incoming batch's category has been replaced by the batch. Regenerating a
// category is therefore idempotent: the snapshot always holds exactly the
// latest batch for it.
func Merge(existing []Artifact, category Category, incoming []Artifact) []Artifact {
	out := make([]Artifact, 0, len(existing)+len(incoming))
	for _, a := range existing {
		if a.Category == category || strings.HasPrefix(a.Variant, string(category)) {
			continue
		}
		out = append(out, a)
	}
	return append(out, incoming...)
}

type CategoryGroup struct {
	Category  Category
	Artifacts []Artifact
}

// GroupForDisplay orders a snapshot into the fixed category layout,
// omitting categories with no artifacts.
func GroupForDisplay(collection []Artifact) []CategoryGroup {
	byCategory := make(map[Category][]Artifact, len(categoryOrder))
	for _, a := range collection {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	out := make([]CategoryGroup, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		if items := byCategory[c]; len(items) > 0 {
			out = append(out, CategoryGroup{Category: c, Artifacts: items})
		}
	}
	return out
}
