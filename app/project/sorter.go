package project

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a copy of projects ordered by date descending, with undated
// projects last and titles ascending among equal dates. Dates compare
// byte-wise, so they must be in a sortable form such as ISO 8601.
func Sort(projects []Project, locale language.Tag) []Project {
	sorted := slices.Clone(projects)
	collator := collate.New(locale)

	slices.SortStableFunc(sorted, func(a, b Project) int {
		switch {
		case a.Date != "" && b.Date == "":
			return -1
		case a.Date == "" && b.Date != "":
			return 1
		}

		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}

		return collator.CompareString(a.Title, b.Title)
	})

	return sorted
}

// Facets returns the distinct categories and tags of projects, each sorted
// ascending for the locale. De-duplication is case-sensitive.
func Facets(projects []Project, locale language.Tag) ([]string, []string) {
	categories := make([]string, 0)
	tags := make([]string, 0)
	seenCategories := make(map[string]struct{})
	seenTags := make(map[string]struct{})

	for _, p := range projects {
		if _, ok := seenCategories[p.Category]; !ok {
			seenCategories[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
		for _, tag := range p.Tags {
			if _, ok := seenTags[tag]; !ok {
				seenTags[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}

	collator := collate.New(locale)
	collator.SortStrings(categories)
	collator.SortStrings(tags)

	return categories, tags
}
