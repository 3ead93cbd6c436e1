package project

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter is the interactive selection of a list view. Empty Category or Tag
// behave like AllOption.
type Filter struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

func DefaultFilter() Filter {
	return Filter{Category: AllOption, Tag: AllOption}
}

func (f Filter) Matches(p Project) bool {
	return f.matchesCategory(p) && f.matchesTag(p) && f.matchesQuery(p)
}

func (f Filter) matchesCategory(p Project) bool {
	return isAll(f.Category) || p.Category == f.Category
}

func (f Filter) matchesTag(p Project) bool {
	return isAll(f.Tag) || p.HasTag(f.Tag)
}

func (f Filter) matchesQuery(p Project) bool {
	query := strings.TrimSpace(f.Query)
	if query == "" {
		return true
	}

	fold := cases.Fold()
	return strings.Contains(fold.String(searchText(p)), fold.String(query))
}

func isAll(value string) bool {
	return value == "" || value == AllOption
}

func searchText(p Project) string {
	parts := make([]string, 0, 3+len(p.Tags))
	parts = append(parts, p.Title, p.Description, p.Category)
	parts = append(parts, p.Tags...)
	return strings.Join(parts, " ")
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the projects matching filter, preserving their order.
func (f *Filterer) Run(projects []Project, filter Filter) []Project {
	visible := make([]Project, 0, len(projects))
	for _, p := range projects {
		if filter.Matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}
