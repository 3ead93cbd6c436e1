package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/render"
)

// Form field names the list controls submit under.
const (
	QueryParam    = "q"
	CategoryParam = "category"
	TagParam      = "tag"
	ClearParam    = "clear"
)

// ListView is the interactive, filterable project list of one page view.
type ListView struct {
	anchors  ListAnchors
	renderer *render.CardRenderer
	filterer *project.Filterer
	locale   language.Tag

	projects   []project.Project
	categories []string
	tags       []string
	filter     project.Filter
	loaded     bool
}

func NewListView(anchors ListAnchors, renderer *render.CardRenderer, locale language.Tag) *ListView {
	return &ListView{
		anchors:  anchors,
		renderer: renderer,
		filterer: project.NewFilterer(),
		locale:   locale,
		filter:   project.DefaultFilter(),
	}
}

// Mount loads the projects and performs the initial render. On failure the
// list region shows a notice with the error message and the error is
// returned. Without a render target Mount does nothing.
func (v *ListView) Mount(ctx context.Context, loader ProjectLoader) error {
	if v.anchors.Root == nil {
		slog.Debug("List view target not found, skipping mount")
		return nil
	}

	projects, err := loader.Load(ctx)
	if err != nil {
		v.anchors.Root.Empty()
		v.anchors.Root.AppendNodes(render.Notice(err.Error()))
		return fmt.Errorf("failed to mount list view: %w", err)
	}

	v.projects = project.Sort(projects, v.locale)
	v.categories, v.tags = project.Facets(v.projects, v.locale)
	v.loaded = true

	v.wireControls()
	v.populateCategories()
	v.populateTags()
	v.Render()

	return nil
}

func (v *ListView) Search(query string) {
	v.filter.Query = query
	v.Render()
}

func (v *ListView) SelectCategory(category string) {
	v.filter.Category = orAll(category)
	v.Render()
}

func (v *ListView) SelectTag(tag string) {
	v.filter.Tag = orAll(tag)
	v.Render()
}

func (v *ListView) Clear() {
	v.filter = project.DefaultFilter()
	v.Render()
}

// Apply replaces the whole filter state at once.
func (v *ListView) Apply(filter project.Filter) {
	v.filter = project.Filter{
		Query:    filter.Query,
		Category: orAll(filter.Category),
		Tag:      orAll(filter.Tag),
	}
	v.Render()
}

// Render replaces the rendered cards with the visible subset and syncs the
// controls and the counter with the current state.
func (v *ListView) Render() {
	if !v.loaded {
		return
	}

	visible := v.Visible()

	v.anchors.Root.Empty()
	for _, p := range visible {
		v.anchors.Root.AppendNodes(v.renderer.Render(p))
	}

	if v.anchors.Count != nil {
		v.anchors.Count.SetText(fmt.Sprintf("%d / %d", len(visible), len(v.projects)))
	}

	v.syncControls()
}

func (v *ListView) Visible() []project.Project {
	return v.filterer.Run(v.projects, v.filter)
}

func (v *ListView) State() project.Filter {
	return v.filter
}

func (v *ListView) Total() int {
	return len(v.projects)
}

func (v *ListView) Categories() []string {
	return v.categories
}

func (v *ListView) Tags() []string {
	return v.tags
}

func (v *ListView) wireControls() {
	setDefaultAttr(v.anchors.Search, "name", QueryParam)
	setDefaultAttr(v.anchors.Category, "name", CategoryParam)
	if v.anchors.Clear != nil {
		setDefaultAttr(v.anchors.Clear, "name", ClearParam)
		setDefaultAttr(v.anchors.Clear, "value", "1")
	}
}

func (v *ListView) populateCategories() {
	if v.anchors.Category == nil {
		return
	}

	v.anchors.Category.Empty()
	for _, category := range append([]string{project.AllOption}, v.categories...) {
		v.anchors.Category.AppendNodes(render.TextElement(atom.Option, category, "value", category))
	}
}

func (v *ListView) populateTags() {
	if v.anchors.Tags == nil {
		return
	}

	v.anchors.Tags.Empty()
	for _, tag := range append([]string{project.AllOption}, v.tags...) {
		v.anchors.Tags.AppendNodes(render.TextElement(atom.Button, tag,
			"type", "submit",
			"name", TagParam,
			"value", tag,
			"class", "tag-btn",
			"data-tag", tag,
		))
	}
}

func (v *ListView) syncControls() {
	if v.anchors.Search != nil {
		v.anchors.Search.SetAttr("value", v.filter.Query)
	}

	if v.anchors.Category != nil {
		v.anchors.Category.Find("option").Each(func(_ int, option *goquery.Selection) {
			if value, _ := option.Attr("value"); value == v.filter.Category {
				option.SetAttr("selected", "selected")
			} else {
				option.RemoveAttr("selected")
			}
		})
	}

	if v.anchors.Tags != nil {
		v.anchors.Tags.Find("button[data-tag]").Each(func(_ int, button *goquery.Selection) {
			if tag, _ := button.Attr("data-tag"); tag == v.filter.Tag {
				button.AddClass("is-active")
				button.SetAttr("aria-pressed", "true")
			} else {
				button.RemoveClass("is-active")
				button.SetAttr("aria-pressed", "false")
			}
		})
	}
}

func setDefaultAttr(sel *goquery.Selection, key, val string) {
	if sel == nil {
		return
	}
	if _, ok := sel.Attr(key); !ok {
		sel.SetAttr(key, val)
	}
}

func orAll(value string) string {
	if value == "" {
		return project.AllOption
	}
	return value
}
