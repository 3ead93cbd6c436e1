package view

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/render"
)

// FeaturedView renders a small, non-interactive teaser of projects.
type FeaturedView struct {
	anchors  FeaturedAnchors
	renderer *render.CardRenderer
	limit    int
	shown    []project.Project
}

func NewFeaturedView(anchors FeaturedAnchors, renderer *render.CardRenderer, limit int) *FeaturedView {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return &FeaturedView{
		anchors:  anchors,
		renderer: renderer,
		limit:    limit,
	}
}

// Mount loads the projects and renders the featured subset. Load failures
// leave the target untouched and are not reported.
func (v *FeaturedView) Mount(ctx context.Context, loader ProjectLoader) {
	if v.anchors.Root == nil {
		slog.Debug("Featured view target not found, skipping mount")
		return
	}

	projects, err := loader.Load(ctx)
	if err != nil {
		slog.Debug("Featured projects not loaded", "error", err)
		return
	}

	v.shown = SelectFeatured(projects, v.limit)

	v.anchors.Root.Empty()
	for _, p := range v.shown {
		v.anchors.Root.AppendNodes(v.renderer.Render(p))
	}
}

func (v *FeaturedView) Shown() []project.Project {
	return v.shown
}

// SelectFeatured returns up to limit projects flagged as featured, or the
// first limit projects in load order when none is.
func SelectFeatured(projects []project.Project, limit int) []project.Project {
	if limit <= 0 {
		return []project.Project{}
	}

	featured := make([]project.Project, 0, limit)
	for _, p := range projects {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			return featured
		}
	}

	if len(featured) > 0 {
		return featured
	}

	return append(featured, projects[:min(limit, len(projects))]...)
}
