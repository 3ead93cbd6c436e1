package view

import (
	"context"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/render"
	"github.com/lysyi3m/folio/app/site"
)

type ProjectLoader interface {
	Load(ctx context.Context) ([]project.Project, error)
}

var _ ProjectLoader = (*project.Loader)(nil)

// Portfolio is the surface a host page drives: load the projects, mount the
// list view and mount the featured view. Instances share no state, and each
// mount performs its own load.
type Portfolio struct {
	loader   ProjectLoader
	opts     *Options
	siteRoot string
}

func NewPortfolio(loader ProjectLoader, siteRoot string, opts *Options) *Portfolio {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Portfolio{
		loader:   loader,
		opts:     opts,
		siteRoot: site.ResolveRoot(siteRoot),
	}
}

func (p *Portfolio) Load(ctx context.Context) ([]project.Project, error) {
	return p.loader.Load(ctx)
}

// MountList mounts the interactive list into the element with targetID
// (the configured list target when empty). The returned view is usable even
// when the load failed and the error is returned alongside it.
func (p *Portfolio) MountList(ctx context.Context, page *site.Page, targetID string) (*ListView, error) {
	if targetID == "" {
		targetID = p.opts.List.Target
	}

	view := NewListView(ResolveListAnchors(page, targetID), p.renderer(), p.opts.Language())
	err := view.Mount(ctx, p.loader)
	return view, err
}

// MountFeatured mounts the featured teaser into the element with targetID.
// Zero values select the configured target and limit.
func (p *Portfolio) MountFeatured(ctx context.Context, page *site.Page, targetID string, limit int) *FeaturedView {
	if targetID == "" {
		targetID = p.opts.Featured.Target
	}
	if limit <= 0 {
		limit = p.opts.Featured.Limit
	}

	view := NewFeaturedView(ResolveFeaturedAnchors(page, targetID), p.renderer(), limit)
	view.Mount(ctx, p.loader)
	return view
}

func (p *Portfolio) renderer() *render.CardRenderer {
	return render.NewCardRenderer(p.siteRoot, p.opts.Placeholder)
}
