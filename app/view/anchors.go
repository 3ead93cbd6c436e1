package view

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/folio/app/site"
)

// Element ids the list view binds to, besides its render target.
const (
	SearchInputID    = "searchInput"
	CategorySelectID = "categorySelect"
	TagsWrapID       = "tagsWrap"
	ClearButtonID    = "clearBtn"
	CountID          = "countEl"
)

// ListAnchors is resolved once per mount. A nil field disables the piece of
// interactivity it stands for.
type ListAnchors struct {
	Root     *goquery.Selection
	Search   *goquery.Selection
	Category *goquery.Selection
	Tags     *goquery.Selection
	Clear    *goquery.Selection
	Count    *goquery.Selection
}

func ResolveListAnchors(page *site.Page, rootID string) ListAnchors {
	return ListAnchors{
		Root:     page.Element(rootID),
		Search:   page.Element(SearchInputID),
		Category: page.Element(CategorySelectID),
		Tags:     page.Element(TagsWrapID),
		Clear:    page.Element(ClearButtonID),
		Count:    page.Element(CountID),
	}
}

type FeaturedAnchors struct {
	Root *goquery.Selection
}

func ResolveFeaturedAnchors(page *site.Page, rootID string) FeaturedAnchors {
	return FeaturedAnchors{Root: page.Element(rootID)}
}
