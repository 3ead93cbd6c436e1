package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/site"
)

const (
	DefaultPlaceholder = "assets/placeholder.svg"
	MaxVisibleTags     = 6

	imageFallbackScript = "this.onerror=null;this.src=this.dataset.fallback;"
)

type CardRenderer struct {
	root        string
	placeholder string
}

func NewCardRenderer(root, placeholder string) *CardRenderer {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &CardRenderer{
		root:        site.ResolveRoot(root),
		placeholder: placeholder,
	}
}

// Target returns where a card navigates to: the project's own http(s) link
// when it has one, the internal project route otherwise.
func (r *CardRenderer) Target(p project.Project) (string, bool) {
	if site.IsExternalURL(p.Link) {
		return p.Link, true
	}
	return site.ProjectRoute(r.root, p.Slug), false
}

func (r *CardRenderer) Thumbnail(p project.Project) string {
	return site.ResolveAsset(r.root, p.Thumbnail, r.placeholder)
}

func (r *CardRenderer) Placeholder() string {
	return site.ResolveAsset(r.root, r.placeholder, "")
}

// Render builds the card fragment of one project.
func (r *CardRenderer) Render(p project.Project) *html.Node {
	card := Element(atom.Article, "class", "project-card", "data-slug", p.Slug)

	href, external := r.Target(p)
	link := Element(atom.A, "class", "project-card__link", "href", href)
	if external {
		setAttr(link, "target", "_blank")
		setAttr(link, "rel", "noopener noreferrer")
		setAttr(link, "referrerpolicy", "no-referrer")
	}
	card.AppendChild(link)

	link.AppendChild(Element(atom.Img,
		"class", "project-card__thumb",
		"src", r.Thumbnail(p),
		"alt", p.Title,
		"loading", "lazy",
		"data-fallback", r.Placeholder(),
		"onerror", imageFallbackScript,
	))

	body := Element(atom.Div, "class", "project-card__body")
	link.AppendChild(body)

	body.AppendChild(TextElement(atom.H3, p.Title, "class", "project-card__title"))
	body.AppendChild(TextElement(atom.Span, p.Category, "class", "project-card__category"))

	if len(p.Tags) > 0 {
		tags := Element(atom.Ul, "class", "project-card__tags")
		for i, tag := range p.Tags {
			if i == MaxVisibleTags {
				break
			}
			tags.AppendChild(TextElement(atom.Li, tag, "class", "tag"))
		}
		body.AppendChild(tags)
	}

	body.AppendChild(TextElement(atom.P, p.Description, "class", "project-card__desc"))

	return card
}

// Notice builds the inline message shown when projects cannot be loaded.
func Notice(message string) *html.Node {
	notice := Element(atom.Div, "class", "notice notice--error", "role", "alert")
	notice.AppendChild(TextElement(atom.P, message))
	return notice
}
