package site

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const SiteRootMeta = "site-root"

// Page is a parsed host page. Views mount into its elements by id.
type Page struct {
	doc *goquery.Document
}

func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Page{doc: doc}, nil
}

func ParsePageString(s string) (*Page, error) {
	return ParsePage(bytes.NewBufferString(s))
}

// SiteRoot reads the site root from <meta name="site-root"> or, failing
// that, from a data-site-root attribute on <html>.
func (p *Page) SiteRoot() string {
	if content, ok := p.doc.Find(`meta[name="` + SiteRootMeta + `"]`).First().Attr("content"); ok {
		return ResolveRoot(content)
	}
	if value, ok := p.doc.Find("html").First().Attr("data-" + SiteRootMeta); ok {
		return ResolveRoot(value)
	}
	return DefaultRoot
}

// Element returns the element with the given id, or nil when the page has
// no such element.
func (p *Page) Element(id string) *goquery.Selection {
	if id == "" {
		return nil
	}
	sel := p.doc.FindMatcher(idMatcher(id)).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

func (p *Page) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, p.doc.Get(0)); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

// idMatcher matches by attribute value so ids need no CSS escaping.
type idMatcher string

func (m idMatcher) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "id" {
			return attr.Val == string(m)
		}
	}
	return false
}

func (m idMatcher) MatchAll(n *html.Node) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if m.Match(node) {
			nodes = append(nodes, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return nodes
}

func (m idMatcher) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}
