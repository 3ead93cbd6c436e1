package render

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/site"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01"}

type FeedGenerator struct {
	baseURL string
	version string
}

// NewFeedGenerator creates an RSS generator. baseURL is the public URL of the
// site root, without a trailing slash.
func NewFeedGenerator(baseURL, version string) *FeedGenerator {
	return &FeedGenerator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		version: version,
	}
}

func (g *FeedGenerator) Run(title string, projects []project.Project) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", cmp.Or(title, "Projects"), 4)
	g.writeElement(&buf, "link", g.baseURL+"/", 4)
	g.writeElement(&buf, "description", fmt.Sprintf("%d projects", len(projects)), 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(g.baseURL+"/feed.xml")))

	if len(projects) > 0 {
		if published, ok := parseDate(projects[0].Date); ok {
			g.writeElement(&buf, "lastBuildDate", published.Format(time.RFC1123Z), 4)
		}
	}
	g.writeElement(&buf, "generator", fmt.Sprintf("Folio/%s", g.version), 4)

	for _, p := range projects {
		g.writeItem(&buf, p)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *FeedGenerator) writeItem(buf *bytes.Buffer, p project.Project) {
	link := p.Link
	if !site.IsExternalURL(link) {
		link = site.ProjectRoute(g.baseURL+"/", p.Slug)
	}

	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(p.Slug))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", p.Title, 6)
	g.writeElement(buf, "link", link, 6)
	g.writeElement(buf, "description", p.Description, 6)

	if published, ok := parseDate(p.Date); ok {
		g.writeElement(buf, "pubDate", published.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "category", p.Category, 6)
	for _, tag := range p.Tags {
		g.writeElement(buf, "category", tag, 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *FeedGenerator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
