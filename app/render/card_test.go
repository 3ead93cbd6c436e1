package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/lysyi3m/folio/app/project"
)

func renderFragment(t *testing.T, n *html.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		t.Fatalf("Expected fragment to render, got: %v", err)
	}
	return sb.String()
}

func renderCard(t *testing.T, r *CardRenderer, p project.Project) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderFragment(t, r.Render(p))))
	if err != nil {
		t.Fatalf("Expected card to parse, got: %v", err)
	}
	return doc.Find("article.project-card")
}

func TestRenderInternalCard(t *testing.T) {
	r := NewCardRenderer("../", "")
	card := renderCard(t, r, project.Project{
		Title:       "Bird <Watch>",
		Slug:        "bird watch",
		Description: "Tracks birds",
		Thumbnail:   "/assets/bird.png",
		Category:    "Science",
		Tags:        []string{"go", "maps"},
	})

	link := card.Find("a.project-card__link")
	if href, _ := link.Attr("href"); href != "../bird%20watch/" {
		t.Errorf("Expected internal route '../bird%%20watch/', got '%s'", href)
	}
	if _, ok := link.Attr("target"); ok {
		t.Error("Internal links should not open a new browsing context")
	}

	img := card.Find("img.project-card__thumb")
	if src, _ := img.Attr("src"); src != "../assets/bird.png" {
		t.Errorf("Expected thumbnail '../assets/bird.png', got '%s'", src)
	}
	if fallback, _ := img.Attr("data-fallback"); fallback != "../"+DefaultPlaceholder {
		t.Errorf("Expected fallback '../%s', got '%s'", DefaultPlaceholder, fallback)
	}
	if onerror, _ := img.Attr("onerror"); onerror == "" {
		t.Error("Expected image load failure handler")
	}

	if title := card.Find(".project-card__title").Text(); title != "Bird <Watch>" {
		t.Errorf("Expected escaped title round-trip, got '%s'", title)
	}
	if category := card.Find(".project-card__category").Text(); category != "Science" {
		t.Errorf("Expected category 'Science', got '%s'", category)
	}
	if desc := card.Find(".project-card__desc").Text(); desc != "Tracks birds" {
		t.Errorf("Expected description 'Tracks birds', got '%s'", desc)
	}
	if n := card.Find("li.tag").Length(); n != 2 {
		t.Errorf("Expected 2 tags, got %d", n)
	}
}

func TestRenderExternalCard(t *testing.T) {
	r := NewCardRenderer("./", "")
	card := renderCard(t, r, project.Project{
		Title: "Ledger",
		Slug:  "ledger",
		Link:  "https://github.com/example/ledger",
	})

	link := card.Find("a.project-card__link")
	if href, _ := link.Attr("href"); href != "https://github.com/example/ledger" {
		t.Errorf("Expected external href, got '%s'", href)
	}
	if target, _ := link.Attr("target"); target != "_blank" {
		t.Errorf("Expected target '_blank', got '%s'", target)
	}
	if rel, _ := link.Attr("rel"); !strings.Contains(rel, "noreferrer") || !strings.Contains(rel, "noopener") {
		t.Errorf("Expected rel 'noopener noreferrer', got '%s'", rel)
	}

	// No thumbnail: the placeholder is used directly
	if src, _ := card.Find("img").Attr("src"); src != "./"+DefaultPlaceholder {
		t.Errorf("Expected placeholder thumbnail, got '%s'", src)
	}
	if card.Find("ul.project-card__tags").Length() != 0 {
		t.Error("Expected no tag list for a project without tags")
	}
}

func TestRenderNonHTTPLinkFallsBackToRoute(t *testing.T) {
	r := NewCardRenderer("./", "")
	href, external := r.Target(project.Project{Slug: "x", Link: "javascript:alert(1)"})
	if external || href != "./x/" {
		t.Errorf("Expected internal route './x/', got '%s' (external=%t)", href, external)
	}
}

func TestRenderTagLimit(t *testing.T) {
	r := NewCardRenderer("./", "")
	card := renderCard(t, r, project.Project{
		Title: "Many",
		Slug:  "many",
		Tags:  []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	})

	if n := card.Find("li.tag").Length(); n != MaxVisibleTags {
		t.Errorf("Expected %d visible tags, got %d", MaxVisibleTags, n)
	}
}

func TestRenderDataURIThumbnail(t *testing.T) {
	r := NewCardRenderer("../", "")
	thumb := "data:image/gif;base64,R0lGODlhAQABAAAAACw="
	if got := r.Thumbnail(project.Project{Thumbnail: thumb}); got != thumb {
		t.Errorf("Expected data URI kept verbatim, got '%s'", got)
	}
}

func TestNotice(t *testing.T) {
	out := renderFragment(t, Notice("failed to load projects: HTTP 404 Not Found"))
	if !strings.Contains(out, `role="alert"`) {
		t.Errorf("Expected alert role, got: %s", out)
	}
	if !strings.Contains(out, "HTTP 404 Not Found") {
		t.Errorf("Expected message in notice, got: %s", out)
	}
}
