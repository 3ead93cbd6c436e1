package project

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestLoader(t *testing.T, server *httptest.Server, siteRoot string) *Loader {
	t.Helper()
	loader, err := NewLoader(server.Client(), LoaderOptions{
		BaseURL:   server.URL + "/work/index.html",
		SiteRoot:  siteRoot,
		UserAgent: "Folio-Test/1.0",
	})
	if err != nil {
		t.Fatalf("Expected no error creating loader, got: %v", err)
	}
	return loader
}

func TestLoaderLoad(t *testing.T) {
	var gotPath, gotCache, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCache = r.Header.Get("Cache-Control")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title": "A", "slug": "a", "date": "2024-01-01"},
			{"title": "", "slug": "no-title"},
			{"title": "No slug"},
			{"title": "  ", "slug": "  "},
			"garbage",
			{"title": "B", "slug": "b", "date": "2024-02-01"}
		]`))
	}))
	defer server.Close()

	loader := newTestLoader(t, server, "../")
	projects, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if gotPath != "/projects.json" {
		t.Errorf("Expected request to '/projects.json', got '%s'", gotPath)
	}
	if gotCache != "no-cache" {
		t.Errorf("Expected Cache-Control 'no-cache', got '%s'", gotCache)
	}
	if gotAgent != "Folio-Test/1.0" {
		t.Errorf("Expected user agent 'Folio-Test/1.0', got '%s'", gotAgent)
	}

	if len(projects) != 2 {
		t.Fatalf("Expected 2 valid projects, got %d", len(projects))
	}
	// Source order is kept; sorting happens in the views
	if projects[0].Slug != "a" || projects[1].Slug != "b" {
		t.Errorf("Expected source order [a b], got [%s %s]", projects[0].Slug, projects[1].Slug)
	}
}

func TestLoaderDataURL(t *testing.T) {
	tests := []struct {
		base     string
		root     string
		expected string
	}{
		{"https://example.com/", "", "https://example.com/projects.json"},
		{"https://example.com/work/", "./", "https://example.com/work/projects.json"},
		{"https://example.com/work/alpha/", "../../", "https://example.com/projects.json"},
		{"", "../", "../projects.json"},
	}

	for _, tt := range tests {
		loader, err := NewLoader(nil, LoaderOptions{BaseURL: tt.base, SiteRoot: tt.root})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if loader.DataURL() != tt.expected {
			t.Errorf("base %q root %q: expected '%s', got '%s'", tt.base, tt.root, tt.expected, loader.DataURL())
		}
	}
}

func TestLoaderFreshFetchPerCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"title": "A", "slug": "a"}]`))
	}))
	defer server.Close()

	loader := newTestLoader(t, server, "./")
	first, _ := loader.Load(context.Background())
	second, _ := loader.Load(context.Background())

	if calls != 2 {
		t.Errorf("Expected 2 requests, got %d", calls)
	}
	first[0].Title = "changed"
	if second[0].Title != "A" {
		t.Error("Expected each load to return independent records")
	}
}

func TestLoaderHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := newTestLoader(t, server, "./").Load(context.Background())
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
	if loadErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", loadErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected message to mention the status, got '%s'", err.Error())
	}
}

func TestLoaderInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title": "A",`))
	}))
	defer server.Close()

	_, err := newTestLoader(t, server, "./").Load(context.Background())

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T (%v)", err, err)
	}
	if errors.Unwrap(err) == nil {
		t.Error("Expected parse error to be wrapped")
	}
}

func TestLoaderNonArrayDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects": [{"title": "A", "slug": "a"}]}`))
	}))
	defer server.Close()

	projects, err := newTestLoader(t, server, "./").Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected empty list, got %d projects", len(projects))
	}
}

func TestLoaderNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	loader := newTestLoader(t, server, "./")
	server.Close()

	_, err := loader.Load(context.Background())

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T (%v)", err, err)
	}
}
