package project

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lysyi3m/folio/app/site"
)

const DataFile = "projects.json"

// LoadError is the only error kind produced by Loader: the projects document
// could not be fetched or parsed.
type LoadError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *LoadError) Error() string {
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type LoaderOptions struct {
	// BaseURL is the URL of the page the site root is relative to.
	BaseURL   string
	SiteRoot  string
	UserAgent string
}

type Loader struct {
	httpClient *http.Client
	dataURL    string
	userAgent  string
}

func NewLoader(httpClient *http.Client, opts LoaderOptions) (*Loader, error) {
	dataURL, err := resolveDataURL(opts.BaseURL, opts.SiteRoot)
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Loader{
		httpClient: httpClient,
		dataURL:    dataURL,
		userAgent:  opts.UserAgent,
	}, nil
}

func (l *Loader) DataURL() string {
	return l.dataURL
}

// Load fetches the projects document and returns its valid records in
// document order. Every call performs a fresh request.
func (l *Loader) Load(ctx context.Context) ([]Project, error) {
	data, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, &LoadError{
			URL:     l.dataURL,
			Message: fmt.Sprintf("failed to parse projects: %v", err),
			Err:     err,
		}
	}

	elements, ok := document.([]any)
	if !ok {
		slog.Debug("Projects document is not an array", "url", l.dataURL)
		return []Project{}, nil
	}

	projects := make([]Project, 0, len(elements))
	for _, element := range elements {
		p := Normalize(element)
		if !p.IsValid() {
			continue
		}
		projects = append(projects, p)
	}

	slog.Debug("Projects loaded",
		"url", l.dataURL,
		"total", len(elements),
		"valid", len(projects))

	return projects, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.dataURL, nil)
	if err != nil {
		return nil, &LoadError{
			URL:     l.dataURL,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Err:     err,
		}
	}

	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &LoadError{
			URL:     l.dataURL,
			Message: fmt.Sprintf("failed to load projects: %v", err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{
			URL:        l.dataURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to load projects: HTTP %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{
			URL:        l.dataURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read projects: %v", err),
			Err:        err,
		}
	}

	return data, nil
}

func resolveDataURL(baseURL, siteRoot string) (string, error) {
	ref, err := url.Parse(site.ResolveRoot(siteRoot) + DataFile)
	if err != nil {
		return "", fmt.Errorf("invalid site root %q: %w", siteRoot, err)
	}

	if baseURL == "" {
		return ref.String(), nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return base.ResolveReference(ref).String(), nil
}
