package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/folio/app/cfg"
	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/render"
	"github.com/lysyi3m/folio/app/site"
	"github.com/lysyi3m/folio/app/view"
)

var errDirectoryRedirect = errors.New("directory requested without trailing slash")

func NewHandler(appCfg *cfg.Cfg, httpClient *http.Client, options *view.OptionsStore) *Handler {
	if options == nil {
		options = view.StaticOptions(nil)
	}
	return &Handler{
		siteDir:    appCfg.SiteDir,
		dataOrigin: strings.TrimSuffix(appCfg.DataOrigin, "/"),
		userAgent:  appCfg.UserAgent,
		version:    appCfg.Version,
		httpClient: httpClient,
		options:    options,
		generator:  render.NewFeedGenerator(appCfg.PublicURL(), appCfg.Version),
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	})
}

func (h *Handler) APIListProjects(c *gin.Context) {
	projects, err := h.loadSorted(c, "/")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	filter := filterFromQuery(c)
	if _, ok := c.GetQuery(view.ClearParam); ok {
		filter = project.DefaultFilter()
	}

	visible := project.NewFilterer().Run(projects, filter)
	categories, tags := project.Facets(projects, h.options.Get().Language())

	c.JSON(http.StatusOK, ProjectsResponse{
		Projects:   visible,
		Visible:    len(visible),
		Total:      len(projects),
		Categories: categories,
		Tags:       tags,
		Filter:     filter,
	})
}

func (h *Handler) GetFeed(c *gin.Context) {
	projects, err := h.loadSorted(c, "/")
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}

	rss, err := h.generator.Run("Projects", projects)
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(projects)))

	c.String(http.StatusOK, rss)
}

// ServeSite serves files from the site directory. HTML pages are hydrated:
// the list and featured views are mounted before the page is sent.
func (h *Handler) ServeSite(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	file, err := h.resolveFile(c.Request.URL.Path)
	if errors.Is(err, errDirectoryRedirect) {
		target := *c.Request.URL
		target.Path += "/"
		c.Redirect(http.StatusMovedPermanently, target.String())
		return
	}
	if isNotFound(err) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Site file error", "path", c.Request.URL.Path, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if !strings.EqualFold(filepath.Ext(file), ".html") {
		c.File(file)
		return
	}

	body, err := h.hydratePage(c, file)
	if err != nil {
		slog.Error("Page hydration error", "path", c.Request.URL.Path, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

func (h *Handler) hydratePage(c *gin.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	page, err := site.ParsePage(f)
	if err != nil {
		return "", err
	}

	siteRoot := page.SiteRoot()
	loader, err := h.newLoader(c.Request.URL.Path, siteRoot)
	if err != nil {
		return "", err
	}

	portfolio := view.NewPortfolio(loader, siteRoot, h.options.Get())
	ctx := c.Request.Context()

	list, err := portfolio.MountList(ctx, page, "")
	if err != nil {
		slog.Error("Projects not loaded", "path", c.Request.URL.Path, "url", loader.DataURL(), "error", err)
	} else if _, ok := c.GetQuery(view.ClearParam); ok {
		list.Clear()
	} else {
		list.Apply(filterFromQuery(c))
	}

	portfolio.MountFeatured(ctx, page, "", 0)

	return page.HTML()
}

func (h *Handler) loadSorted(c *gin.Context, pagePath string) ([]project.Project, error) {
	loader, err := h.newLoader(pagePath, site.DefaultRoot)
	if err != nil {
		return nil, err
	}

	projects, err := loader.Load(c.Request.Context())
	if err != nil {
		slog.Error("Projects not loaded", "url", loader.DataURL(), "error", err)
		return nil, err
	}

	return project.Sort(projects, h.options.Get().Language()), nil
}

func (h *Handler) newLoader(pagePath, siteRoot string) (*project.Loader, error) {
	return project.NewLoader(h.httpClient, project.LoaderOptions{
		BaseURL:   h.dataOrigin + pagePath,
		SiteRoot:  siteRoot,
		UserAgent: h.userAgent,
	})
}

// resolveFile maps a request path to a file inside the site directory,
// falling back to index.html for directories.
func (h *Handler) resolveFile(requestPath string) (string, error) {
	clean := path.Clean("/" + requestPath)
	file := filepath.Join(h.siteDir, filepath.FromSlash(clean))

	info, err := os.Stat(file)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		if !strings.HasSuffix(requestPath, "/") {
			return "", errDirectoryRedirect
		}
		file = filepath.Join(file, "index.html")
		info, err = os.Stat(file)
		if err != nil {
			return "", err
		}
	}

	if !info.Mode().IsRegular() {
		return "", fs.ErrNotExist
	}

	return file, nil
}

func filterFromQuery(c *gin.Context) project.Filter {
	return project.Filter{
		Query:    c.Query(view.QueryParam),
		Category: c.DefaultQuery(view.CategoryParam, project.AllOption),
		Tag:      c.DefaultQuery(view.TagParam, project.AllOption),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
