package api

import (
	"net/http"

	"github.com/lysyi3m/folio/app/project"
	"github.com/lysyi3m/folio/app/render"
	"github.com/lysyi3m/folio/app/view"
)

type GeneratorInterface interface {
	Run(title string, projects []project.Project) (string, error)
}

var _ GeneratorInterface = (*render.FeedGenerator)(nil)

type Handler struct {
	siteDir    string
	dataOrigin string
	userAgent  string
	version    string
	httpClient *http.Client
	options    *view.OptionsStore
	generator  GeneratorInterface
}

type ProjectsResponse struct {
	Projects   []project.Project `json:"projects"`
	Visible    int               `json:"visible"`
	Total      int               `json:"total"`
	Categories []string          `json:"categories"`
	Tags       []string          `json:"tags"`
	Filter     project.Filter    `json:"filter"`
}
