package http

import (
	"github.com/castlemill/tms-proxy/internal/service"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// ProjectsHandler serves project listing, detail assembly, and languages.
type ProjectsHandler struct {
	api      *upstream.Client
	projects service.ProjectService
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(api *upstream.Client, projects service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{api: api, projects: projects}
}

// List handles GET /api/projects requests.
//
// @Summary      List projects
// @Description  Lists the projects visible to the resolved credential, passed through from the upstream API.
// @Tags         Projects
// @Produce      json
// @Param        Authorization header string false "Bearer token"
// @Success      200 {object} dto.Envelope
// @Failure      401 {object} dto.Envelope "Missing credential"
// @Failure      502 {object} dto.Envelope "Upstream failure"
// @Router       /api/projects [get]
func (h *ProjectsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.ListProjects(c.Request.Context(), rc.Token)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Detail handles GET /api/projects/:projectId requests.
//
// @Summary      Project detail
// @Description  Fetches project metadata and languages concurrently and merges them into a single flat record.
// @Tags         Projects
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Success      200 {object} dto.Envelope
// @Failure      401 {object} dto.Envelope "Missing credential"
// @Failure      404 {object} dto.Envelope "Project not found upstream"
// @Router       /api/projects/{projectId} [get]
func (h *ProjectsHandler) Detail(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	detail, err := h.projects.Detail(c.Request.Context(), rc)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(detail)
}

// Languages handles GET /api/projects/:projectId/languages requests.
//
// @Summary      List project languages
// @Tags         Projects
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/languages [get]
func (h *ProjectsHandler) Languages(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.ListLanguagesRaw(c.Request.Context(), rc.Token, rc.ProjectID)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}
