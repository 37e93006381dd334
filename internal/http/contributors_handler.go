package http

import (
	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// ContributorsHandler proxies contributor listing and creation.
type ContributorsHandler struct {
	api   *upstream.Client
	audit *middleware.AuditRecorder
}

// NewContributorsHandler creates a new ContributorsHandler.
func NewContributorsHandler(api *upstream.Client, audit *middleware.AuditRecorder) *ContributorsHandler {
	return &ContributorsHandler{api: api, audit: audit}
}

// List handles GET /api/projects/:projectId/contributors requests.
//
// @Summary      List contributors
// @Tags         Contributors
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/contributors [get]
func (h *ContributorsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.ListContributors(c.Request.Context(), rc.Token, rc.ProjectID)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Get handles GET /api/projects/:projectId/contributors/:contributorId requests.
//
// @Summary      Get one contributor
// @Tags         Contributors
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        contributorId path string true "Contributor identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/contributors/{contributorId} [get]
func (h *ContributorsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.GetContributor(c.Request.Context(), rc.Token, rc.ProjectID, c.Param("contributorId"))
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Create handles POST /api/projects/:projectId/contributors requests.
//
// @Summary      Add contributors
// @Description  Adds contributors to the target project. The write is attempted exactly once.
// @Tags         Contributors
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        request body dto.CreateContributorsRequest true "Contributors to add"
// @Success      201 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/contributors [post]
func (h *ContributorsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateContributorsRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	raw, err := h.api.CreateContributors(c.Request.Context(), rc.Token, rc.ProjectID, req)
	if err != nil {
		builder.Error(err)
		return
	}

	h.audit.Audit(c, "create_contributors", rc.ProjectID, map[string]interface{}{
		"contributor_count": len(req.Contributors),
	})
	builder.SuccessCreated(raw)
}
