package http

import (
	"net/url"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// KeysHandler proxies translation key listing and creation.
type KeysHandler struct {
	api   *upstream.Client
	audit *middleware.AuditRecorder
}

// NewKeysHandler creates a new KeysHandler.
func NewKeysHandler(api *upstream.Client, audit *middleware.AuditRecorder) *KeysHandler {
	return &KeysHandler{api: api, audit: audit}
}

// keyListQueryParams are the upstream query options forwarded verbatim.
var keyListQueryParams = []string{
	"include_translations", "limit", "page", "filter_tags", "filter_platforms",
}

// List handles GET /api/projects/:projectId/keys requests.
//
// @Summary      List translation keys
// @Description  Lists the project's translation keys. Pagination and filter query parameters are forwarded upstream.
// @Tags         Keys
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        limit query int false "Page size"
// @Param        page query int false "Page number"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/keys [get]
func (h *KeysHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	query := url.Values{}
	for _, param := range keyListQueryParams {
		if v := c.Query(param); v != "" {
			query.Set(param, v)
		}
	}

	raw, err := h.api.ListKeysRaw(c.Request.Context(), rc.Token, rc.ProjectID, query)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Create handles POST /api/projects/:projectId/keys requests.
//
// @Summary      Create translation keys
// @Description  Creates one or more translation keys in the target project. The write is attempted exactly once.
// @Tags         Keys
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        request body dto.CreateKeysRequest true "Keys to create"
// @Success      201 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/keys [post]
func (h *KeysHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateKeysRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	raw, err := h.api.CreateKeys(c.Request.Context(), rc.Token, rc.ProjectID, req)
	if err != nil {
		builder.Error(err)
		return
	}

	h.audit.Audit(c, "create_keys", rc.ProjectID, map[string]interface{}{
		"key_count": len(req.Keys),
	})
	builder.SuccessCreated(raw)
}
