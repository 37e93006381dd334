package http

import (
	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/payload"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// FilesHandler proxies translation file upload and download.
type FilesHandler struct {
	api   *upstream.Client
	audit *middleware.AuditRecorder
}

// NewFilesHandler creates a new FilesHandler.
func NewFilesHandler(api *upstream.Client, audit *middleware.AuditRecorder) *FilesHandler {
	return &FilesHandler{api: api, audit: audit}
}

// Upload handles POST /api/projects/:projectId/files/upload requests.
//
// @Summary      Upload a translation file
// @Description  Uploads file content to the project. Content may arrive as plain text or already base64-encoded; it is classified and normalized to base64 before transmission. Set data_encoded to bypass the classification.
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        request body dto.UploadFileRequest true "File content and metadata"
// @Success      200 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/files/upload [post]
func (h *FilesHandler) Upload(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UploadFileRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	req.Data = normalizeUploadData(req)

	raw, err := h.api.UploadFile(c.Request.Context(), rc.Token, rc.ProjectID, req)
	if err != nil {
		builder.Error(err)
		return
	}

	h.audit.Audit(c, "upload_file", rc.ProjectID, map[string]interface{}{
		"filename": req.Filename,
		"lang_iso": req.LangISO,
	})
	builder.SuccessOK(raw)
}

// normalizeUploadData produces the base64 form the upstream API expects.
// An explicit data_encoded declaration wins over the heuristic.
func normalizeUploadData(req *dto.UploadFileRequest) string {
	if req.DataEncoded != nil {
		if *req.DataEncoded {
			return req.Data
		}
		return payload.Encode(req.Data)
	}
	return payload.Normalize(req.Data)
}

// Download handles POST /api/projects/:projectId/files/download requests.
//
// @Summary      Download translation files
// @Description  Requests a bundle of translation files in the given format. The upstream response carries a bundle URL.
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        request body dto.DownloadFilesRequest true "Bundle format and filters"
// @Success      200 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/files/download [post]
func (h *FilesHandler) Download(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.DownloadFilesRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	raw, err := h.api.DownloadFiles(c.Request.Context(), rc.Token, rc.ProjectID, req)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}
