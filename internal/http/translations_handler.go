package http

import (
	"net/url"
	"strings"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/service"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// TranslationsHandler proxies translation records and serves the
// locale-indexed aggregation the CMS plugin renders from.
type TranslationsHandler struct {
	api          *upstream.Client
	translations service.TranslationService
	audit        *middleware.AuditRecorder
}

// NewTranslationsHandler creates a new TranslationsHandler.
func NewTranslationsHandler(api *upstream.Client, translations service.TranslationService, audit *middleware.AuditRecorder) *TranslationsHandler {
	return &TranslationsHandler{api: api, translations: translations, audit: audit}
}

// translationListQueryParams are the upstream query options forwarded verbatim.
var translationListQueryParams = []string{
	"limit", "page", "filter_lang_id", "filter_is_reviewed",
}

// List handles GET /api/projects/:projectId/translations requests.
//
// @Summary      List translations
// @Tags         Translations
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/translations [get]
func (h *TranslationsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	query := url.Values{}
	for _, param := range translationListQueryParams {
		if v := c.Query(param); v != "" {
			query.Set(param, v)
		}
	}

	raw, err := h.api.ListTranslations(c.Request.Context(), rc.Token, rc.ProjectID, query)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Aggregate handles GET /api/projects/:projectId/translations/aggregate requests.
//
// @Summary      Aggregate translations by locale
// @Description  Returns one key-to-text mapping per requested locale. Every requested locale is present in the result even when it has no translations; an upstream read failure degrades to empty mappings instead of an error.
// @Tags         Translations
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        locales query string true "Comma-separated locale codes" example(fr,de)
// @Success      200 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "No locales requested"
// @Router       /api/projects/{projectId}/translations/aggregate [get]
func (h *TranslationsHandler) Aggregate(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	locales := splitLocales(c.Query("locales"))
	result, err := h.translations.Aggregate(c.Request.Context(), rc, locales)
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(result)
}

// Get handles GET /api/projects/:projectId/translations/:translationId requests.
//
// @Summary      Get one translation
// @Tags         Translations
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        translationId path string true "Translation identifier"
// @Success      200 {object} dto.Envelope
// @Router       /api/projects/{projectId}/translations/{translationId} [get]
func (h *TranslationsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	raw, err := h.api.GetTranslation(c.Request.Context(), rc.Token, rc.ProjectID, c.Param("translationId"))
	if err != nil {
		builder.Error(err)
		return
	}
	builder.SuccessOK(raw)
}

// Update handles PUT /api/projects/:projectId/translations/:translationId requests.
//
// @Summary      Update one translation
// @Description  Replaces the text of a translation record. The write is attempted exactly once.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project identifier"
// @Param        translationId path string true "Translation identifier"
// @Param        request body dto.UpdateTranslationRequest true "New translation value"
// @Success      200 {object} dto.Envelope
// @Failure      400 {object} dto.Envelope "Invalid request body"
// @Router       /api/projects/{projectId}/translations/{translationId} [put]
func (h *TranslationsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)
	rc, ok := requestContext(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateTranslationRequest](c)
	if err != nil {
		builder.Error(err)
		return
	}

	translationID := c.Param("translationId")
	raw, err := h.api.UpdateTranslation(c.Request.Context(), rc.Token, rc.ProjectID, translationID, req)
	if err != nil {
		builder.Error(err)
		return
	}

	h.audit.Audit(c, "update_translation", rc.ProjectID, map[string]interface{}{
		"translation_id": translationID,
	})
	builder.SuccessOK(raw)
}

// splitLocales parses a comma-separated locale list, dropping empty segments.
func splitLocales(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	locales := make([]string, 0, len(parts))
	for _, p := range parts {
		if locale := strings.TrimSpace(p); locale != "" {
			locales = append(locales, locale)
		}
	}
	return locales
}
