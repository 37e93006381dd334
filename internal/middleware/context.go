package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/reqctx"
	"github.com/gin-gonic/gin"
)

const (
	// APITokenHeader is the primary vendor token header.
	APITokenHeader = "X-Api-Token"
	// AltAPITokenHeader is the alternate vendor token header kept for older
	// plugin versions.
	AltAPITokenHeader = "X-TMS-Token"

	// requestContextKey is the gin context key for the resolved RequestContext.
	requestContextKey = "request_context"
	// resolvedScopeKey holds a scope resolved by an earlier stage, consulted
	// before the process-wide fallback.
	resolvedScopeKey = "resolved_scope"
)

// Fallbacks carries the process-wide development fallbacks. Environment
// access stays out of the resolver core: config reads the env once and the
// values enter resolution here, as the lowest-precedence sources.
type Fallbacks struct {
	Token     string
	ProjectID string
}

// ResolveContext returns a middleware that derives the RequestContext for
// every API request and aborts with a typed failure when it cannot.
func ResolveContext(fallbacks Fallbacks) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := reqctx.Resolve(credentialSources(c, fallbacks), scopeSources(c, fallbacks))
		if err != nil {
			requestID := GetRequestID(c)

			if errors.Is(err, reqctx.ErrMissingCredential) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewFailure("missing credential").WithRequestID(requestID))
				return
			}

			var vErr *dto.ValidationError
			if errors.As(err, &vErr) {
				c.AbortWithStatusJSON(http.StatusBadRequest,
					dto.NewFailure(vErr.Error()).WithDetails(vErr.Details).WithRequestID(requestID))
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewFailure("context resolution failed").WithRequestID(requestID))
			return
		}

		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// GetRequestContext retrieves the resolved RequestContext from the gin context.
func GetRequestContext(c *gin.Context) (reqctx.RequestContext, bool) {
	if v, exists := c.Get(requestContextKey); exists {
		if rc, ok := v.(reqctx.RequestContext); ok {
			return rc, true
		}
	}
	return reqctx.RequestContext{}, false
}

// credentialSources builds the ordered credential source list:
// bearer authorization → vendor header → alternate vendor header → fallback.
func credentialSources(c *gin.Context, fallbacks Fallbacks) []reqctx.Source {
	return []reqctx.Source{
		{Name: "authorization", Value: bearerToken(c.GetHeader("Authorization"))},
		{Name: strings.ToLower(APITokenHeader), Value: c.GetHeader(APITokenHeader)},
		{Name: strings.ToLower(AltAPITokenHeader), Value: c.GetHeader(AltAPITokenHeader)},
		{Name: "fallback", Value: fallbacks.Token},
	}
}

// scopeSources builds the ordered scope source list:
// path param → body field → query param → previously resolved → fallback.
func scopeSources(c *gin.Context, fallbacks Fallbacks) []reqctx.Source {
	return []reqctx.Source{
		{Name: "path", Value: c.Param("projectId")},
		{Name: "body", Value: bodyProjectID(c)},
		{Name: "query", Value: c.Query("project_id")},
		{Name: "resolved", Value: c.GetString(resolvedScopeKey)},
		{Name: "fallback", Value: fallbacks.ProjectID},
	}
}

// bearerToken extracts the token from a bearer-style Authorization header.
// A header without the scheme prefix is taken verbatim.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(header)
}

// bodyProjectID peeks at a JSON body for a top-level project_id field and
// restores the body for downstream binding. Non-JSON or unreadable bodies
// simply yield no value.
func bodyProjectID(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return ""
	}
	if ct := c.ContentType(); ct != "" && ct != "application/json" {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var probe struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ProjectID
}
