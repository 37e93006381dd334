// Package http provides the Gin HTTP layer of the translation proxy.
package http

import (
	"errors"
	"net/http"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/reqctx"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// ResponseBuilder writes envelope responses for the given request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful envelope with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.NewSuccess(data).WithRequestID(middleware.GetRequestID(b.c)))
}

// SuccessOK sends a 200 OK envelope with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created envelope with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Fail sends a failed envelope with the given status and message. The
// underlying error, when present, is attached to the context for the error
// handler middleware to log.
func (b *ResponseBuilder) Fail(statusCode int, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode,
		dto.NewFailure(message).WithRequestID(middleware.GetRequestID(b.c)))
}

// Error maps a domain error onto the wire:
//
//   - missing credential          -> 401
//   - *dto.ValidationError        -> 400 with field details
//   - *upstream.APIError          -> the upstream status, passed through
//   - anything else               -> 500, message hidden unless debug logging
func (b *ResponseBuilder) Error(err error) {
	requestID := middleware.GetRequestID(b.c)

	if errors.Is(err, reqctx.ErrMissingCredential) {
		b.c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewFailure("missing credential").WithRequestID(requestID))
		return
	}

	var vErr *dto.ValidationError
	if errors.As(err, &vErr) {
		b.c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewFailure(vErr.Error()).WithDetails(vErr.Details).WithRequestID(requestID))
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		_ = b.c.Error(err)
		b.c.AbortWithStatusJSON(apiErr.StatusCode,
			dto.NewFailure(apiErr.Message).WithRequestID(requestID))
		return
	}

	_ = b.c.Error(err)
	message := "internal server error"
	if logger.DebugEnabled() {
		message = err.Error()
	}
	b.c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewFailure(message).WithRequestID(requestID))
}

// Validator is implemented by request DTOs that validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into T and runs its validation.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &dto.ValidationError{Field: "body", Message: "invalid request body"}
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// requestContext pulls the resolved request context or fails the request.
// Returns false when resolution middleware did not run; handlers must return
// immediately in that case.
func requestContext(c *gin.Context, b *ResponseBuilder) (reqctx.RequestContext, bool) {
	rc, ok := middleware.GetRequestContext(c)
	if !ok {
		b.Fail(http.StatusInternalServerError, "request context not resolved", nil)
		return reqctx.RequestContext{}, false
	}
	return rc, true
}
