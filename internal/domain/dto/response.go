// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and implement the
// uniform response envelope the CMS plugin expects.
package dto

import "time"

// ErrorDetail carries the error payload of a failed response.
// @Description Error detail with message and timestamp
type ErrorDetail struct {
	Message   string            `json:"message" example:"missing scope"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorDetail

// Envelope is the uniform response wrapper returned by every endpoint.
// @Description Uniform API response envelope
type Envelope struct {
	Success bool `json:"success"`
	// Data contains the success payload; absent on failure.
	Data interface{} `json:"data,omitempty" swaggertype:"object"`
	// Error contains failure detail; absent on success.
	Error *ErrorDetail `json:"error,omitempty"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name Envelope

// NewSuccess wraps a payload in a successful envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewFailure builds a failed envelope with the given message.
func NewFailure(message string) Envelope {
	return Envelope{
		Success: false,
		Error: &ErrorDetail{
			Message:   message,
			Timestamp: time.Now(),
		},
	}
}

// WithDetails attaches machine-readable field-level detail to a failure.
func (e Envelope) WithDetails(details map[string]string) Envelope {
	if e.Error != nil {
		e.Error.Details = details
	}
	return e
}

// WithRequestID adds a request ID to the envelope.
func (e Envelope) WithRequestID(requestID string) Envelope {
	e.RequestID = requestID
	return e
}
