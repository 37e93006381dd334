package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditEntry records one write operation proxied to the upstream API.
// Read-only traffic is not audited; the trail exists so that key creation,
// translation updates, uploads and task creation can be traced per request.
type AuditEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Action     string                 `bson:"action" json:"action"` // e.g. "create_keys", "update_translation", "upload_file", "create_task"
	ProjectID  string                 `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map, initializing it if needed.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}
