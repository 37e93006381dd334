package repository

import (
	"context"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository persists audit entries in MongoDB.
type AuditRepository struct {
	db *MongoDB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts one audit entry.
func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := r.db.Audit.InsertOne(ctx, entry)
	return err
}

// AuditQuery filters audit entry lookups.
type AuditQuery struct {
	RequestID string
	Action    string
	ProjectID string
	Since     *time.Time
	Limit     int64
}

// Find returns audit entries matching the query, newest first.
func (r *AuditRepository) Find(ctx context.Context, q AuditQuery) ([]*model.AuditEntry, error) {
	filter := bson.M{}
	if q.RequestID != "" {
		filter["request_id"] = q.RequestID
	}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.ProjectID != "" {
		filter["project_id"] = q.ProjectID
	}
	if q.Since != nil {
		filter["timestamp"] = bson.M{"$gte": *q.Since}
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.db.Audit.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entries []*model.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
