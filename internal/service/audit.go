package service

import (
	"context"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/model"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
}

// AuditService records write operations proxied to the upstream API.
type AuditService interface {
	Record(ctx context.Context, entry *model.AuditEntry) error
}

type auditService struct {
	repo AuditRepository
}

// NewAuditService creates an AuditService backed by the given repository.
func NewAuditService(repo AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Record implements AuditService.
func (s *auditService) Record(ctx context.Context, entry *model.AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return s.repo.Create(ctx, entry)
}
