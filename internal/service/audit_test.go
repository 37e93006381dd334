package service

import (
	"context"
	"testing"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepository struct {
	entries []*model.AuditEntry
	err     error
}

func (f *fakeAuditRepository) Create(_ context.Context, entry *model.AuditEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &fakeAuditRepository{}
	svc := NewAuditService(repo)

	entry := &model.AuditEntry{Action: "create_keys", ProjectID: "123.abc"}
	require.NoError(t, svc.Record(context.Background(), entry))

	require.Len(t, repo.entries, 1)
	assert.False(t, repo.entries[0].Timestamp.IsZero(), "timestamp defaulted")
}

func TestAuditService_RecordPropagatesError(t *testing.T) {
	svc := NewAuditService(&fakeAuditRepository{err: assert.AnError})
	err := svc.Record(context.Background(), &model.AuditEntry{Action: "upload_file"})
	assert.ErrorIs(t, err, assert.AnError)
}
