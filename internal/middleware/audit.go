package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/castlemill/tms-proxy/internal/metrics"
	"github.com/castlemill/tms-proxy/internal/service"
	"github.com/gin-gonic/gin"
)

// AuditRecorderConfig holds configuration for the async audit recorder.
type AuditRecorderConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines persisting entries.
	NumWorkers int
	// WriteTimeout bounds a single persistence attempt.
	WriteTimeout time.Duration
}

// DefaultAuditRecorderConfig returns sensible defaults.
func DefaultAuditRecorderConfig() AuditRecorderConfig {
	return AuditRecorderConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AuditRecorder persists audit entries through a bounded worker pool so a
// slow audit store never adds latency to, or fails, the proxied request.
// When the buffer is full entries are dropped and counted.
type AuditRecorder struct {
	auditService service.AuditService
	entryCh      chan *model.AuditEntry
	wg           sync.WaitGroup
	stopOnce     sync.Once
	stopCh       chan struct{}
	writeTimeout time.Duration
}

// NewAuditRecorder creates a recorder backed by the given service. A nil
// service yields a nil recorder, which is safe to use and records nothing.
func NewAuditRecorder(auditService service.AuditService, cfg AuditRecorderConfig) *AuditRecorder {
	if auditService == nil {
		return nil
	}

	ar := &AuditRecorder{
		auditService: auditService,
		entryCh:      make(chan *model.AuditEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		ar.wg.Add(1)
		go ar.worker()
	}
	return ar
}

func (ar *AuditRecorder) worker() {
	defer ar.wg.Done()
	for {
		select {
		case entry, ok := <-ar.entryCh:
			if !ok {
				return
			}
			ar.write(entry)
		case <-ar.stopCh:
			// Drain what is already buffered, then stop.
			for {
				select {
				case entry := <-ar.entryCh:
					ar.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (ar *AuditRecorder) write(entry *model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), ar.writeTimeout)
	defer cancel()

	if err := ar.auditService.Record(ctx, entry); err != nil {
		log := logger.Logger()
		log.Warn().
			Err(err).
			Str("action", entry.Action).
			Msg("Audit entry write failed")
	}
}

// Enqueue submits an entry for persistence. Never blocks: a full buffer
// drops the entry. Safe on a nil recorder.
func (ar *AuditRecorder) Enqueue(entry *model.AuditEntry) {
	if ar == nil || entry == nil {
		return
	}
	select {
	case ar.entryCh <- entry:
	default:
		metrics.AuditEntriesDropped.Inc()
	}
}

// Shutdown stops the workers, draining buffered entries first.
func (ar *AuditRecorder) Shutdown() {
	if ar == nil {
		return
	}
	ar.stopOnce.Do(func() { close(ar.stopCh) })
	ar.wg.Wait()
}

// Audit builds an entry for a proxied write operation from the request
// context and enqueues it. Safe on a nil recorder.
func (ar *AuditRecorder) Audit(c *gin.Context, action, projectID string, fields map[string]interface{}) {
	if ar == nil {
		return
	}
	ar.Enqueue(&model.AuditEntry{
		Timestamp: time.Now(),
		RequestID: GetRequestID(c),
		Action:    action,
		ProjectID: projectID,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		Fields:    fields,
	})
}
