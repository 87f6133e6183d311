package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// GenerationRecord is one audit row describing a generation call: which
// engine asked, which provider and model served, and how it went.
type GenerationRecord struct {
	ID            string
	RequestID     string
	EngineID      string
	Provider      string
	Model         string
	Outcome       string // success | failure
	DurationMs    int64
	ContentLength int
	Error         *string
	CreatedAt     time.Time
}

// recordInserter is the sink the saver flushes batches into.
type recordInserter interface {
	InsertGenerationRecords(ctx context.Context, records []GenerationRecord) error
}

type AuditStore struct {
	pool *pgxpool.Pool
}

func NewAuditStore(pool *pgxpool.Pool) *AuditStore {
	return &AuditStore{pool: pool}
}

// InsertGenerationRecords inserts a batch of audit rows. Individual row
// failures are skipped so one bad row cannot sink the batch.
func (s *AuditStore) InsertGenerationRecords(ctx context.Context, records []GenerationRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
        INSERT INTO generation_records (
            id, request_id, engine_id, provider, model, outcome,
            duration_ms, content_length, error, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	successCount := 0
	for _, r := range records {
		_, err := s.pool.Exec(ctx, query,
			r.ID, r.RequestID, r.EngineID, r.Provider, r.Model, r.Outcome,
			r.DurationMs, r.ContentLength, r.Error, r.CreatedAt.UTC(),
		)
		if err != nil {
			continue
		}
		successCount++
	}

	if successCount == 0 {
		return fmt.Errorf("failed to insert any generation records")
	}
	return nil
}

const (
	defaultAuditBatchSize     = 200
	defaultAuditFlushInterval = 500 * time.Millisecond
	defaultAuditChannelCap    = 5000
)

// AuditSaver buffers generation records and flushes them in batches on a
// timer, keeping audit writes off the request path.
type AuditSaver struct {
	inserter      recordInserter
	ch            chan GenerationRecord
	batchSize     int
	flushInterval time.Duration
	stopCh        chan struct{}
	stoppedCh     chan struct{}
	logger        *zap.Logger
}

func NewAuditSaver(inserter recordInserter, logger *zap.Logger) *AuditSaver {
	s := &AuditSaver{
		inserter:      inserter,
		ch:            make(chan GenerationRecord, defaultAuditChannelCap),
		batchSize:     defaultAuditBatchSize,
		flushInterval: defaultAuditFlushInterval,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
		logger:        logger,
	}
	go s.run()
	return s
}

func (s *AuditSaver) run() {
	defer close(s.stoppedCh)
	batch := make([]GenerationRecord, 0, s.batchSize)
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.inserter.InsertGenerationRecords(ctx, batch); err != nil {
			s.logger.Error("Failed to flush generation records", zap.Error(err), zap.Int("count", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case rec := <-s.ch:
			batch = append(batch, rec)
			if len(batch) >= s.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case rec := <-s.ch:
					batch = append(batch, rec)
					if len(batch) >= s.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// Enqueue hands a record to the background saver. When the queue is full the
// record is inserted directly on a short-lived goroutine instead of being
// dropped.
func (s *AuditSaver) Enqueue(rec GenerationRecord) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	select {
	case s.ch <- rec:
	default:
		go func(rec GenerationRecord) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := s.inserter.InsertGenerationRecords(ctx, []GenerationRecord{rec}); err != nil {
				s.logger.Error("Failed to insert generation record directly", zap.Error(err))
			}
		}(rec)
	}
}

// Close stops the saver after draining the queue.
func (s *AuditSaver) Close() {
	close(s.stopCh)
	<-s.stoppedCh
}
