package search

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageLogRepository persists analytics rows for interpreted searches.
type UsageLogRepository interface {
	Insert(ctx context.Context, entry UsageLog) error
}

type PostgresUsageLogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUsageLogRepository(db *pgxpool.Pool) *PostgresUsageLogRepository {
	return &PostgresUsageLogRepository{db: db}
}

func (r *PostgresUsageLogRepository) Insert(ctx context.Context, entry UsageLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ai_usage_logs (input_text, provider, confidence)
		VALUES ($1, $2, $3)
	`, entry.InputText, entry.Provider, entry.Confidence)
	return err
}

// InMemoryUsageLogRepository is safe for the async writes the service does.
type InMemoryUsageLogRepository struct {
	mu      sync.Mutex
	entries []UsageLog
}

func NewInMemoryUsageLogRepository() *InMemoryUsageLogRepository {
	return &InMemoryUsageLogRepository{}
}

func (r *InMemoryUsageLogRepository) Insert(ctx context.Context, entry UsageLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *InMemoryUsageLogRepository) Entries() []UsageLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UsageLog, len(r.entries))
	copy(out, r.entries)
	return out
}
