package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"scientist-twin/internal/domain"
)

// FieldCount is one row of the popular-fields aggregation.
type FieldCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ScientistCount is one row of the hall-of-fame aggregation.
type ScientistCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeedbackRepository persists play/like events and serves the aggregates
// the analytics board renders.
type FeedbackRepository interface {
	Create(ctx context.Context, event domain.FeedbackEvent) error
	CountByKind(ctx context.Context, kind string) (int, error)
	TopScientists(ctx context.Context, kind string, limit int) ([]ScientistCount, error)
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) Create(ctx context.Context, event domain.FeedbackEvent) error {
	const query = `
		INSERT INTO feedback_events (id, session_id, scientist, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.SessionID,
		event.Scientist,
		event.Kind,
		event.CreatedAt,
	)
	return err
}

func (r *PgFeedbackRepository) CountByKind(ctx context.Context, kind string) (int, error) {
	const query = `SELECT COUNT(*) FROM feedback_events WHERE kind = $1`
	var n int
	if err := r.pool.QueryRow(ctx, query, kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

func (r *PgFeedbackRepository) TopScientists(ctx context.Context, kind string, limit int) ([]ScientistCount, error) {
	const query = `
		SELECT scientist, COUNT(*) AS n
		FROM feedback_events
		WHERE kind = $1 AND scientist <> ''
		GROUP BY scientist
		ORDER BY n DESC, scientist
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scientists: %w", err)
	}
	defer rows.Close()

	var out []ScientistCount
	for rows.Next() {
		var sc ScientistCount
		if err := rows.Scan(&sc.Name, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan top scientist: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
