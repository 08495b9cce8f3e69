package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"scientist-twin/internal/domain"
)

// ScientistRepository loads the biographical database. Implementations are
// read-only: the engine fetches the collection once and caches it in memory.
type ScientistRepository interface {
	ListAll(ctx context.Context) ([]domain.Scientist, error)
}

// PgScientistRepository reads scientists from Postgres. Traits are stored as
// a jsonb column; rows with malformed trait values are kept as-is and left
// to the permissive scoring rules.
type PgScientistRepository struct {
	pool *pgxpool.Pool
}

func NewPgScientistRepository(pool *pgxpool.Pool) *PgScientistRepository {
	return &PgScientistRepository{pool: pool}
}

func (r *PgScientistRepository) ListAll(ctx context.Context) ([]domain.Scientist, error) {
	const query = `
		SELECT name, field, COALESCE(subfield, ''), COALESCE(era, ''),
		       COALESCE(archetype, ''), COALESCE(achievements, ''),
		       COALESCE(summary, ''), COALESCE(moments, '[]'::jsonb),
		       COALESCE(working_style, ''), COALESCE(wiki_title, ''),
		       COALESCE(traits, '{}'::jsonb)
		FROM scientists
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query scientists: %w", err)
	}
	defer rows.Close()

	var out []domain.Scientist
	for rows.Next() {
		var (
			s          domain.Scientist
			momentsRaw []byte
			traitsRaw  []byte
		)
		if err := rows.Scan(
			&s.Name,
			&s.Field,
			&s.Subfield,
			&s.Era,
			&s.Archetype,
			&s.Achievements,
			&s.Summary,
			&momentsRaw,
			&s.WorkingStyle,
			&s.WikiTitle,
			&traitsRaw,
		); err != nil {
			return nil, fmt.Errorf("scan scientist: %w", err)
		}
		if len(momentsRaw) > 0 {
			_ = json.Unmarshal(momentsRaw, &s.Moments)
		}
		if len(traitsRaw) > 0 {
			_ = json.Unmarshal(traitsRaw, &s.Traits)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FileScientistRepository reads the flat-file JSON database, the same shape
// the Postgres table was originally populated from.
type FileScientistRepository struct {
	path string
}

func NewFileScientistRepository(path string) *FileScientistRepository {
	return &FileScientistRepository{path: path}
}

func (r *FileScientistRepository) ListAll(_ context.Context) ([]domain.Scientist, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read scientist db: %w", err)
	}
	var out []domain.Scientist
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse scientist db: %w", err)
	}
	return out, nil
}
