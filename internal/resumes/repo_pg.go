package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-parser/resume/model"
)

// PGRepo implements ResumesRepo using Postgres. The structured resume is
// stored as a JSONB payload next to the document metadata.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new parse record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (
    id,
    file_name,
    mime_type,
    size_bytes,
    source_key,
    payload,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	payload, err := json.Marshal(rec.Resume)
	if err != nil {
		return fmt.Errorf("marshal resume payload: %w", err)
	}

	var sourceKey sql.NullString
	if rec.SourceKey != "" {
		sourceKey = sql.NullString{String: rec.SourceKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.FileName,
		rec.MimeType,
		rec.SizeBytes,
		sourceKey,
		payload,
		rec.CreatedAt,
	)
	return err
}

// GetByID fetches a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, source_key, payload, created_at
FROM resumes
WHERE id = $1
LIMIT 1`
	var rec Record
	var sourceKey sql.NullString
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.FileName,
		&rec.MimeType,
		&rec.SizeBytes,
		&sourceKey,
		&payload,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if sourceKey.Valid {
		rec.SourceKey = sourceKey.String
	}
	rec.Resume = model.New()
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &rec.Resume); err != nil {
			return Record{}, fmt.Errorf("unmarshal resume payload: %w", err)
		}
	}
	return rec, nil
}

// List returns records ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, file_name, mime_type, size_bytes, source_key, payload, created_at
FROM resumes
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var sourceKey sql.NullString
		var payload []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.FileName,
			&rec.MimeType,
			&rec.SizeBytes,
			&sourceKey,
			&payload,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if sourceKey.Valid {
			rec.SourceKey = sourceKey.String
		}
		rec.Resume = model.New()
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &rec.Resume); err != nil {
				return nil, fmt.Errorf("unmarshal resume payload: %w", err)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ ResumesRepo = (*PGRepo)(nil)
