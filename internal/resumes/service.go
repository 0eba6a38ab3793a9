package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/extract"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/storage/object"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/resume/parse"
)

const storeNamespace = "resumes"

// Service contains business logic for parsing and storing resumes.
type Service struct {
	Store object.ObjectStore
	Repo  ResumesRepo
}

// Parse saves the uploaded file, decodes it into positioned words, runs the
// extraction pipeline, and records the structured result.
func (s *Service) Parse(ctx context.Context, fileName string, r io.Reader) (Record, error) {
	if fileName == "" {
		return Record{}, ErrInvalidInput
	}

	metrics.IncParseStarted()
	started := time.Now()

	raw, err := io.ReadAll(r)
	if err != nil {
		metrics.IncParseFailed()
		return Record{}, fmt.Errorf("read upload: %w", err)
	}

	pages, err := extract.Pages(raw)
	if err != nil {
		metrics.IncParseFailed()
		return Record{}, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, storeNamespace, fileName, bytes.NewReader(raw))
	if err != nil {
		metrics.IncParseFailed()
		return Record{}, err
	}

	rec := Record{
		ID:        uuid.NewString(),
		FileName:  fileName,
		MimeType:  mimeType,
		SizeBytes: size,
		SourceKey: storageKey,
		Resume:    parse.Resume(pages),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncParseFailed()
		return Record{}, err
	}

	// The derived JSON is stored next to the original; a failure here must
	// not fail the parse.
	if payload, err := json.Marshal(rec.Resume); err == nil {
		if _, _, _, err := s.Store.Save(ctx, storeNamespace, fileName+".resume.json", bytes.NewReader(payload)); err != nil {
			telemetry.Error("resume.derived_save_failed", map[string]any{
				"resume_id": rec.ID,
				"error":     err.Error(),
			})
		}
	}

	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("resume.parsed", map[string]any{
		"resume_id":   rec.ID,
		"file_name":   rec.FileName,
		"pages":       len(pages),
		"duration_ms": time.Since(started).Milliseconds(),
	})

	return rec, nil
}

// Get returns a stored record by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored records, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	return s.Repo.List(ctx, limit, offset)
}

// OpenFile returns the original uploaded document for a record.
func (s *Service) OpenFile(ctx context.Context, id string) (io.ReadCloser, Record, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, Record{}, err
	}
	if rec.SourceKey == "" {
		return nil, Record{}, ErrNotFound
	}
	reader, err := s.Store.Open(ctx, rec.SourceKey)
	if err != nil {
		return nil, Record{}, fmt.Errorf("open stored file: %w", err)
	}
	return reader, rec, nil
}
