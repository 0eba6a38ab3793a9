package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	recs []Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a new record.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

// GetByID returns a record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.recs {
		if r.recs[i].ID == id {
			return r.recs[i], nil
		}
	}
	return Record{}, ErrNotFound
}

// List returns records newest-first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	recs := make([]Record, len(r.recs))
	copy(recs, r.recs)
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	if offset >= len(recs) {
		return []Record{}, nil
	}
	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return recs[offset:end], nil
}

var _ ResumesRepo = (*MemoryRepo)(nil)
