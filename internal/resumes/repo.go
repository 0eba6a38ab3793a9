package resumes

import "context"

// ResumesRepo defines persistence operations for parse records.
type ResumesRepo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
