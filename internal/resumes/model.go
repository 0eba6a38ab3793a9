package resumes

import (
	"time"

	"resume-parser/resume/model"
)

// Record is a stored parse result: the uploaded document's metadata plus
// the structured resume extracted from it.
type Record struct {
	ID        string
	FileName  string
	MimeType  string
	SizeBytes int64
	SourceKey string
	Resume    model.Resume
	CreatedAt time.Time
}
