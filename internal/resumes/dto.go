package resumes

import (
	"time"

	"resume-parser/resume/model"
)

// RecordResponse is the outward-facing representation of a parse record.
type RecordResponse struct {
	ResumeID  string       `json:"resumeId"`
	FileName  string       `json:"fileName"`
	MimeType  string       `json:"mimeType"`
	SizeBytes int64        `json:"sizeBytes"`
	ParsedAt  time.Time    `json:"parsedAt"`
	Resume    model.Resume `json:"resume"`
}

// RecordSummary omits the resume payload for list endpoints.
type RecordSummary struct {
	ResumeID  string    `json:"resumeId"`
	FileName  string    `json:"fileName"`
	MimeType  string    `json:"mimeType"`
	SizeBytes int64     `json:"sizeBytes"`
	ParsedAt  time.Time `json:"parsedAt"`
}

func toResponse(rec Record) RecordResponse {
	return RecordResponse{
		ResumeID:  rec.ID,
		FileName:  rec.FileName,
		MimeType:  rec.MimeType,
		SizeBytes: rec.SizeBytes,
		ParsedAt:  rec.CreatedAt,
		Resume:    rec.Resume,
	}
}

func toSummary(rec Record) RecordSummary {
	return RecordSummary{
		ResumeID:  rec.ID,
		FileName:  rec.FileName,
		MimeType:  rec.MimeType,
		SizeBytes: rec.SizeBytes,
		ParsedAt:  rec.CreatedAt,
	}
}
