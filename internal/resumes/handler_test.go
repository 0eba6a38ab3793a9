package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/shared/server/respond"
	"resume-parser/resume/model"
)

func newTestRouter(repo ResumesRepo, store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &Service{Store: store, Repo: repo}
	handler := NewHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestParseEndpointRejectsMissingFile(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), &fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body respond.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Code)
	}
}

func TestParseEndpointRejectsUnreadableDocument(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), &fakeStore{})

	payload, contentType := multipartUpload(t, "file", "cv.pdf", []byte("definitely not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", payload)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
	var body respond.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "unreadable_document" {
		t.Fatalf("expected unreadable_document, got %q", body.Error.Code)
	}
}

func TestGetEndpointReturnsRecord(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, &fakeStore{})

	resume := model.New()
	resume.Basics.Name = "Jane Doe"
	rec := Record{
		ID:        "rec-1",
		FileName:  "cv.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 1024,
		Resume:    resume,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/rec-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body RecordResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ResumeID != "rec-1" || body.FileName != "cv.pdf" {
		t.Fatalf("unexpected response: %+v", body)
	}
	if body.Resume.Basics.Name != "Jane Doe" {
		t.Fatalf("resume payload missing: %+v", body.Resume.Basics)
	}
}

func TestGetEndpointNotFound(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestDownloadEndpointStreamsOriginal(t *testing.T) {
	repo := NewMemoryRepo()
	store := &fakeStore{objects: map[string][]byte{"resumes/cv.pdf": []byte("pdf bytes")}}
	router := newTestRouter(repo, store)

	rec := Record{
		ID:        "rec-1",
		FileName:  "cv.pdf",
		MimeType:  "application/pdf",
		SourceKey: "resumes/cv.pdf",
		Resume:    model.New(),
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/rec-1/file", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if resp.Body.String() != "pdf bytes" {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
}

func TestDownloadEndpointNotFound(t *testing.T) {
	router := newTestRouter(NewMemoryRepo(), &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/missing/file", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListEndpointReturnsSummaries(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo, &fakeStore{})

	now := time.Now().UTC()
	for i, id := range []string{"rec-1", "rec-2", "rec-3"} {
		rec := Record{
			ID:        id,
			FileName:  id + ".pdf",
			MimeType:  "application/pdf",
			Resume:    model.New(),
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes?limit=2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body []RecordSummary
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(body))
	}
	if body[0].ResumeID != "rec-3" || body[1].ResumeID != "rec-2" {
		t.Fatalf("unexpected order: %+v", body)
	}
}
