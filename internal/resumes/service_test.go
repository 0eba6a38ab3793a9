package resumes

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"resume-parser/resume/model"
)

type fakeStore struct {
	saved   int
	objects map[string][]byte
}

func (f *fakeStore) Save(ctx context.Context, namespace, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	key := namespace + "/" + fileName
	f.objects[key] = data
	f.saved++
	return key, int64(len(data)), "application/pdf", nil
}

func (f *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := f.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func TestServiceParseRejectsEmptyFileName(t *testing.T) {
	svc := &Service{Store: &fakeStore{}, Repo: NewMemoryRepo()}

	_, err := svc.Parse(context.Background(), "", strings.NewReader("data"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceParseRejectsUndecodableUpload(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Store: store, Repo: NewMemoryRepo()}

	_, err := svc.Parse(context.Background(), "cv.pdf", strings.NewReader("not a pdf"))
	if !errors.Is(err, ErrUnreadableDocument) {
		t.Fatalf("expected ErrUnreadableDocument, got %v", err)
	}
	if store.saved != 0 {
		t.Fatalf("undecodable upload must not be stored, saved=%d", store.saved)
	}
}

func TestServiceGetRequiresID(t *testing.T) {
	svc := &Service{Store: &fakeStore{}, Repo: NewMemoryRepo()}

	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceGetAndList(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Store: &fakeStore{}, Repo: repo}

	now := time.Now().UTC()
	for i, id := range []string{"rec-1", "rec-2"} {
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

	rec, err := svc.Get(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.FileName != "rec-1.pdf" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	records, err := svc.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "rec-2" {
		t.Fatalf("expected newest first, got %+v", records)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListPagination(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		rec := Record{
			ID:        string(rune('a' + i)),
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := repo.List(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 records, got %d", len(page))
	}
	if page[0].ID != "d" || page[1].ID != "c" {
		t.Fatalf("unexpected page: %+v", page)
	}

	empty, err := repo.List(context.Background(), 10, 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %+v", empty)
	}
}
