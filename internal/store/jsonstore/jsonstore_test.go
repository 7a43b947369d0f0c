package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rootle-backend/internal/models"
	"rootle-backend/internal/store"
)

func testRecord(id, uploader, faculty, department string) models.FileRecord {
	return models.FileRecord{
		ID:           id,
		OriginalName: id + ".pdf",
		SavedName:    id + "-blob.pdf",
		Uploader:     uploader,
		UploadDate:   time.Now().UTC(),
		MimeType:     "application/pdf",
		Size:         42,
		Faculty:      faculty,
		Department:   department,
	}
}

func TestUserStoreAppendAndGet(t *testing.T) {
	s := NewUserStore(t.TempDir())

	account := models.Account{Username: "alice", PasswordHash: "hash1"}
	if err := s.Append(account); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := s.Get("alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "alice" || got.PasswordHash != "hash1" {
		t.Errorf("unexpected account: %+v", got)
	}
}

func TestUserStoreDuplicate(t *testing.T) {
	s := NewUserStore(t.TempDir())

	if err := s.Append(models.Account{Username: "alice", PasswordHash: "h1"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	err := s.Append(models.Account{Username: "alice", PasswordHash: "h2"})
	if !errors.Is(err, store.ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got %v", err)
	}

	// The original hash must survive the rejected append.
	got, err := s.Get("alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.PasswordHash != "h1" {
		t.Errorf("expected original hash h1, got %s", got.PasswordHash)
	}
}

func TestUserStoreGetMissing(t *testing.T) {
	s := NewUserStore(t.TempDir())

	if _, err := s.Get("nobody"); !errors.Is(err, store.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUserStoreCaseSensitiveUsernames(t *testing.T) {
	s := NewUserStore(t.TempDir())

	if err := s.Append(models.Account{Username: "Alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := s.Append(models.Account{Username: "alice", PasswordHash: "h"}); err != nil {
		t.Errorf("different-case username should not be a duplicate, got %v", err)
	}
}

func TestUserStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	if err := NewUserStore(dir).Append(models.Account{Username: "alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if _, err := NewUserStore(dir).Get("alice"); err != nil {
		t.Errorf("account should survive a fresh store instance: %v", err)
	}
}

func TestFileStoreAppendVisibleToQuery(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Append(testRecord("f1", "alice", "Sciences", "Physics")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := s.Query(store.FileFilter{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ID != "f1" {
		t.Errorf("expected record f1, got %s", records[0].ID)
	}
}

func TestFileStoreFilterAND(t *testing.T) {
	s := NewFileStore(t.TempDir())

	seed := []models.FileRecord{
		testRecord("f1", "alice", "Sciences", "Physics"),
		testRecord("f2", "alice", "Sciences", "Chemistry"),
		testRecord("f3", "bob", "Sciences", "Physics"),
		testRecord("f4", "bob", "Arts", "History"),
	}
	for _, r := range seed {
		if err := s.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	cases := []struct {
		name   string
		filter store.FileFilter
		want   []string
	}{
		{"no filter", store.FileFilter{}, []string{"f1", "f2", "f3", "f4"}},
		{"faculty only", store.FileFilter{Faculty: "Sciences"}, []string{"f1", "f2", "f3"}},
		{"faculty and department", store.FileFilter{Faculty: "Sciences", Department: "Physics"}, []string{"f1", "f3"}},
		{"uploader and department", store.FileFilter{Uploader: "alice", Department: "Physics"}, []string{"f1"}},
		{"no match", store.FileFilter{Department: "Biology"}, []string{}},
	}

	for _, tc := range cases {
		records, err := s.Query(tc.filter)
		if err != nil {
			t.Fatalf("%s: Query failed: %v", tc.name, err)
		}
		if records == nil {
			t.Fatalf("%s: Query returned nil, want empty slice", tc.name)
		}
		if len(records) != len(tc.want) {
			t.Fatalf("%s: expected %d records, got %d", tc.name, len(tc.want), len(records))
		}
		for i, id := range tc.want {
			if records[i].ID != id {
				t.Errorf("%s: position %d: expected %s, got %s", tc.name, i, id, records[i].ID)
			}
		}
	}
}

func TestFileStoreInsertionOrder(t *testing.T) {
	s := NewFileStore(t.TempDir())

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		if err := s.Append(testRecord(id, "alice", "Sciences", "Physics")); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	records, err := s.Query(store.FileFilter{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	for i, id := range ids {
		if records[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, records[i].ID)
		}
	}
}

func TestFileStoreMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "files.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to seed malformed document: %v", err)
	}

	s := NewFileStore(dir)
	if _, err := s.Query(store.FileFilter{}); err == nil {
		t.Error("expected error for malformed document, got nil")
	}
	if err := s.Append(testRecord("f1", "alice", "Sciences", "Physics")); err == nil {
		t.Error("append over a malformed document should fail, not clobber it")
	}
}
