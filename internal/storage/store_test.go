package storage

import (
	"bytes"
	"os"
	"testing"

	"lawfirm-backend/internal/models"
)

func TestSaveRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	content := []byte("dear sir or madam, please find attached")
	fileName, relPath, size, err := store.Save(bytes.NewReader(content), "letter.PDF")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), size)
	}
	if fileName != relPath {
		t.Fatalf("expected flat layout, got name %q path %q", fileName, relPath)
	}
	if ext := fileName[len(fileName)-4:]; ext != ".pdf" {
		t.Fatalf("expected lowercased extension, got %q", fileName)
	}
	if !store.Exists(relPath) {
		t.Fatalf("expected stored file to exist")
	}

	got, err := os.ReadFile(store.AbsPath(relPath))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored bytes differ from uploaded bytes")
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, _, _, err := store.Save(bytes.NewReader([]byte("a")), "same.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, _, _, err := store.Save(bytes.NewReader([]byte("b")), "same.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct storage names for repeated uploads")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, relPath, _, err := store.Save(bytes.NewReader([]byte("x")), "x.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove(relPath); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if store.Exists(relPath) {
		t.Fatalf("expected file to be gone")
	}
	if err := store.Remove(relPath); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}
}

func TestClassifyMime(t *testing.T) {
	cases := []struct {
		mime string
		want models.DocumentType
	}{
		{"application/pdf", models.DocumentTypePDF},
		{"image/png", models.DocumentTypeImage},
		{"image/jpeg", models.DocumentTypeImage},
		{"video/mp4", models.DocumentTypeVideo},
		{"audio/mpeg", models.DocumentTypeAudio},
		{"text/plain", models.DocumentTypeDocument},
		{"application/msword", models.DocumentTypeDocument},
		{"application/vnd.ms-excel", models.DocumentTypeDocument},
		{"application/vnd.ms-powerpoint", models.DocumentTypeDocument},
		{"application/zip", models.DocumentTypeOther},
		{"application/octet-stream", models.DocumentTypeOther},
	}
	for _, tc := range cases {
		if got := ClassifyMime(tc.mime); got != tc.want {
			t.Errorf("ClassifyMime(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}
