package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lawfirm-backend/internal/models"

	"github.com/google/uuid"
)

// Store maps uploaded byte streams to files under a configured root
// directory. Callers only ever see paths relative to that root.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Save writes src under a generated file name and returns the name, the
// path relative to the store root and the number of bytes written.
func (s *Store) Save(src io.Reader, originalName string) (string, string, int64, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	fileName := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.root, fileName))
	if err != nil {
		return "", "", 0, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return "", "", 0, err
	}

	return fileName, fileName, size, nil
}

// AbsPath resolves a stored relative path against the store root.
func (s *Store) AbsPath(relPath string) string {
	return filepath.Join(s.root, relPath)
}

// Exists reports whether the backing file for relPath is present.
func (s *Store) Exists(relPath string) bool {
	_, err := os.Stat(s.AbsPath(relPath))
	return err == nil
}

// Remove deletes the backing file. A file that is already gone is not an
// error; delete is idempotent.
func (s *Store) Remove(relPath string) error {
	err := os.Remove(s.AbsPath(relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClassifyMime derives the document type from a mime type. The result is
// stored once at upload time and never recomputed.
func ClassifyMime(mimeType string) models.DocumentType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.DocumentTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return models.DocumentTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return models.DocumentTypeAudio
	case mimeType == "application/pdf":
		return models.DocumentTypePDF
	case strings.Contains(mimeType, "word"),
		strings.Contains(mimeType, "excel"),
		strings.Contains(mimeType, "powerpoint"),
		strings.Contains(mimeType, "text"):
		return models.DocumentTypeDocument
	default:
		return models.DocumentTypeOther
	}
}
