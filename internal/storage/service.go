// Package storage saves uploaded location images to local disk and
// records their metadata. Stored files are served back under /uploads,
// which is one of the image reference forms the location store accepts.
package storage

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/russelescultura/sk-barangay-sub000/internal/db"

	"github.com/google/uuid"
)

var ErrNotImage = errors.New("file is not an image")

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 5 << 20

type Service struct {
	db  db.Querier
	dir string
}

func NewService(db db.Querier, dir string) *Service {
	return &Service{db: db, dir: dir}
}

// Upload is a stored image: the disk name is random, the URL is what
// callers put into a location's image field.
type Upload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Store writes an uploaded image under the upload directory with a
// random name and records its metadata. Non-image uploads are rejected
// before anything touches disk.
func (s *Service) Store(ctx context.Context, file *multipart.FileHeader) (Upload, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return Upload{}, ErrNotImage
	}
	if file.Size > maxUploadBytes {
		return Upload{}, errors.New("file too large")
	}

	src, err := file.Open()
	if err != nil {
		return Upload{}, err
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Upload{}, err
	}

	id := uuid.NewString()
	name := id + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return Upload{}, err
	}
	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return Upload{}, err
	}

	up := Upload{ID: id, Name: name, URL: "/uploads/" + name, Size: written}
	if s.db != nil {
		_, err = s.db.Exec(ctx, `
			INSERT INTO uploads (id, file_name, original_name, content_type, size_bytes)
			VALUES ($1,$2,$3,$4,$5)
		`, up.ID, up.Name, file.Filename, contentType, up.Size)
		if err != nil {
			_ = os.Remove(path)
			return Upload{}, err
		}
	}
	return up, nil
}

// Dir returns the directory served under /uploads.
func (s *Service) Dir() string {
	return s.dir
}
