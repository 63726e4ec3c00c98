// Package upload stores user-provided images in the public image directory.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("no file uploaded")
	ErrUnsupportedType = errors.New("invalid file type, only images are allowed")
)

// AllowedExtensions lists the accepted image extensions, lower case.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// ImageStore writes images into Dir and reports them relative to URLPrefix.
type ImageStore struct {
	Dir       string
	URLPrefix string
}

// NewImageStore creates dir if needed.
func NewImageStore(dir, urlPrefix string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Save stores the uploaded file under a fresh unique name and returns its relative URL.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed(ext) {
		return "", ErrUnsupportedType
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return path.Join(s.URLPrefix, name), nil
}

func allowed(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
