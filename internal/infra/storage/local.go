package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"flashbooth/internal/pkg/config"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/usecase/commands"
)

var ErrUnsupportedMediaType = errs.New("unsupported media type")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalStorage keeps uploaded media on disk under a single directory and
// serves it through the static /media route.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(cfg config.StorageConfig) (commands.FileStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create storage directory")
	}
	return &LocalStorage{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Save writes the upload under a random name; the original name only
// contributes its extension, so path traversal in uploads cannot reach
// outside the storage directory.
func (s *LocalStorage) Save(_ context.Context, fileName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedMediaType
	}

	storedName := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", errs.Wrap(err, "failed to create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", errs.Wrap(err, "failed to write media file")
	}
	return storedName, nil
}

func (s *LocalStorage) PublicURL(storedName string) string {
	return s.baseURL + "/" + storedName
}

func (s *LocalStorage) Remove(_ context.Context, storedName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove media file")
	}
	return nil
}
