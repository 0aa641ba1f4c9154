package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avilkov/travel-manager/internal/logger"
)

// ImageStore keeps uploaded PNG images on the local filesystem under a
// single root directory. Names are store-relative paths such as
// "activities/7.png" and are cleaned before use so a name can never escape
// the root.
type ImageStore struct {
	root string
}

// NewImageStore creates a store rooted at dir.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{root: dir}
}

// ActivityImage is the store name for an activity's image.
func ActivityImage(id int64) string {
	return fmt.Sprintf("activities/%d.png", id)
}

// ProfileImage is the store name for a user's avatar.
func ProfileImage(userID int64) string {
	return fmt.Sprintf("profiles/%d.png", userID)
}

func (s *ImageStore) path(name string) string {
	return filepath.Join(s.root, filepath.Clean("/"+name))
}

// Save writes an image, creating parent directories as needed.
func (s *ImageStore) Save(name string, r io.Reader) error {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		logger.Log.Errorw("failed to write image", "name", name, "err", err)
		return err
	}
	return nil
}

// Open returns the stored image for reading.
func (s *ImageStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.path(name))
}

// Exists reports whether an image is stored under the name.
func (s *ImageStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
