package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persists uploaded files and returns a URL the frontend can load the
// file from. Implementations must keep the returned URLs stable.
type Store interface {
	Save(name string, r io.Reader) (string, error)
}

// DiskStore writes uploads below a base directory which main serves via a
// static route. Files are namespaced by upload timestamp plus the original
// filename, so repeated uploads of the same file never collide.
type DiskStore struct {
	// Dir is the filesystem root, e.g. "./uploads".
	Dir string
	// BaseURL is the public prefix the static route exposes, e.g. "/uploads".
	BaseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	rel := fmt.Sprintf("product-images/%d_%s", time.Now().UnixMilli(), filepath.Base(name))
	dst := filepath.Join(s.Dir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", err
	}
	return s.BaseURL + "/" + rel, nil
}
