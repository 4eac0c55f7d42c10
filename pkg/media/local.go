package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalHost writes files under dir; the server exposes dir at publicURL.
type LocalHost struct {
	dir       string
	publicURL string
	folder    string
}

func NewLocalHost(dir, publicURL string) (*LocalHost, error) {
	if err := os.MkdirAll(filepath.Join(dir, ProjectFolder), 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalHost{dir: dir, publicURL: publicURL, folder: ProjectFolder}, nil
}

func (h *LocalHost) Upload(ctx context.Context, in UploadInput) (*Asset, error) {
	key := newKey(h.folder, in.Filename)

	f, err := os.Create(filepath.Join(h.dir, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, in.Body); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write %s: %w", key, err)
	}

	return &Asset{PublicId: key, URL: joinURL(h.publicURL, key)}, nil
}

func (h *LocalHost) Delete(ctx context.Context, publicId string) error {
	clean := filepath.Clean(filepath.FromSlash(publicId))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("refusing to delete %q outside media dir", publicId)
	}

	err := os.Remove(filepath.Join(h.dir, clean))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", publicId, err)
	}
	return nil
}
