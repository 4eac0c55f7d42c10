// Package media stores user-uploaded images on a remote or local host.
package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const ProjectFolder = "teamsync_projects"

type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Asset struct {
	PublicId string
	URL      string
}

type Host interface {
	Upload(ctx context.Context, in UploadInput) (*Asset, error)
	Delete(ctx context.Context, publicId string) error
}

// newKey returns "<folder>/<uuid><ext>" with the extension lower-cased.
func newKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return folder + "/" + uuid.NewString() + ext
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
