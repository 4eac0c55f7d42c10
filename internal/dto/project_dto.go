package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Domain      string `form:"domain"`
	Tags        string `form:"tags"`
	Github      string `form:"github"`
	Live        string `form:"live"`
	TeamSize    string `form:"teamSize"`

	Image *ImageUpload `form:"-"`
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProjectImageResponse struct {
	PublicId string `json:"publicId"`
	URL      string `json:"url"`
}

type ProjectResponse struct {
	Id          uuid.UUID            `json:"id"`
	Owner       uuid.UUID            `json:"owner"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Domain      string               `json:"domain"`
	Tags        []string             `json:"tags"`
	Github      string               `json:"github"`
	Live        string               `json:"live"`
	TeamSize    int                  `json:"teamSize"`
	Image       ProjectImageResponse `json:"image"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type ProjectsEnvelope struct {
	Projects []*ProjectResponse `json:"projects"`
}

type ProjectEnvelope struct {
	Project *ProjectResponse `json:"project"`
}
