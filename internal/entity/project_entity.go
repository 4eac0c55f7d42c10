package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectImage struct {
	PublicId string
	URL      string
}

type Project struct {
	Id          uuid.UUID
	OwnerId     uuid.UUID
	Title       string
	Description string
	Domain      string
	Tags        []string
	Github      string
	Live        string
	TeamSize    int
	Image       ProjectImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
