package mapper

import (
	"teamsync-be/internal/entity"
	"teamsync-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Title:       p.Title,
		Description: p.Description,
		Domain:      p.Domain,
		Tags:        nonNil(p.Tags),
		Github:      p.Github,
		Live:        p.Live,
		TeamSize:    p.TeamSize,
		Image: entity.ProjectImage{
			PublicId: p.ImagePublicId,
			URL:      p.ImageURL,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:            p.Id,
		OwnerId:       p.OwnerId,
		Title:         p.Title,
		Description:   p.Description,
		Domain:        p.Domain,
		Tags:          nonNil(p.Tags),
		Github:        p.Github,
		Live:          p.Live,
		TeamSize:      p.TeamSize,
		ImagePublicId: p.Image.PublicId,
		ImageURL:      p.Image.URL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
