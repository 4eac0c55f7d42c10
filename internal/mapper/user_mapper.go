package mapper

import (
	"strings"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		FullName:     u.FullName,
		College:      u.College,
		Email:        u.Email,
		Roll:         u.Roll,
		Skills:       nonNil(u.Skills),
		Domains:      nonNil(u.Domains),
		PasswordHash: u.PasswordHash,
		TeamId:       u.TeamId,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		FullName:     u.FullName,
		College:      u.College,
		Email:        strings.ToLower(strings.TrimSpace(u.Email)),
		Roll:         strings.TrimSpace(u.Roll),
		Skills:       nonNil(u.Skills),
		Domains:      nonNil(u.Domains),
		PasswordHash: u.PasswordHash,
		TeamId:       u.TeamId,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// nonNil keeps JSONB columns as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
