package mapper

import (
	"sort"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}

	members := make([]entity.TeamMember, len(t.Members))
	for i, mm := range t.Members {
		members[i] = entity.TeamMember{
			UserId:   mm.UserId,
			Role:     entity.TeamRole(mm.Role),
			Position: mm.Position,
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Position < members[j].Position
	})

	return &entity.Team{
		Id:        t.Id,
		Name:      t.Name,
		LeaderId:  t.LeaderId,
		Members:   members,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}

	members := make([]model.TeamMember, len(t.Members))
	for i, mm := range t.Members {
		members[i] = model.TeamMember{
			TeamId:   t.Id,
			UserId:   mm.UserId,
			Role:     string(mm.Role),
			Position: mm.Position,
		}
	}

	return &model.Team{
		Id:        t.Id,
		Name:      t.Name,
		LeaderId:  t.LeaderId,
		Members:   members,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
