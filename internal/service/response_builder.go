package service

import (
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
)

// ToUserResponse never copies the password hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Id:        u.Id,
		FullName:  u.FullName,
		College:   u.College,
		Email:     u.Email,
		Roll:      u.Roll,
		Skills:    u.Skills,
		Domains:   u.Domains,
		TeamId:    u.TeamId,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*dto.UserResponse {
	res := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(u)
	}
	return res
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          p.Id,
		Owner:       p.OwnerId,
		Title:       p.Title,
		Description: p.Description,
		Domain:      p.Domain,
		Tags:        p.Tags,
		Github:      p.Github,
		Live:        p.Live,
		TeamSize:    p.TeamSize,
		Image: dto.ProjectImageResponse{
			PublicId: p.Image.PublicId,
			URL:      p.Image.URL,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toChatSummary(s *entity.ChatSession) *dto.ChatSummaryResponse {
	return &dto.ChatSummaryResponse{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toChatResponse(s *entity.ChatSession, messages []*entity.ChatMessage) *dto.ChatResponse {
	history := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		history[i] = &dto.ChatMessageResponse{
			Role:      m.Role,
			Parts:     m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return &dto.ChatResponse{
		Id:        s.Id,
		Title:     s.Title,
		History:   history,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
