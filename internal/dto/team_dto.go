package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	TeamName     string   `json:"teamName"`
	TeamLeaderId string   `json:"teamLeaderId"`
	MemberIds    []string `json:"memberIds"`
}

type TeammatesEnvelope struct {
	Teammates []*UserResponse `json:"teammates"`
}

type TeamMemberProfile struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	College  string    `json:"college"`
	Skills   []string  `json:"skills"`
}

type TeamMemberResponse struct {
	// User is nil when the member's identity no longer exists.
	User *TeamMemberProfile `json:"user"`
	Role string             `json:"role"`
}

type TeamLeaderResponse struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
}

type TeamResponse struct {
	Id         uuid.UUID             `json:"id"`
	TeamName   string                `json:"teamName"`
	TeamLeader *TeamLeaderResponse   `json:"teamLeader"`
	Members    []*TeamMemberResponse `json:"members"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

type TeamEnvelope struct {
	Team *TeamResponse `json:"team"`
}

type ProjectSuggestion struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

type SuggestionsEnvelope struct {
	Suggestions []ProjectSuggestion `json:"suggestions"`
}
