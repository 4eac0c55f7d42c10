package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamRole string

const (
	TeamRoleLeader    TeamRole = "Leader"
	TeamRoleFrontend  TeamRole = "Frontend"
	TeamRoleBackend   TeamRole = "Backend"
	TeamRoleDesigner  TeamRole = "Designer"
	TeamRoleTester    TeamRole = "Tester"
	TeamRoleFullstack TeamRole = "Fullstack"
	TeamRoleDevOps    TeamRole = "DevOps"
	TeamRoleQA        TeamRole = "QA"
	TeamRoleMember    TeamRole = "Member"
)

// TeamRoles lists every role a member may hold, in display order.
var TeamRoles = []TeamRole{
	TeamRoleLeader,
	TeamRoleFrontend,
	TeamRoleBackend,
	TeamRoleDesigner,
	TeamRoleTester,
	TeamRoleFullstack,
	TeamRoleDevOps,
	TeamRoleQA,
	TeamRoleMember,
}

func (r TeamRole) Valid() bool {
	for _, role := range TeamRoles {
		if r == role {
			return true
		}
	}
	return false
}

type TeamMember struct {
	UserId   uuid.UUID
	Role     TeamRole
	Position int
}

type Team struct {
	Id        uuid.UUID
	Name      string
	LeaderId  uuid.UUID
	Members   []TeamMember
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberIds returns member ids in stored order.
func (t *Team) MemberIds() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.UserId
	}
	return ids
}
