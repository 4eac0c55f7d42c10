package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/pkg/ai/reply"
	"teamsync-be/pkg/events"
	"teamsync-be/pkg/llm"

	"github.com/google/uuid"
)

const MinTeamCandidates = 4

type ITeamService interface {
	GenerateCandidates(ctx context.Context, requester *entity.User) ([]*dto.UserResponse, error)
	Create(ctx context.Context, requester *entity.User, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	Details(ctx context.Context, requester *entity.User) (*dto.TeamResponse, error)
	Suggestions(ctx context.Context, requester *entity.User) ([]dto.ProjectSuggestion, error)
}

type teamService struct {
	uowFactory unitofwork.RepositoryFactory
	llm        llm.LLMProvider
	publisher  EventPublisher
	log        logger.ILogger

	candidatesSchema  *reply.Schema
	rolesSchema       *reply.Schema
	suggestionsSchema *reply.Schema
}

func NewTeamService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisher EventPublisher,
	log logger.ILogger,
) ITeamService {
	return &teamService{
		uowFactory:        uowFactory,
		llm:               llmProvider,
		publisher:         publisher,
		log:               log,
		candidatesSchema:  reply.MustCompile(constant.TeamCandidatesSchema),
		rolesSchema:       reply.MustCompile(constant.RoleAssignmentSchema),
		suggestionsSchema: reply.MustCompile(constant.ProjectSuggestionsSchema),
	}
}

type candidateProfile struct {
	Id      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Skills  []string `json:"skills"`
	Domains []string `json:"domains,omitempty"`
}

type roleAssignment struct {
	Id   string `json:"id"`
	Role string `json:"role"`
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func (s *teamService) aiFailure(operation, message string, err error) error {
	s.log.Warn("TEAM", "AI reply rejected", map[string]interface{}{
		"operation": operation,
		"error":     err.Error(),
	})
	return apperror.Upstream(message, err)
}

func (s *teamService) GenerateCandidates(ctx context.Context, requester *entity.User) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pool, err := uow.UserRepository().FindAll(ctx,
		specification.WithoutTeam{},
		specification.ExcludeID{ID: requester.Id},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(pool) < MinTeamCandidates {
		return nil, apperror.BadRequest(constant.MsgNotEnoughCandidates)
	}

	byId := make(map[string]*entity.User, len(pool))
	candidates := make([]candidateProfile, len(pool))
	for i, u := range pool {
		byId[u.Id.String()] = u
		candidates[i] = candidateProfile{Id: u.Id.String(), Name: u.FullName, Skills: u.Skills, Domains: u.Domains}
	}

	prompt := fmt.Sprintf(constant.TeamCandidatesPromptV1,
		mustJSON(candidateProfile{Name: requester.FullName, Skills: requester.Skills, Domains: requester.Domains}),
		mustJSON(candidates),
	)

	text, err := s.llm.Generate(llm.WithOperation(ctx, "team_generate"), prompt)
	if err != nil {
		return nil, s.aiFailure("team_generate", constant.MsgTeamGenerateFailed, err)
	}

	var ids []string
	if err := s.candidatesSchema.Decode(ctx, text, &ids); err != nil {
		return nil, s.aiFailure("team_generate", constant.MsgTeamGenerateFailed, err)
	}

	selected := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		u, ok := byId[strings.ToLower(strings.TrimSpace(id))]
		if !ok {
			return nil, s.aiFailure("team_generate", constant.MsgTeamGenerateFailed,
				fmt.Errorf("selected id %q is not an eligible candidate", id))
		}
		selected = append(selected, u)
	}

	return toUserResponses(selected), nil
}

// resolveRoles turns the model's assignments into stored members. The leader
// always gets Leader, nobody else may hold it, omitted members become Member and
// ids outside the member list are ignored.
func resolveRoles(leaderId uuid.UUID, memberIds []uuid.UUID, assignments []roleAssignment) []entity.TeamMember {
	assigned := make(map[uuid.UUID]entity.TeamRole, len(assignments))
	for _, a := range assignments {
		id, err := uuid.Parse(strings.TrimSpace(a.Id))
		if err != nil {
			continue
		}
		if _, seen := assigned[id]; !seen {
			assigned[id] = entity.TeamRole(a.Role)
		}
	}

	members := make([]entity.TeamMember, len(memberIds))
	for i, id := range memberIds {
		role := entity.TeamRoleMember
		switch {
		case id == leaderId:
			role = entity.TeamRoleLeader
		case assigned[id].Valid() && assigned[id] != entity.TeamRoleLeader:
			role = assigned[id]
		}
		members[i] = entity.TeamMember{UserId: id, Role: role, Position: i}
	}
	return members
}

func parseMemberIds(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("Invalid member id: %s", r))
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *teamService) Create(ctx context.Context, requester *entity.User, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	name := strings.TrimSpace(req.TeamName)
	if name == "" || strings.TrimSpace(req.TeamLeaderId) == "" || len(req.MemberIds) == 0 {
		return nil, apperror.BadRequest(constant.MsgTeamFieldsRequired)
	}

	leaderId, err := uuid.Parse(strings.TrimSpace(req.TeamLeaderId))
	if err != nil {
		return nil, apperror.BadRequest("Invalid team leader id")
	}
	memberIds, err := parseMemberIds(req.MemberIds)
	if err != nil {
		return nil, err
	}

	leaderListed := false
	for _, id := range memberIds {
		if id == leaderId {
			leaderListed = true
			break
		}
	}
	if !leaderListed {
		return nil, apperror.BadRequest("Team leader must be one of the members.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: memberIds})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(users) != len(memberIds) {
		return nil, apperror.BadRequest("One or more members do not exist.")
	}
	usersById := make(map[uuid.UUID]*entity.User, len(users))
	profiles := make([]candidateProfile, 0, len(users))
	for _, u := range users {
		if u.HasTeam() {
			return nil, apperror.BadRequest(fmt.Sprintf("%s is already in a team.", u.FullName))
		}
		usersById[u.Id] = u
	}
	for _, id := range memberIds {
		u := usersById[id]
		profiles = append(profiles, candidateProfile{Id: u.Id.String(), Name: u.FullName, Skills: u.Skills})
	}

	roleNames := make([]string, len(entity.TeamRoles))
	for i, r := range entity.TeamRoles {
		roleNames[i] = string(r)
	}
	prompt := fmt.Sprintf(constant.RoleAssignmentPromptV1,
		strings.Join(roleNames, ", "),
		leaderId.String(),
		mustJSON(profiles),
		leaderId.String(),
		leaderId.String(),
	)

	text, err := s.llm.Generate(llm.WithOperation(ctx, "team_roles"), prompt)
	if err != nil {
		return nil, s.aiFailure("team_roles", constant.MsgTeamCreateFailed, err)
	}

	var assignments []roleAssignment
	if err := s.rolesSchema.Decode(ctx, text, &assignments); err != nil {
		return nil, s.aiFailure("team_roles", constant.MsgTeamCreateFailed, err)
	}

	team := &entity.Team{
		Id:       uuid.New(),
		Name:     name,
		LeaderId: leaderId,
		Members:  resolveRoles(leaderId, memberIds, assignments),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	free, err := uow.UserRepository().Count(ctx, specification.ByIDs{IDs: memberIds}, specification.WithoutTeam{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if int(free) != len(memberIds) {
		return nil, apperror.Conflict("One or more members joined another team. Please try again.")
	}

	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uow.UserRepository().SetTeam(ctx, memberIds, &team.Id); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	for _, u := range usersById {
		teamId := team.Id
		u.TeamId = &teamId
	}

	publishEvent(ctx, s.publisher, s.log, "TEAM", events.New(events.TeamCreated, map[string]interface{}{
		"team_id":    team.Id.String(),
		"leader_id":  leaderId.String(),
		"created_by": requester.Id.String(),
		"members":    len(memberIds),
	}))

	return buildTeamResponse(team, usersById), nil
}

// loadTeam resolves the requester's team, clearing a reference to a team that no longer exists.
func (s *teamService) loadTeam(ctx context.Context, uow unitofwork.UnitOfWork, requester *entity.User) (*entity.Team, error) {
	if !requester.HasTeam() {
		return nil, apperror.NotFound(constant.MsgNotInTeam)
	}

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: *requester.TeamId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if team == nil {
		if err := uow.UserRepository().SetTeam(ctx, []uuid.UUID{requester.Id}, nil); err != nil {
			s.log.Error("TEAM", "Failed to clear dangling team reference", map[string]interface{}{
				"user_id": requester.Id.String(),
				"error":   err,
			})
		} else {
			requester.TeamId = nil
		}
		return nil, apperror.NotFound(constant.MsgTeamNotFound)
	}
	return team, nil
}

func (s *teamService) loadMembers(ctx context.Context, uow unitofwork.UnitOfWork, team *entity.Team) (map[uuid.UUID]*entity.User, error) {
	ids := append(team.MemberIds(), team.LeaderId)
	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byId[u.Id] = u
	}
	return byId, nil
}

func (s *teamService) Details(ctx context.Context, requester *entity.User) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	team, err := s.loadTeam(ctx, uow, requester)
	if err != nil {
		return nil, err
	}

	usersById, err := s.loadMembers(ctx, uow, team)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return buildTeamResponse(team, usersById), nil
}

func (s *teamService) Suggestions(ctx context.Context, requester *entity.User) ([]dto.ProjectSuggestion, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	team, err := s.loadTeam(ctx, uow, requester)
	if err != nil {
		return nil, err
	}

	usersById, err := s.loadMembers(ctx, uow, team)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	skills := make([]candidateProfile, 0, len(team.Members))
	for _, m := range team.Members {
		if u, ok := usersById[m.UserId]; ok {
			skills = append(skills, candidateProfile{Name: string(m.Role), Skills: u.Skills})
		}
	}

	prompt := fmt.Sprintf(constant.ProjectSuggestionsPromptV1, team.Name, mustJSON(skills))
	text, err := s.llm.Generate(llm.WithOperation(ctx, "team_suggestions"), prompt)
	if err != nil {
		return nil, s.aiFailure("team_suggestions", constant.MsgSuggestionsFailed, err)
	}

	var suggestions []dto.ProjectSuggestion
	if err := s.suggestionsSchema.Decode(ctx, text, &suggestions); err != nil {
		return nil, s.aiFailure("team_suggestions", constant.MsgSuggestionsFailed, err)
	}
	return suggestions, nil
}

func buildTeamResponse(team *entity.Team, usersById map[uuid.UUID]*entity.User) *dto.TeamResponse {
	res := &dto.TeamResponse{
		Id:        team.Id,
		TeamName:  team.Name,
		Members:   make([]*dto.TeamMemberResponse, len(team.Members)),
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}

	if leader, ok := usersById[team.LeaderId]; ok {
		res.TeamLeader = &dto.TeamLeaderResponse{Id: leader.Id, FullName: leader.FullName}
	}

	for i, m := range team.Members {
		member := &dto.TeamMemberResponse{Role: string(m.Role)}
		if u, ok := usersById[m.UserId]; ok {
			member.User = &dto.TeamMemberProfile{
				Id:       u.Id,
				FullName: u.FullName,
				Email:    u.Email,
				College:  u.College,
				Skills:   u.Skills,
			}
		}
		res.Members[i] = member
	}
	return res
}
