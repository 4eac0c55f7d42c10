package service

import (
	"context"
	"errors"
	"strings"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	FindSessionUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userId uuid.UUID, req *dto.UpdateMeRequest) (*dto.UserResponse, error)
	DomainMatch(ctx context.Context, requester *entity.User, query *dto.DomainMatchQuery) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) FindSessionUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *userService) UpdateMe(ctx context.Context, userId uuid.UUID, req *dto.UpdateMeRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if v := strings.TrimSpace(req.FullName); v != "" {
		user.FullName = v
	}
	if v := strings.TrimSpace(req.College); v != "" {
		user.College = v
	}
	if v := strings.TrimSpace(req.Roll); v != "" && v != user.Roll {
		taken, err := uow.UserRepository().FindOne(ctx,
			specification.ByRoll{Roll: v},
			specification.ExcludeID{ID: user.Id},
		)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if taken != nil {
			return nil, apperror.Conflict(constant.MsgRollTaken)
		}
		user.Roll = v
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Domains != nil {
		user.Domains = req.Domains
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.Conflict(constant.MsgRollTaken)
		}
		return nil, apperror.Internal(err)
	}

	return ToUserResponse(user), nil
}

// DomainMatch lists other users sharing the requested domain, or any of the requester's domains.
func (s *userService) DomainMatch(ctx context.Context, requester *entity.User, query *dto.DomainMatchQuery) ([]*dto.UserResponse, error) {
	specs := []specification.Specification{
		specification.ExcludeID{ID: requester.Id},
	}

	if domain := strings.TrimSpace(query.Domain); domain != "" {
		specs = append(specs, specification.DomainsContainAny{Domains: []string{domain}})
	} else {
		specs = append(specs, specification.DomainsContainAny{Domains: requester.Domains})
	}

	if term := strings.TrimSpace(query.Search); term != "" {
		specs = append(specs, specification.ProfileSearch{Term: term})
	}

	specs = append(specs, specification.OrderBy{Field: "full_name"})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return toUserResponses(users), nil
}
