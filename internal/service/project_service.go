package service

import (
	"context"
	"strconv"
	"strings"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/metrics"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/pkg/media"

	"github.com/google/uuid"
)

const MaxProjectImageSize = 5 * 1024 * 1024

type IProjectService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ProjectResponse, error)
	Delete(ctx context.Context, ownerId uuid.UUID, rawId string) error
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
	mediaHost  media.Host
	log        logger.ILogger
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, mediaHost media.Host, log logger.ILogger) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
		mediaHost:  mediaHost,
		log:        log,
	}
}

// parseTags splits a comma separated list, trimming entries and dropping empties.
func parseTags(raw string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseTeamSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperror.BadRequest("Team size must be a positive number")
	}
	return n, nil
}

func (s *projectService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.BadRequest(constant.MsgTitleRequired)
	}
	if req.Image == nil {
		return nil, apperror.BadRequest(constant.MsgImageRequired)
	}
	if req.Image.Size > MaxProjectImageSize {
		return nil, apperror.BadRequest("Image must be 5MB or smaller")
	}
	if !strings.HasPrefix(req.Image.ContentType, "image/") {
		return nil, apperror.BadRequest("Only image files are allowed")
	}

	teamSize, err := parseTeamSize(req.TeamSize)
	if err != nil {
		return nil, err
	}

	asset, err := s.mediaHost.Upload(ctx, media.UploadInput{
		Filename:    req.Image.Filename,
		ContentType: req.Image.ContentType,
		Size:        req.Image.Size,
		Body:        req.Image.Body,
	})
	metrics.RecordMedia("upload", err)
	if err != nil {
		return nil, apperror.Upstream(constant.MsgImageUploadFailed, err)
	}

	project := &entity.Project{
		Id:          uuid.New(),
		OwnerId:     ownerId,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Domain:      strings.TrimSpace(req.Domain),
		Tags:        parseTags(req.Tags),
		Github:      strings.TrimSpace(req.Github),
		Live:        strings.TrimSpace(req.Live),
		TeamSize:    teamSize,
		Image: entity.ProjectImage{
			PublicId: asset.PublicId,
			URL:      asset.URL,
		},
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		// The row never existed, so the uploaded image is an orphan.
		if delErr := s.mediaHost.Delete(ctx, asset.PublicId); delErr != nil {
			s.log.Warn("PROJECT", "Failed to remove orphaned image", map[string]interface{}{
				"public_id": asset.PublicId,
				"error":     delErr.Error(),
			})
		}
		return nil, apperror.Internal(err)
	}

	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, ownerId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	projects, err := uow.ProjectRepository().FindAll(ctx, specification.OwnedBy{OwnerID: ownerId})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = toProjectResponse(p)
	}
	return res, nil
}

// Delete removes the hosted image first, then the row. A failed row delete
// after a successful image delete is not compensated.
func (s *projectService) Delete(ctx context.Context, ownerId uuid.UUID, rawId string) error {
	id, err := uuid.Parse(rawId)
	if err != nil {
		return apperror.NotFound(constant.MsgProjectNotFound)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Internal(err)
	}
	if project == nil {
		return apperror.NotFound(constant.MsgProjectNotFound)
	}
	if project.OwnerId != ownerId {
		return apperror.Forbidden(constant.MsgProjectForbidden)
	}

	err = s.mediaHost.Delete(ctx, project.Image.PublicId)
	metrics.RecordMedia("delete", err)
	if err != nil {
		return apperror.Upstream(constant.MsgImageDeleteFailed, err)
	}

	if err := uow.ProjectRepository().Delete(ctx, project.Id); err != nil {
		s.log.Error("PROJECT", "Image removed but project row delete failed", map[string]interface{}{
			"project_id": project.Id.String(),
			"error":      err,
		})
		return apperror.Internal(err)
	}

	return nil
}
