package service

import (
	"context"
	"fmt"
	"strings"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/logger"
	"teamsync-be/pkg/ai/reply"
	"teamsync-be/pkg/llm"
)

type ILearningService interface {
	Recommend(ctx context.Context, requester *entity.User, req *dto.LearningRequest) ([]dto.LearningRecommendation, error)
}

type learningService struct {
	llm    llm.LLMProvider
	schema *reply.Schema
	log    logger.ILogger
}

func NewLearningService(llmProvider llm.LLMProvider, log logger.ILogger) ILearningService {
	return &learningService{
		llm:    llmProvider,
		schema: reply.MustCompile(constant.LearningRecommendationsSchema),
		log:    log,
	}
}

func (s *learningService) Recommend(ctx context.Context, requester *entity.User, req *dto.LearningRequest) ([]dto.LearningRecommendation, error) {
	idea := strings.TrimSpace(req.ProjectIdea)
	if idea == "" {
		return nil, apperror.BadRequest(constant.MsgIdeaRequired)
	}

	skills := "None specified"
	if len(requester.Skills) > 0 {
		skills = strings.Join(requester.Skills, ", ")
	}

	text, err := s.llm.Generate(llm.WithOperation(ctx, "learning"), fmt.Sprintf(constant.LearningRecommendationsPromptV1, skills, idea))
	if err == nil {
		var recs []dto.LearningRecommendation
		if err = s.schema.Decode(ctx, text, &recs); err == nil {
			return recs, nil
		}
	}

	s.log.Warn("LEARNING", "AI recommendation failed", map[string]interface{}{
		"user_id": requester.Id.String(),
		"error":   err.Error(),
	})
	return nil, apperror.Upstream(constant.MsgLearningAIFailed, err)
}
