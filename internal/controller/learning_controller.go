package controller

import (
	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILearningController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
}

type learningController struct {
	service service.ILearningService
	guard   fiber.Handler
}

func NewLearningController(service service.ILearningService, guard fiber.Handler) ILearningController {
	return &learningController{
		service: service,
		guard:   guard,
	}
}

func (c *learningController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/learning", c.guard)
	h.Post("/recommendations", c.Recommend)
}

func (c *learningController) Recommend(ctx *fiber.Ctx) error {
	var req dto.LearningRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	recs, err := c.service.Recommend(ctx.UserContext(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgLearningOK, dto.RecommendationsEnvelope{Recommendations: recs}))
}
