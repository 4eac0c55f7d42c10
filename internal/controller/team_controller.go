package controller

import (
	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITeamController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Details(ctx *fiber.Ctx) error
	Suggestions(ctx *fiber.Ctx) error
}

type teamController struct {
	service service.ITeamService
	guard   fiber.Handler
}

func NewTeamController(service service.ITeamService, guard fiber.Handler) ITeamController {
	return &teamController{
		service: service,
		guard:   guard,
	}
}

func (c *teamController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/teams", c.guard)
	h.Post("/generate", c.Generate)
	h.Post("/create", c.Create)
	h.Get("/details", c.Details)
	h.Get("/suggestions", c.Suggestions)
}

func (c *teamController) Generate(ctx *fiber.Ctx) error {
	teammates, err := c.service.GenerateCandidates(ctx.UserContext(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgTeamGenerated, dto.TeammatesEnvelope{Teammates: teammates}))
}

func (c *teamController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	team, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse(constant.MsgTeamCreated, dto.TeamEnvelope{Team: team}))
}

func (c *teamController) Details(ctx *fiber.Ctx) error {
	team, err := c.service.Details(ctx.UserContext(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgTeamFetched, dto.TeamEnvelope{Team: team}))
}

func (c *teamController) Suggestions(ctx *fiber.Ctx) error {
	suggestions, err := c.service.Suggestions(ctx.UserContext(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgSuggestionsOK, dto.SuggestionsEnvelope{Suggestions: suggestions}))
}
