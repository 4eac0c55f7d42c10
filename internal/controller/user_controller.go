package controller

import (
	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetMe(ctx *fiber.Ctx) error
	UpdateMe(ctx *fiber.Ctx) error
	DomainMatch(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
	guard   fiber.Handler
}

func NewUserController(service service.IUserService, guard fiber.Handler) IUserController {
	return &userController{
		service: service,
		guard:   guard,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users", c.guard)
	h.Get("/me", c.GetMe)
	h.Put("/me", c.UpdateMe)
	h.Get("/domain-match", c.DomainMatch)
}

func (c *userController) GetMe(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	if user == nil {
		return apperror.Unauthorized("Unauthorized request. No token provided.")
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgProfileFetched, dto.UserEnvelope{
		User: service.ToUserResponse(user),
	}))
}

func (c *userController) UpdateMe(ctx *fiber.Ctx) error {
	var req dto.UpdateMeRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	user, err := c.service.UpdateMe(ctx.UserContext(), serverutils.CurrentUser(ctx).Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgProfileUpdated, dto.UserEnvelope{User: user}))
}

func (c *userController) DomainMatch(ctx *fiber.Ctx) error {
	var query dto.DomainMatchQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperror.BadRequest("Invalid query parameters")
	}

	users, err := c.service.DomainMatch(ctx.UserContext(), serverutils.CurrentUser(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgUsersFetched, dto.UsersEnvelope{Users: users}))
}
