package controller

import (
	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SendOTP(ctx *fiber.Ctx) error
	VerifyOTP(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	cookie  SessionCookie
}

func NewAuthController(service service.IAuthService, cookie SessionCookie) IAuthController {
	return &authController{
		service: service,
		cookie:  cookie,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/send-otp", c.SendOTP)
	h.Post("/verify-otp", c.VerifyOTP)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return nil
}

func (c *authController) SendOTP(ctx *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.SendOTP(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any](constant.MsgOTPSent, nil))
}

func (c *authController) VerifyOTP(ctx *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	user, err := c.service.VerifyOTP(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse(constant.MsgRegistered, dto.UserEnvelope{User: user}))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	c.cookie.set(ctx, res.Token)
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgLoginSuccess, res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.cookie.clear(ctx)
	return ctx.JSON(serverutils.SuccessResponse[any](constant.MsgLogoutSuccess, nil))
}
