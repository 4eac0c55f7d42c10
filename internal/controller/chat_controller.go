package controller

import (
	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	guard   fiber.Handler
}

func NewChatController(service service.IChatService, guard fiber.Handler) IChatController {
	return &chatController{
		service: service,
		guard:   guard,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chats", c.guard)
	h.Get("/", c.List)
	h.Post("/send", c.Send)
	h.Get("/:chatId", c.History)
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	chats, err := c.service.List(ctx.UserContext(), serverutils.CurrentUser(ctx).Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgChatsFetched, dto.ChatsEnvelope{Chats: chats}))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	chat, err := c.service.History(ctx.UserContext(), serverutils.CurrentUser(ctx).Id, ctx.Params("chatId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgChatFetched, dto.ChatEnvelope{Chat: chat}))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.UserContext(), serverutils.CurrentUser(ctx).Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgChatReplied, res))
}
