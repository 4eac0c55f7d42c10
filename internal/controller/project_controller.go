package controller

import (
	"errors"

	"teamsync-be/internal/constant"
	"teamsync-be/internal/dto"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/internal/pkg/serverutils"
	"teamsync-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type projectController struct {
	service service.IProjectService
	guard   fiber.Handler
}

func NewProjectController(service service.IProjectService, guard fiber.Handler) IProjectController {
	return &projectController{
		service: service,
		guard:   guard,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects", c.guard)
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Delete("/:id", c.Delete)
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest("Invalid form data")
	}

	fh, err := ctx.FormFile("image")
	switch {
	case err == nil:
		file, err := fh.Open()
		if err != nil {
			return apperror.BadRequest("Could not read uploaded image")
		}
		defer file.Close()

		req.Image = &dto.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        file,
		}
	case errors.Is(err, fasthttp.ErrMissingFile), errors.Is(err, fasthttp.ErrNoMultipartForm):
	default:
		return apperror.BadRequest("Invalid form data")
	}

	project, err := c.service.Create(ctx.UserContext(), serverutils.CurrentUser(ctx).Id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse(constant.MsgProjectCreated, dto.ProjectEnvelope{Project: project}))
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	projects, err := c.service.List(ctx.UserContext(), serverutils.CurrentUser(ctx).Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MsgProjectsFetched, dto.ProjectsEnvelope{Projects: projects}))
}

func (c *projectController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), serverutils.CurrentUser(ctx).Id, ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any](constant.MsgProjectDeleted, nil))
}
