package controller

import (
	"errors"

	"noteswise-be/internal/dto"
	"noteswise-be/internal/pkg/serverutils"
	"noteswise-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	GetAllByNote(ctx *fiber.Ctx) error
	CreateBulk(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type flashcardController struct {
	flashcardService service.IFlashcardService
}

func NewFlashcardController(flashcardService service.IFlashcardService) IFlashcardController {
	return &flashcardController{
		flashcardService: flashcardService,
	}
}

func (c *flashcardController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/flashcards")
	h.Use(auth)
	h.Get("", c.GetAll)
	h.Delete(":id", c.Delete)

	// Note-scoped flashcard routes
	n := r.Group("/notes/:noteId/flashcards")
	n.Use(auth)
	n.Get("", c.GetAllByNote)
	n.Post("", c.CreateBulk)
}

func (c *flashcardController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.flashcardService.GetAllForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list flashcards", res))
}

func (c *flashcardController) GetAllByNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Note not found"))
	}

	res, err := c.flashcardService.GetAllByNote(ctx.Context(), userId, noteId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Note not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list note flashcards", res))
}

func (c *flashcardController) CreateBulk(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Note not found"))
	}

	var req dto.CreateFlashcardsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flashcardService.CreateBulk(ctx.Context(), userId, noteId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Note not found"))
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create flashcards", res))
}

func (c *flashcardController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Flashcard not found"))
	}

	if err := c.flashcardService.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Flashcard not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete flashcard", nil))
}
