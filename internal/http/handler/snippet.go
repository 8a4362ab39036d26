package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"devtools/internal/model"
	"devtools/internal/service"
)

// snippetRequest is the JSON body of POST /api/snippets.
type snippetRequest struct {
	Tool    string `json:"tool"`
	Content string `json:"content"`
}

// snippetResponse is the JSON reply carrying the share URL.
type snippetResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateSnippet handles POST /api/snippets.
func CreateSnippet(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req snippetRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		snip, err := svc.Create(c.UserContext(), req.Tool, req.Content)
		if err != nil {
			var toolErr *service.Error
			if errors.As(err, &toolErr) && toolErr.Kind == service.KindValidation {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", toolErr.Message)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(snippetResponse{
			ID:  snip.ID,
			URL: "/s/" + snip.ID,
		})
	}
}

// SnippetPage handles GET /s/:id, rendering the shared snippet.
func SnippetPage(svc service.SnippetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snip, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrSnippetNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "snippet not found or expired")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Render("snippet", fiber.Map{
			"Tools":      model.Tools,
			"ActiveTool": snip.Tool,
			"PageTitle":  "Shared snippet",
			"Snippet":    snip,
		}, "layouts/main")
	}
}

// GetStats handles GET /api/stats, returning per-tool usage counters.
func GetStats(svc service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"stats": stats})
	}
}

// GetHistory handles GET /api/history, returning the recent invocation log.
func GetHistory(svc service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.Recent(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"history": entries})
	}
}
