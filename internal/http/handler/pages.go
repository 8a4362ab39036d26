package handler

import (
	"github.com/gofiber/fiber/v2"

	"devtools/internal/model"
)

// Home renders the landing page with the tool overview cards.
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Tools":      model.Tools,
			"ActiveTool": "home",
		}, "layouts/main")
	}
}

// ToolPage renders the full page for one tool inside the main layout.
func ToolPage(toolID string) fiber.Handler {
	tool := model.ToolByID(toolID)
	return func(c *fiber.Ctx) error {
		if tool == nil {
			return fiber.ErrNotFound
		}
		return c.Render("tools/"+tool.ID, fiber.Map{
			"Tools":      model.Tools,
			"ActiveTool": tool.ID,
			"PageTitle":  tool.Name,
		}, "layouts/main")
	}
}
