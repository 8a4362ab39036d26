package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"devtools/internal/service"
)

// countParam parses the count form field, defaulting to 1 when omitted.
// A non-numeric value is reported as a validation failure, consistent with
// the service-level range check.
func countParam(c *fiber.Ctx) (int, error) {
	raw := c.FormValue("count", "1")
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.Error{Kind: service.KindValidation, Message: "Count must be a number"}
	}
	return count, nil
}

// GenerateUUIDV4 handles POST /tools/uuid/generate-v4.
func GenerateUUIDV4(svc service.UUIDService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := countParam(c)
		if err != nil {
			return renderToolError(c, err)
		}

		res, err := svc.GenerateV4(count)
		_ = usage.Record(c.UserContext(), "uuid", "generate-v4", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/uuid_result", fiber.Map{
			"Success": true,
			"Result":  res,
		})
	}
}

// GenerateUUIDV7 handles POST /tools/uuid/generate-v7.
func GenerateUUIDV7(svc service.UUIDService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := countParam(c)
		if err != nil {
			return renderToolError(c, err)
		}

		res, err := svc.GenerateV7(count)
		_ = usage.Record(c.UserContext(), "uuid", "generate-v7", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/uuid_result", fiber.Map{
			"Success": true,
			"Result":  res,
		})
	}
}

// ParseUUID handles POST /tools/uuid/parse.
func ParseUUID(svc service.UUIDService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Parse(c.FormValue("uuid"))
		_ = usage.Record(c.UserContext(), "uuid", "parse", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/uuid_parse", fiber.Map{
			"Success": true,
			"Result":  res,
		})
	}
}
