package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"devtools/internal/model"
	"devtools/internal/service"
)

// checkboxOn reports whether an HTML checkbox form field was checked.
func checkboxOn(c *fiber.Ctx, name string) bool {
	v := c.FormValue(name)
	return v == "on" || v == "true" || v == "1"
}

// EncodeBase64 handles POST /tools/base64/encode.
func EncodeBase64(svc service.Base64Service, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Encode(c.FormValue("input"), checkboxOn(c, "urlSafe"))
		_ = usage.Record(c.UserContext(), "base64", "encode", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/base64_result", fiber.Map{"Success": true, "Result": res})
	}
}

// DecodeBase64 handles POST /tools/base64/decode.
func DecodeBase64(svc service.Base64Service, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Decode(c.FormValue("input"), checkboxOn(c, "urlSafe"))
		_ = usage.Record(c.UserContext(), "base64", "decode", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/base64_result", fiber.Map{"Success": true, "Result": res})
	}
}

// GenerateHashes handles POST /tools/hash/generate.
func GenerateHashes(svc service.HashService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Generate(c.FormValue("input"))
		_ = usage.Record(c.UserContext(), "hash", "generate", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/hash_result", fiber.Map{"Success": true, "Result": res})
	}
}

// GeneratePassword handles POST /tools/hash/password.
func GeneratePassword(svc service.HashService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		length, err := strconv.Atoi(c.FormValue("length", "16"))
		if err != nil {
			return renderToolError(c, &service.Error{Kind: service.KindValidation, Message: "Length must be a number"})
		}

		res, err := svc.Password(length)
		_ = usage.Record(c.UserContext(), "hash", "password", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/password_result", fiber.Map{"Success": true, "Result": res})
	}
}

// ConvertTimestamp handles POST /tools/timestamp/convert.
func ConvertTimestamp(svc service.TimestampService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Convert(c.FormValue("input"))
		_ = usage.Record(c.UserContext(), "timestamp", "convert", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/timestamp_result", fiber.Map{"Success": true, "Result": res})
	}
}

// TimestampPage renders the timestamp tool page with the current instant.
func TimestampPage(svc service.TimestampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("tools/timestamp", fiber.Map{
			"Tools":      model.Tools,
			"ActiveTool": "timestamp",
			"PageTitle":  "Timestamp",
			"Now":        svc.Now(),
		}, "layouts/main")
	}
}

// TestRegex handles POST /tools/regex/test.
func TestRegex(svc service.RegexService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Test(c.FormValue("pattern"), c.FormValue("input"), checkboxOn(c, "ignoreCase"))
		_ = usage.Record(c.UserContext(), "regex", "test", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/regex_result", fiber.Map{"Success": true, "Result": res})
	}
}

// ExplainCron handles POST /tools/cron/explain.
func ExplainCron(svc service.CronService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Explain(c.FormValue("expression"))
		_ = usage.Record(c.UserContext(), "cron", "explain", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/cron_result", fiber.Map{"Success": true, "Result": res})
	}
}
