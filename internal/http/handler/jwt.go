package handler

import (
	"github.com/gofiber/fiber/v2"

	"devtools/internal/service"
)

// DecodeJWT handles POST /tools/jwt/decode.
func DecodeJWT(svc service.JWTService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Decode(c.FormValue("token"))
		_ = usage.Record(c.UserContext(), "jwt", "decode", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/jwt_decode", fiber.Map{
			"Success": true,
			"Result":  res,
		})
	}
}

// VerifyJWT handles POST /tools/jwt/verify.
func VerifyJWT(svc service.JWTService, usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Verify(c.FormValue("token"), c.FormValue("secret"))
		_ = usage.Record(c.UserContext(), "jwt", "verify", err == nil)
		if err != nil {
			return renderToolError(c, err)
		}
		return c.Render("partials/jwt_verify", fiber.Map{
			// Valid doubles as the discriminator for verification fragments.
			"Success": res.Valid,
			"Result":  res,
		})
	}
}
