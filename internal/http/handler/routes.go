package handler

import (
	"github.com/gofiber/fiber/v2"

	"devtools/internal/cache"
	"devtools/internal/service"
)

// Services bundles everything the routes need. Keep handlers minimal and free
// of business logic; each one translates form/JSON input, calls a service and
// renders a fragment or JSON.
type Services struct {
	UUID      service.UUIDService
	JWT       service.JWTService
	Base64    service.Base64Service
	Hash      service.HashService
	Timestamp service.TimestampService
	Regex     service.RegexService
	Cron      service.CronService
	Snippets  service.SnippetService
	Usage     service.UsageService
	Store     cache.Cache
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints
	app.Get("/health", HealthCheck(svcs.Store))
	app.Get("/healthz", LivenessProbe())

	// Pages
	app.Get("/", Home())
	app.Get("/tools/uuid", ToolPage("uuid"))
	app.Get("/tools/jwt", ToolPage("jwt"))
	app.Get("/tools/base64", ToolPage("base64"))
	app.Get("/tools/hash", ToolPage("hash"))
	app.Get("/tools/timestamp", TimestampPage(svcs.Timestamp))
	app.Get("/tools/regex", ToolPage("regex"))
	app.Get("/tools/cron", ToolPage("cron"))

	// Tool actions (form-encoded POST, HTML fragment responses)
	app.Post("/tools/uuid/generate-v4", GenerateUUIDV4(svcs.UUID, svcs.Usage))
	app.Post("/tools/uuid/generate-v7", GenerateUUIDV7(svcs.UUID, svcs.Usage))
	app.Post("/tools/uuid/parse", ParseUUID(svcs.UUID, svcs.Usage))
	app.Post("/tools/jwt/decode", DecodeJWT(svcs.JWT, svcs.Usage))
	app.Post("/tools/jwt/verify", VerifyJWT(svcs.JWT, svcs.Usage))
	app.Post("/tools/base64/encode", EncodeBase64(svcs.Base64, svcs.Usage))
	app.Post("/tools/base64/decode", DecodeBase64(svcs.Base64, svcs.Usage))
	app.Post("/tools/hash/generate", GenerateHashes(svcs.Hash, svcs.Usage))
	app.Post("/tools/hash/password", GeneratePassword(svcs.Hash, svcs.Usage))
	app.Post("/tools/timestamp/convert", ConvertTimestamp(svcs.Timestamp, svcs.Usage))
	app.Post("/tools/regex/test", TestRegex(svcs.Regex, svcs.Usage))
	app.Post("/tools/cron/explain", ExplainCron(svcs.Cron, svcs.Usage))

	// Snippet sharing and usage API
	app.Post("/api/snippets", CreateSnippet(svcs.Snippets))
	app.Get("/s/:id", SnippetPage(svcs.Snippets))
	app.Get("/api/stats", GetStats(svcs.Usage))
	app.Get("/api/history", GetHistory(svcs.Usage))
}
