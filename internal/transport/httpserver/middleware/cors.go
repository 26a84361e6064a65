package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the web page to be served from another origin.
// origins is a comma separated list; empty means any origin.
func CORS(origins string) fiber.Handler {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: strings.Join([]string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderXRequestID,
		}, ","),
		ExposeHeaders: fiber.HeaderXRequestID,
	})
}
