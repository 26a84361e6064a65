package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
)

// Recover returns a middleware that turns panics into a 500 JSON response.
func Recover(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())),
					zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
					zap.String("path", c.Path()),
				)

				err = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: "internal server error",
					Code:  "PANIC",
				})
			}
		}()

		return c.Next()
	}
}
