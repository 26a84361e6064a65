package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger returns a middleware that logs HTTP requests.
// Analysis requests are slow by nature, so successful ones are logged at INFO.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request error", fields...)
		case c.Method() == fiber.MethodPost:
			logger.Info("request completed", fields...)
		default:
			logger.Debug("request completed", fields...)
		}

		return err
	}
}
