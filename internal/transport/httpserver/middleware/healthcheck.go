// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
)

// NewHealthCheck creates a Fiber healthcheck middleware with Kubernetes-style endpoints.
//
// Endpoints:
//   - GET /livez  - Liveness probe (app is running)
//   - GET /readyz - Readiness probe (language model server answered the last probe)
//
// A nil ready function reports ready. This middleware should be registered
// BEFORE other routes.
func NewHealthCheck(ready func() bool) fiber.Handler {
	return healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/livez",
		LivenessProbe: func(_ *fiber.Ctx) bool {
			return true
		},

		ReadinessEndpoint: "/readyz",
		ReadinessProbe: func(_ *fiber.Ctx) bool {
			if ready == nil {
				return true
			}

			return ready()
		},
	})
}
