// Package webapi wires the HTTP surface of the onboarding service.
// It is organized into sub-packages:
// - account: account request registration, drafts and documents
// - validation: single-field and document validation
// - common: error responses and request binding
package webapi

import (
	"strings"

	_ "github.com/amirasaad/onboarding/docs"
	"github.com/amirasaad/onboarding/pkg/app"
	accountweb "github.com/amirasaad/onboarding/webapi/account"
	"github.com/amirasaad/onboarding/webapi/common"
	validationweb "github.com/amirasaad/onboarding/webapi/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// multipartOverhead is added to the upload cap to leave room for the JSON
// part and multipart boundaries.
const multipartOverhead = 1 << 20

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	bodyLimit := fiber.DefaultBodyLimit
	if app.Config.Storage != nil && app.Config.Storage.MaxUploadBytes > 0 {
		bodyLimit = int(app.Config.Storage.MaxUploadBytes) + multipartOverhead
	}

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
		BodyLimit:    bodyLimit,
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	if rl := app.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        rl.MaxRequests,
			Expiration: rl.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					// Take the first IP in the chain
					if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
						return strings.TrimSpace(forwardedFor[:commaIndex])
					}
					return strings.TrimSpace(forwardedFor)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Rate limit exceeded")
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/health", Health)
	fiberApp.Get("/metrics", adaptor.HTTPHandler(app.Deps.Metrics.Handler()))

	api := fiberApp.Group("/api/v1")
	api.Get("/health", Health)
	accountweb.Routes(api, app.RegistrationService, app.Validate)
	validationweb.Routes(api, app.FieldValidator, app.Deps.Metrics)
	return fiberApp
}

// Health reports liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "UP"})
}
