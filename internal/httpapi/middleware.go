package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skarut/landing-api/internal/auth"
)

// TokenValidator validates a raw bearer token and returns its claims
type TokenValidator interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// GateConfig configures the auth gate applied to protected routes
type GateConfig struct {
	Validator  TokenValidator
	ContextKey string
	AuthScheme string
	Logger     auth.Logger
}

// TokenGate guards protected routes. A missing Authorization header is
// rejected with 401; a present but invalid token (bad signature, expired,
// malformed) with 403. The client never learns which check failed. Valid
// claims are stored in the request locals under ContextKey.
func TokenGate(cfg GateConfig) fiber.Handler {
	if cfg.Validator == nil {
		panic("httpapi: token gate configuration requires a Validator")
	}
	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}

	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "missing authentication token",
			})
		}

		// legacy clients send the bare token, newer ones prefix the scheme.
		// The scheme only counts when followed by a space separator.
		if l := len(cfg.AuthScheme); len(raw) > l+1 && raw[l] == ' ' && strings.EqualFold(raw[:l], cfg.AuthScheme) {
			raw = strings.TrimSpace(raw[l+1:])
		}

		claims, err := cfg.Validator.Validate(raw)
		if err != nil {
			cfg.Logger.Debug("token gate rejected request", "error", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "invalid authentication token",
			})
		}

		c.Locals(cfg.ContextKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the claims the gate attached to the request
func ClaimsFromCtx(c *fiber.Ctx, key string) (*auth.Claims, bool) {
	claims, ok := c.Locals(key).(*auth.Claims)
	return claims, ok
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
