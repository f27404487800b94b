package middleware

import (
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/gofiber/fiber/v2"
)

// SessionRequired resolves the token's session id against the registry and
// binds the live session to the request. It must run after JWTProtected.
func SessionRequired(registry *session.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := session.ClaimsFromCtx(c)
		if err != nil {
			return unauthorized(c, "Unauthorized: "+err.Error())
		}
		sess, ok := registry.Get(claims.SessionID)
		if !ok {
			return unauthorized(c, "Session expired, please log in again")
		}
		if !sess.Store.Snapshot().IsAuthenticated {
			return unauthorized(c, "Not authenticated")
		}
		session.Bind(c, sess)
		return c.Next()
	}
}

// OnboardedRequired rejects sessions whose user has not finished onboarding.
func OnboardedRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := session.FromCtx(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}
		guards := sess.Store.Snapshot().Guards()
		if !guards.IsOnboarded {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:    true,
				Message:  "Complete onboarding first",
				Redirect: guards.Redirect,
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:    true,
		Message:  message,
		Redirect: "/login",
	})
}
