package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localsKey = "session"

var ErrNoSession = errors.New("no session in context")

// Claims are the session token claims.
type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Bind stores s in the request locals.
func Bind(c *fiber.Ctx, s *Session) {
	c.Locals(localsKey, s)
}

// FromCtx returns the session bound by the session middleware.
func FromCtx(c *fiber.Ctx) (*Session, error) {
	s, ok := c.Locals(localsKey).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// ClaimsFromCtx extracts the verified token claims placed by the JWT middleware.
func ClaimsFromCtx(c *fiber.Ctx) (*Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.SessionID == "" {
		return nil, errors.New("missing sid claim")
	}
	return claims, nil
}
