package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const secret = "middleware-secret"

func token(t *testing.T, sid string, exp time.Time) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &session.Claims{
		SessionID:        sid,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func newApp(registry *session.Registry) *fiber.App {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: secret}
	app.Get("/open", JWTProtected(cfg), SessionRequired(registry), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/onboarded", JWTProtected(cfg), SessionRequired(registry), OnboardedRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func status(t *testing.T, app *fiber.App, path, bearer string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestSessionMiddleware(t *testing.T) {
	registry := session.NewRegistry(store.NewReducer(catalog.Default(), nil), time.Hour, nil)
	sess := registry.Create()
	sess.Store.Dispatch(store.Login{User: models.User{Profile: models.UserProfile{ID: "u-1"}}})
	app := newApp(registry)
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		path   string
		bearer string
		want   int
	}{
		{"no token", "/open", "", http.StatusUnauthorized},
		{"expired token", "/open", token(t, sess.ID, time.Now().Add(-time.Minute)), http.StatusUnauthorized},
		{"unknown session", "/open", token(t, "gone", future), http.StatusUnauthorized},
		{"live session", "/open", token(t, sess.ID, future), http.StatusNoContent},
		{"not onboarded", "/onboarded", token(t, sess.ID, future), http.StatusForbidden},
	}
	for _, tc := range cases {
		if got := status(t, app, tc.path, tc.bearer); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, got, tc.want)
		}
	}

	sess.Store.Dispatch(store.CompleteOnboarding{Data: models.OnboardingData{}})
	if got := status(t, app, "/onboarded", token(t, sess.ID, future)); got != http.StatusNoContent {
		t.Fatalf("onboarded: status = %d, want 204", got)
	}
}

func TestUnauthenticatedSessionRejected(t *testing.T) {
	registry := session.NewRegistry(store.NewReducer(catalog.Default(), nil), time.Hour, nil)
	sess := registry.Create()
	app := newApp(registry)

	if got := status(t, app, "/open", token(t, sess.ID, time.Now().Add(time.Hour))); got != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}
