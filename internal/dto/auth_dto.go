package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	SessionID   string       `json:"session_id"`
	Guards      store.Guards `json:"guards"`
	State       *store.State `json:"state"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	Email     string       `json:"email"`
	ExpiresAt time.Time    `json:"expires_at"`
	Guards    store.Guards `json:"guards"`
}

type ErrorResponse struct {
	Error    bool   `json:"error"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	LogSink     string `json:"log_sink"`
	Sessions    int    `json:"sessions"`
	CatalogSize int    `json:"catalog_size"`
}
