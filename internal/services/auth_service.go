package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DemoUserName is the display name given to users who log in without signing up.
const DemoUserName = "Demo User"

// AuthService issues sessions. Credentials are accepted as given; nothing is
// stored beyond the session's in-memory state.
type AuthService struct {
	sessions *session.Registry
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(sessions *session.Registry, cfg *config.Config) *AuthService {
	return &AuthService{sessions: sessions, cfg: cfg, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if err := Wait(ctx, s.cfg.AuthDelay); err != nil {
		return nil, err
	}

	return s.startSession(ctx, models.User{Profile: models.UserProfile{
		ID:        "user-" + uuid.NewString(),
		FullName:  DemoUserName,
		Email:     email,
		CreatedAt: s.now(),
	}})
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := Wait(ctx, s.cfg.AuthDelay); err != nil {
		return nil, err
	}

	return s.startSession(ctx, models.User{Profile: models.UserProfile{
		ID:        "user-" + uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: s.now(),
	}})
}

// Logout resets the session's state and forgets the session.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) *store.State {
	state, _ := Dispatch(ctx, sess, store.Logout{})
	s.sessions.Delete(sess.ID)
	return state
}

func (s *AuthService) startSession(ctx context.Context, user models.User) (*dto.AuthResponse, error) {
	sess := s.sessions.Create()
	state, _ := Dispatch(ctx, sess, store.Login{User: user})

	token, expiresAt, err := s.generateAccessToken(sess.ID, &user)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		SessionID:   sess.ID,
		Guards:      state.Guards(),
		State:       state,
	}, nil
}

func (s *AuthService) generateAccessToken(sessionID string, user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.JWTSessionExpiry)
	claims := &session.Claims{
		SessionID: sessionID,
		Email:     user.Profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Profile.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
