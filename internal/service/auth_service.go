package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/ids"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAdmin is the authorization failure for valid credentials
	// whose identity lacks the administrator flag. No session or token
	// is ever created on this path.
	ErrNotAdmin   = errors.New("account has no administrator access")
	ErrUserLocked = errors.New("account is locked")
)

type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(
	users *repository.UserRepository,
	sessions *repository.SessionRepository,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, sessions: sessions, cfg: cfg, log: log}
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	AccessToken string
	User        models.User
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return LoginResult{}, ErrUserLocked
	}
	if !user.IsAdmin {
		s.log.Warn().Str("email", email).Msg("non-admin login rejected")
		return LoginResult{}, ErrNotAdmin
	}

	session := models.Session{
		ID:        ids.New(),
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		ExpiresAt: time.Now().Add(s.cfg.Security.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret, user.ID, session.ID, user.IsAdmin, s.cfg.Security.AccessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{AccessToken: token, User: user}, nil
}

// Logout drops the session row unconditionally; an unknown session id is
// not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// EnsureBootstrapAdmin creates the configured administrator account when
// the users table is empty. Runs once at startup; a no-op otherwise.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := strings.TrimSpace(strings.ToLower(s.cfg.Security.BootstrapAdminEmail))
	password := s.cfg.Security.BootstrapAdminPassword
	if email == "" || password == "" {
		return nil
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	s.log.Info().Str("email", email).Msg("bootstrap administrator created")
	return nil
}
