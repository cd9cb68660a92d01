package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/security"
)

func newAuthService(t *testing.T) (*AuthService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := &config.AppConfig{}
	cfg.Security.JWTSecret = "test-secret"
	cfg.Security.AccessTTL = time.Hour
	cfg.Security.SessionTTL = 24 * time.Hour

	svc := NewAuthService(
		repository.NewUserRepository(mock),
		repository.NewSessionRepository(mock),
		cfg,
		zerolog.Nop(),
	)
	return svc, mock
}

func userRow(t *testing.T, id, email, password string, isAdmin bool, status models.UserStatus) *pgxmock.Rows {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "email", "password_hash", "is_admin", "status", "created_at", "updated_at"}).
		AddRow(id, email, hash, isAdmin, status, now, now)
}

func TestAuthService_Login_Admin(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("admin@shop.vn").
		WillReturnRows(userRow(t, "u1", "admin@shop.vn", "s3cret-pass", true, models.UserStatusActive))
	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(pgxmock.AnyArg(), "u1", "10.0.0.1", "test-agent", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := svc.Login(context.Background(), LoginInput{
		Email:     "Admin@Shop.VN",
		Password:  "s3cret-pass",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, "u1", result.User.ID)

	claims, err := security.ParseAccessToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.True(t, claims.IsAdmin)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A valid password on a non-admin account must fail closed with no
// session row written.
func TestAuthService_Login_NonAdminRejected(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("user@shop.vn").
		WillReturnRows(userRow(t, "u2", "user@shop.vn", "s3cret-pass", false, models.UserStatusActive))

	_, err := svc.Login(context.Background(), LoginInput{Email: "user@shop.vn", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrNotAdmin)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("admin@shop.vn").
		WillReturnRows(userRow(t, "u1", "admin@shop.vn", "right-pass", true, models.UserStatusActive))

	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@shop.vn", Password: "wrong-pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("ghost@shop.vn").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@shop.vn", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`FROM users WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("locked@shop.vn").
		WillReturnRows(userRow(t, "u3", "locked@shop.vn", "s3cret-pass", true, models.UserStatusLocked))

	_, err := svc.Login(context.Background(), LoginInput{Email: "locked@shop.vn", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrUserLocked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_EnsureBootstrapAdmin_SkipsWhenUsersExist(t *testing.T) {
	svc, mock := newAuthService(t)
	svc.cfg.Security.BootstrapAdminEmail = "admin@shop.vn"
	svc.cfg.Security.BootstrapAdminPassword = "s3cret-pass"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	require.NoError(t, svc.EnsureBootstrapAdmin(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
