package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has products")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDuplicateSlug    = errors.New("slug already in use")
	ErrDuplicateEmail   = errors.New("email already registered")
)

func pgErrCode(err error, code string) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == code
}

func isUniqueViolation(err error) bool     { return pgErrCode(err, "23505") }
func isForeignKeyViolation(err error) bool { return pgErrCode(err, "23503") }
