package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

func TestCategoryRepository_List(t *testing.T) {
	mock := newMock(t)
	r := NewCategoryRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`LEFT JOIN products p ON p\.category_id = c\.id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug", "product_count", "created_at", "updated_at"}).
			AddRow("c1", "Áo", "ao", 4, now, now).
			AddRow("c2", "Quần", "quan", 0, now, now))

	cats, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	require.Equal(t, 4, cats[0].ProductCount)
	require.Equal(t, "quan", cats[1].Slug)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_DuplicateSlug(t *testing.T) {
	mock := newMock(t)
	r := NewCategoryRepository(mock)
	c := models.Category{ID: "c1", Name: "Áo", Slug: "ao"}

	mock.ExpectExec(`INSERT INTO categories`).
		WithArgs(c.ID, c.Name, c.Slug).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(context.Background(), c), ErrDuplicateSlug)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Delete(t *testing.T) {
	mock := newMock(t)
	r := NewCategoryRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "c1"))

	// products still reference the category
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs("c2").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, r.Delete(ctx, "c2"), ErrCategoryInUse)

	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, "missing"), ErrCategoryNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
