package service

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

// With no cache client the dashboard falls through to a live count.
func TestStatsService_Dashboard_NoCache(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	svc := NewStatsService(
		repository.NewProductRepository(mock),
		repository.NewOrderRepository(mock),
		repository.NewUserRepository(mock),
		nil,
		zerolog.Nop(),
	)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`FROM orders`).
		WillReturnRows(pgxmock.NewRows([]string{"count", "coalesce"}).AddRow(40, int64(9800000)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, DashboardStats{
		TotalProducts: 25,
		TotalOrders:   40,
		TotalUsers:    12,
		TotalRevenue:  9800000,
	}, stats)

	require.NoError(t, mock.ExpectationsWereMet())
}
