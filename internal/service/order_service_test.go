package service

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

func newOrderService(t *testing.T) (*OrderService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewOrderService(repository.NewOrderRepository(mock)), mock
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectExec(`UPDATE orders SET status = \$2 WHERE id = \$1`).
		WithArgs("o1", models.OrderStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, svc.UpdateStatus(context.Background(), "o1", models.OrderStatusConfirmed))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Unknown status values fail validation before any database write.
func TestOrderService_UpdateStatus_RejectsUnknown(t *testing.T) {
	svc, mock := newOrderService(t)

	err := svc.UpdateStatus(context.Background(), "o1", "refunded")
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, mock.ExpectationsWereMet())
}
