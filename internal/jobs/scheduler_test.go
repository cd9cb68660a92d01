package jobs

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/service"
)

// Stop must return once no jobs are in flight instead of hanging on the
// shutdown path.
func TestScheduler_StartStop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := &config.AppConfig{}
	cfg.Upload.OrphanAge = 24 * time.Hour

	stats := service.NewStatsService(
		repository.NewProductRepository(mock),
		repository.NewOrderRepository(mock),
		repository.NewUserRepository(mock),
		nil,
		zerolog.Nop(),
	)

	s := NewScheduler(
		cfg,
		repository.NewSessionRepository(mock),
		repository.NewUploadRepository(mock),
		nil,
		stats,
		zerolog.Nop(),
	)
	require.NoError(t, s.Start())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduler stop did not return")
	}
}
