package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/service"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/storage"
)

// Scheduler runs the housekeeping tasks: expired sessions, orphaned
// product uploads and the dashboard stats cache.
type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.AppConfig
	sessions *repository.SessionRepository
	uploads  *repository.UploadRepository
	store    *storage.ObjectStore
	stats    *service.StatsService
	log      zerolog.Logger
}

func NewScheduler(
	cfg *config.AppConfig,
	sessions *repository.SessionRepository,
	uploads *repository.UploadRepository,
	store *storage.ObjectStore,
	stats *service.StatsService,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		cfg:      cfg,
		sessions: sessions,
		uploads:  uploads,
		store:    store,
		stats:    stats,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */15 * * * *", s.purgeExpiredSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.purgeOrphanUploads); err != nil { // nightly, off-peak
		return err
	}
	if _, err := s.cron.AddFunc("0 * * * * *", s.refreshStats); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for in-flight jobs to finish, bounded
// so a stuck purge cannot block shutdown.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler jobs still running at shutdown")
	}
}

func (s *Scheduler) purgeExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("expired session purge failed")
		return
	}
	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}

// purgeOrphanUploads removes product images that were uploaded but never
// attached to a product. The object is removed first; the row is kept if
// the removal fails so a later run can retry.
func (s *Scheduler) purgeOrphanUploads() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.cfg.Upload.OrphanAge)
	orphans, err := s.uploads.ListOrphanProductUploads(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("orphan upload scan failed")
		return
	}

	removed := 0
	for _, orphan := range orphans {
		if err := s.store.Remove(ctx, orphan.ObjectKey); err != nil {
			s.log.Warn().Err(err).Str("object_key", orphan.ObjectKey).Msg("orphan object removal failed")
			continue
		}
		if err := s.uploads.Delete(ctx, orphan.ID); err != nil {
			s.log.Warn().Err(err).Str("upload_id", orphan.ID).Msg("orphan upload row delete failed")
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("orphan uploads purged")
	}
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.stats.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("stats refresh failed")
	}
}
