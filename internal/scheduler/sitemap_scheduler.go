package scheduler

import (
	"context"
	"time"

	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/pkg/logger"
	"github.com/robfig/cron/v3"
)

// SitemapScheduler rebuilds the cached sitemap once a day. New public
// wishlists and profiles show up to crawlers on the next run.
type SitemapScheduler struct {
	cron           *cron.Cron
	sitemapService service.SitemapService
}

func NewSitemapScheduler(sitemapService service.SitemapService) *SitemapScheduler {
	return &SitemapScheduler{
		cron:           cron.New(),
		sitemapService: sitemapService,
	}
}

func (s *SitemapScheduler) Start() error {
	// Daily at 04:00, well outside peak sharing hours.
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		s.refresh()
	})
	if err != nil {
		logger.Error("Failed to add cron job for sitemap refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Sitemap scheduler started (daily at 4:00 AM)", nil)

	// Populate immediately so crawlers never see the static-only sitemap
	// for long after a restart.
	go s.refresh()

	return nil
}

func (s *SitemapScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.sitemapService.Refresh(ctx); err != nil {
		logger.Error("Scheduled sitemap refresh failed", err)
		return
	}
}

func (s *SitemapScheduler) Stop() {
	logger.Info("Stopping sitemap scheduler...", nil)
	s.cron.Stop()
	logger.Info("Sitemap scheduler stopped", nil)
}
