package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"sync"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/repository"
	"github.com/noto-space/noto-web/pkg/logger"
)

// SitemapService builds the sitemap served to crawlers. Only public
// wishlists are listed; unlisted and private ones stay out, consistent
// with the noindex rule in the link metadata.
type SitemapService interface {
	Refresh(ctx context.Context) error
	Sitemap() []byte
	RobotsTxt() []byte
}

type sitemapService struct {
	previewRepo repository.PreviewRepository
	app         config.AppConfig

	mu      sync.RWMutex
	sitemap []byte
}

func NewSitemapService(previewRepo repository.PreviewRepository, app config.AppConfig) SitemapService {
	s := &sitemapService{
		previewRepo: previewRepo,
		app:         app,
	}
	// Start with the static pages so the endpoint is never empty before
	// the first refresh completes.
	s.sitemap = s.build(nil, nil)
	return s
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *sitemapService) Refresh(ctx context.Context) error {
	logger.Debug("Refreshing sitemap", nil)

	tokens, err := s.previewRepo.ListPublicWishlistTokens(ctx)
	if err != nil {
		logger.Error("Failed to list public wishlists for sitemap", err, nil)
		return err
	}

	usernames, err := s.previewRepo.ListUsernames(ctx)
	if err != nil {
		logger.Error("Failed to list profiles for sitemap", err, nil)
		return err
	}

	built := s.build(usernames, tokens)

	s.mu.Lock()
	s.sitemap = built
	s.mu.Unlock()

	logger.Info("Sitemap refreshed", map[string]interface{}{
		"profiles":  len(usernames),
		"wishlists": len(tokens),
	})
	return nil
}

func (s *sitemapService) build(usernames, tokens []string) []byte {
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, path := range []string{"", "/about", "/faq", "/support", "/terms"} {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.app.BaseURL + path})
	}
	for _, username := range usernames {
		set.URLs = append(set.URLs, sitemapURL{Loc: fmt.Sprintf("%s/profile/%s", s.app.BaseURL, username)})
	}
	for _, token := range tokens {
		set.URLs = append(set.URLs, sitemapURL{Loc: fmt.Sprintf("%s/wishlist/%s", s.app.BaseURL, token)})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		// Marshalling a static struct cannot realistically fail; keep the
		// previous sitemap if it somehow does.
		logger.Error("Failed to marshal sitemap", err, nil)
		return s.Sitemap()
	}

	return append([]byte(xml.Header), body...)
}

func (s *sitemapService) Sitemap() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sitemap
}

func (s *sitemapService) RobotsTxt() []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", s.app.BaseURL))
}
