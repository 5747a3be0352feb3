package service

import (
	"context"
	"testing"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/repository"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Refresh(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.Profile{
		ID:       "33333333-3333-3333-3333-333333333333",
		Username: "maria",
	}
	require.NoError(t, testDB.Create(owner).Error)
	require.NoError(t, testDB.Create(&model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Birthday",
		Privacy:    model.PrivacyPublic,
		ShareToken: strPtr("tok-birthday"),
	}).Error)
	require.NoError(t, testDB.Create(&model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Secret",
		Privacy:    model.PrivacyPrivate,
		ShareToken: strPtr("tok-secret"),
	}).Error)

	sitemapService := NewSitemapService(repository.NewPreviewRepository(testDB), testAppConfig())

	// Before the first refresh only the static pages are listed.
	initial := string(sitemapService.Sitemap())
	assert.Contains(t, initial, "https://noto.space/about")
	assert.NotContains(t, initial, "tok-birthday")

	require.NoError(t, sitemapService.Refresh(context.Background()))

	refreshed := string(sitemapService.Sitemap())
	assert.Contains(t, refreshed, "https://noto.space/profile/maria")
	assert.Contains(t, refreshed, "https://noto.space/wishlist/tok-birthday")
	// Private wishlists never appear in the sitemap.
	assert.NotContains(t, refreshed, "tok-secret")
}

func TestSitemapService_RobotsTxt(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	sitemapService := NewSitemapService(repository.NewPreviewRepository(testDB), testAppConfig())

	robots := string(sitemapService.RobotsTxt())
	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Sitemap: https://noto.space/sitemap.xml")
}
