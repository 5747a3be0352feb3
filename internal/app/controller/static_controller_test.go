package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/repository"
	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/noto-space/noto-web/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStaticTest(t *testing.T) (*gin.Engine, service.SitemapService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.Profile{
		ID:       "22222222-2222-2222-2222-222222222222",
		Username: "sam",
	}
	require.NoError(t, testDB.Create(owner).Error)
	require.NoError(t, testDB.Create(&model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Holiday",
		Privacy:    model.PrivacyPublic,
		ShareToken: strPtr("tok-holiday"),
	}).Error)
	require.NoError(t, testDB.Create(&model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Hidden",
		Privacy:    model.PrivacyPrivate,
		ShareToken: strPtr("tok-hidden"),
	}).Error)

	previewRepo := repository.NewPreviewRepository(testDB)
	sitemapService := service.NewSitemapService(previewRepo, testAppConfig())
	controller := NewStaticController(sitemapService, testAppConfig())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(render.Templates())
	router.GET("/", controller.Home)
	router.GET("/about", controller.About)
	router.GET("/terms", controller.Terms)
	router.GET("/faq", controller.FAQ)
	router.GET("/support", controller.Support)
	router.GET("/sitemap.xml", controller.Sitemap)
	router.GET("/robots.txt", controller.Robots)

	return router, sitemapService
}

func TestStaticController_Pages(t *testing.T) {
	router, _ := setupStaticTest(t)

	for _, path := range []string{"/", "/about", "/terms", "/faq", "/support"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "Noto", path)
	}
}

func TestStaticController_Sitemap_OnlyPublicWishlists(t *testing.T) {
	router, sitemapService := setupStaticTest(t)
	require.NoError(t, sitemapService.Refresh(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, "<loc>https://noto.space</loc>")
	assert.Contains(t, body, "<loc>https://noto.space/profile/sam</loc>")
	assert.Contains(t, body, "<loc>https://noto.space/wishlist/tok-holiday</loc>")
	assert.NotContains(t, body, "tok-hidden")
}

func TestStaticController_Robots(t *testing.T) {
	router, _ := setupStaticTest(t)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Sitemap: https://noto.space/sitemap.xml")
}
