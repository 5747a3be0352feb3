package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/internal/render"
)

// StaticController serves the fixed marketing pages and the crawler
// endpoints. No database access happens here; the sitemap is read from
// the in-memory cache maintained by the scheduler.
type StaticController struct {
	sitemapService service.SitemapService
	app            config.AppConfig
}

func NewStaticController(sitemapService service.SitemapService, app config.AppConfig) *StaticController {
	return &StaticController{
		sitemapService: sitemapService,
		app:            app,
	}
}

func (ctrl *StaticController) Home(c *gin.Context) {
	ctrl.page(c, "home.html", ctrl.app.BrandName)
}

func (ctrl *StaticController) About(c *gin.Context) {
	ctrl.page(c, "about.html", "About")
}

func (ctrl *StaticController) Terms(c *gin.Context) {
	ctrl.page(c, "terms.html", "Terms of Service")
}

func (ctrl *StaticController) FAQ(c *gin.Context) {
	ctrl.page(c, "faq.html", "FAQ")
}

func (ctrl *StaticController) Support(c *gin.Context) {
	ctrl.page(c, "support.html", "Support")
}

func (ctrl *StaticController) page(c *gin.Context, template, title string) {
	c.HTML(http.StatusOK, template, render.StaticPage{
		Title:    title,
		Brand:    ctrl.app.BrandName,
		StoreURL: ctrl.app.AppStoreURL,
	})
}

// Sitemap serves the cached sitemap
// GET /sitemap.xml
func (ctrl *StaticController) Sitemap(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml; charset=utf-8", ctrl.sitemapService.Sitemap())
}

// Robots serves the robots policy
// GET /robots.txt
func (ctrl *StaticController) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", ctrl.sitemapService.RobotsTxt())
}
