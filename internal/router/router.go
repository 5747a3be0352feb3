package router

import (
	"github.com/gin-gonic/gin"
	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/controller"
	"github.com/noto-space/noto-web/internal/middleware"
	"github.com/noto-space/noto-web/internal/render"
)

type Router struct {
	previewImageController *controller.PreviewImageController
	pageController         *controller.PageController
	staticController       *controller.StaticController
	config                 *config.Config
}

func NewRouter(
	previewImageController *controller.PreviewImageController,
	pageController *controller.PageController,
	staticController *controller.StaticController,
	cfg *config.Config,
) *Router {
	return &Router{
		previewImageController: previewImageController,
		pageController:         pageController,
		staticController:       staticController,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.SetHTMLTemplate(render.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Noto web is running",
		})
	})

	// Composed social preview images.
	preview := router.Group("/preview")
	{
		preview.GET("/item", r.previewImageController.ItemImage)
		preview.GET("/profile", r.previewImageController.ProfileImage)
		preview.GET("/wishlist", r.previewImageController.WishlistImage)
	}

	// Human-readable preview pages.
	router.GET("/item/:id", r.pageController.ItemPage)
	router.GET("/profile/:username", r.pageController.ProfilePage)
	router.GET("/wishlist/:token", r.pageController.WishlistPage)

	// Short links from the app's share sheet.
	router.GET("/u/:username", r.pageController.RedirectProfile)
	router.GET("/w/:token", r.pageController.RedirectWishlist)
	router.GET("/i/:id", r.pageController.RedirectItem)

	// Marketing pages and crawler endpoints.
	router.GET("/", r.staticController.Home)
	router.GET("/about", r.staticController.About)
	router.GET("/terms", r.staticController.Terms)
	router.GET("/faq", r.staticController.FAQ)
	router.GET("/support", r.staticController.Support)
	router.GET("/sitemap.xml", r.staticController.Sitemap)
	router.GET("/robots.txt", r.staticController.Robots)

	return router
}
