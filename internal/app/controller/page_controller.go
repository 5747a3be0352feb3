package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/internal/middleware"
	"github.com/noto-space/noto-web/internal/render"
	"github.com/noto-space/noto-web/pkg/logger"
	"github.com/noto-space/noto-web/pkg/util"
)

// PageController serves the human-readable preview pages. Crawlers read
// the meta tags; people get a fallback card with links into the app.
type PageController struct {
	previewService  service.PreviewService
	metadataService service.MetadataService
	app             config.AppConfig
}

func NewPageController(previewService service.PreviewService, metadataService service.MetadataService, app config.AppConfig) *PageController {
	return &PageController{
		previewService:  previewService,
		metadataService: metadataService,
		app:             app,
	}
}

// ItemPage renders the preview page for a shared item
// GET /item/:id
func (ctrl *PageController) ItemPage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	item, err := ctrl.previewService.ResolveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondPageError(c, log, model.KindItem, c.Param("id"), err)
		return
	}

	subtitle := "@" + item.OwnerUsername
	if item.WishlistName != nil && *item.WishlistName != "" {
		subtitle = fmt.Sprintf("From %q by @%s", *item.WishlistName, item.OwnerUsername)
	}

	c.HTML(http.StatusOK, "preview.html", render.PreviewPage{
		Meta:        ctrl.metadataService.ForItem(item),
		Title:       item.Title,
		Subtitle:    subtitle,
		Description: deref(item.Description),
		Badge:       util.FormatPrice(item.PriceAmount),
		ImageURL:    deref(item.ImageURL),
		DeepLink:    fmt.Sprintf("%s://item/%d", ctrl.app.DeepLinkScheme, item.ID),
		StoreURL:    ctrl.app.AppStoreURL,
		Brand:       ctrl.app.BrandName,
	})
}

// ProfilePage renders the preview page for a public profile
// GET /profile/:username
func (ctrl *PageController) ProfilePage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profile, err := ctrl.previewService.ResolveProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		ctrl.respondPageError(c, log, model.KindProfile, c.Param("username"), err)
		return
	}

	c.HTML(http.StatusOK, "preview.html", render.PreviewPage{
		Meta:        ctrl.metadataService.ForProfile(profile),
		Title:       profile.DisplayName(),
		Subtitle:    "@" + profile.Username,
		Description: deref(profile.Bio),
		ImageURL:    deref(profile.AvatarURL),
		RoundImage:  true,
		DeepLink:    fmt.Sprintf("%s/profile/%s", ctrl.app.WebLinkBase, profile.Username),
		StoreURL:    ctrl.app.AppStoreURL,
		Brand:       ctrl.app.BrandName,
	})
}

// WishlistPage renders the preview page for a shared wishlist
// GET /wishlist/:token
func (ctrl *PageController) WishlistPage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	wishlist, err := ctrl.previewService.ResolveWishlist(c.Request.Context(), c.Param("token"))
	if err != nil {
		ctrl.respondPageError(c, log, model.KindWishlist, c.Param("token"), err)
		return
	}

	c.HTML(http.StatusOK, "preview.html", render.PreviewPage{
		Meta:        ctrl.metadataService.ForWishlist(wishlist),
		Title:       wishlist.Name,
		Subtitle:    "@" + wishlist.OwnerUsername,
		Description: deref(wishlist.Description),
		Badge:       util.ItemCountBadge(wishlist.ItemCount),
		ImageURL:    deref(wishlist.ImageURL),
		CoverColor:  deref(wishlist.CoverColorHex),
		DeepLink:    fmt.Sprintf("%s/wishlist/%s", ctrl.app.WebLinkBase, wishlist.ShareToken),
		StoreURL:    ctrl.app.AppStoreURL,
		Brand:       ctrl.app.BrandName,
	})
}

// Short-link redirects used by the mobile app's share sheet.
// GET /u/:username, GET /w/:token, GET /i/:id

func (ctrl *PageController) RedirectProfile(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/profile/"+c.Param("username"))
}

func (ctrl *PageController) RedirectWishlist(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/wishlist/"+c.Param("token"))
}

func (ctrl *PageController) RedirectItem(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/item/"+c.Param("id"))
}

// respondPageError renders the not-found document for every resolution
// failure. Malformed and unknown identifiers both read as "not found" to
// a person following a dead link; only a backend outage surfaces as 502.
func (ctrl *PageController) respondPageError(c *gin.Context, log *logger.Logger, kind model.PreviewKind, identifier string, err error) {
	fields := map[string]interface{}{
		"kind":       string(kind),
		"identifier": identifier,
	}

	status := http.StatusNotFound
	meta := ctrl.metadataService.NotFound(kind)

	switch {
	case errors.Is(err, service.ErrInvalidIdentifier), errors.Is(err, service.ErrPreviewNotFound):
		log.Warn("Preview page not found", fields)
	case errors.Is(err, service.ErrBackendUnavailable):
		log.Error("Preview backend unavailable", err, fields)
		status = http.StatusBadGateway
		meta.Title = "Temporarily unavailable"
		meta.PageTitle = fmt.Sprintf("Temporarily unavailable - %s", ctrl.app.BrandName)
		meta.Description = "We could not load this page right now. Try again in a moment."
	default:
		log.Error("Failed to render preview page", err, fields)
		status = http.StatusInternalServerError
	}

	c.HTML(status, "notfound.html", render.NotFoundPage{
		Meta:  meta,
		Brand: ctrl.app.BrandName,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
