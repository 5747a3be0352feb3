package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/noto-space/noto-web/internal/errors"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/internal/middleware"
	"github.com/noto-space/noto-web/internal/ogimage"
	"github.com/noto-space/noto-web/pkg/logger"
	"github.com/noto-space/noto-web/pkg/redis"
)

// Composed images are immutable for a given (kind, identifier, variant),
// so the cache TTL and the client max-age are the same 24 hours.
const (
	imageCacheTTL     = 24 * time.Hour
	imageCacheControl = "public, max-age=86400"
)

type PreviewImageController struct {
	previewService service.PreviewService
	composer       *ogimage.Composer
}

func NewPreviewImageController(previewService service.PreviewService, composer *ogimage.Composer) *PreviewImageController {
	return &PreviewImageController{
		previewService: previewService,
		composer:       composer,
	}
}

// ItemImage renders the social preview image for a shared item
// GET /preview/item?id=123&variant=split
func (ctrl *PreviewImageController) ItemImage(c *gin.Context) {
	ctrl.serve(c, model.KindItem, c.Query("id"), func(ctx context.Context, variant ogimage.Variant) ([]byte, error) {
		item, err := ctrl.previewService.ResolveItem(ctx, c.Query("id"))
		if err != nil {
			return nil, err
		}
		return ctrl.composer.ComposeItem(ctx, item, variant)
	})
}

// ProfileImage renders the social preview image for a public profile
// GET /preview/profile?username=maria&variant=centered
func (ctrl *PreviewImageController) ProfileImage(c *gin.Context) {
	ctrl.serve(c, model.KindProfile, c.Query("username"), func(ctx context.Context, variant ogimage.Variant) ([]byte, error) {
		profile, err := ctrl.previewService.ResolveProfile(ctx, c.Query("username"))
		if err != nil {
			return nil, err
		}
		return ctrl.composer.ComposeProfile(ctx, profile, variant)
	})
}

// WishlistImage renders the social preview image for a shared wishlist
// GET /preview/wishlist?token=abc&variant=banner
func (ctrl *PreviewImageController) WishlistImage(c *gin.Context) {
	ctrl.serve(c, model.KindWishlist, c.Query("token"), func(ctx context.Context, variant ogimage.Variant) ([]byte, error) {
		wishlist, err := ctrl.previewService.ResolveWishlist(ctx, c.Query("token"))
		if err != nil {
			return nil, err
		}
		return ctrl.composer.ComposeWishlist(ctx, wishlist, variant)
	})
}

// serve runs the shared pipeline: validate the variant, try the cache,
// resolve-and-compose, cache, write. The compose callback owns the
// kind-specific resolution.
func (ctrl *PreviewImageController) serve(c *gin.Context, kind model.PreviewKind, identifier string, compose func(ctx context.Context, variant ogimage.Variant) ([]byte, error)) {
	log := middleware.GetLoggerFromContext(c)

	if identifier == "" {
		log.Warn("Missing preview identifier", map[string]interface{}{
			"kind": string(kind),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Missing identifier")
		return
	}

	variant, err := ogimage.ParseVariant(c.Query("variant"), kind)
	if err != nil {
		log.Warn("Unknown preview variant requested", map[string]interface{}{
			"kind":    string(kind),
			"variant": c.Query("variant"),
		})
		apperrors.BadRequest(c, apperrors.PreviewInvalidVariant, "Unknown layout variant")
		return
	}

	ctx := c.Request.Context()

	if data, ok := redis.GetCachedImage(ctx, string(kind), identifier, string(variant)); ok {
		log.Debug("Serving composed image from cache", map[string]interface{}{
			"kind":       string(kind),
			"identifier": identifier,
			"variant":    string(variant),
		})
		writeImage(c, data)
		return
	}

	data, err := compose(ctx, variant)
	if err != nil {
		ctrl.respondComposeError(c, log, kind, identifier, err)
		return
	}

	redis.CacheImage(ctx, string(kind), identifier, string(variant), data, imageCacheTTL)

	log.Info("Composed preview image", map[string]interface{}{
		"kind":       string(kind),
		"identifier": identifier,
		"variant":    string(variant),
		"bytes":      len(data),
	})
	writeImage(c, data)
}

func (ctrl *PreviewImageController) respondComposeError(c *gin.Context, log *logger.Logger, kind model.PreviewKind, identifier string, err error) {
	fields := map[string]interface{}{
		"kind":       string(kind),
		"identifier": identifier,
	}

	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		log.Warn("Invalid preview identifier", fields)
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid identifier")
	case errors.Is(err, service.ErrPreviewNotFound):
		log.Warn("Preview record not found", fields)
		apperrors.NotFound(c, apperrors.PreviewNotFound, "Preview not found")
	case errors.Is(err, service.ErrBackendUnavailable):
		log.Error("Preview backend unavailable", err, fields)
		apperrors.BadGateway(c, "")
	default:
		// Includes ogimage.ErrImageUnavailable: the record exists but the
		// image could not be produced.
		log.Error("Failed to compose preview image", err, fields)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.PreviewRenderFailed, "Failed to render preview image")
	}
}

// writeImage sends the composed PNG. The permissive CORS header lets
// third-party unfurlers and proxies fetch the asset directly.
func writeImage(c *gin.Context, data []byte) {
	c.Header("Cache-Control", imageCacheControl)
	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, "image/png", data)
}
