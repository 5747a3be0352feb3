package ogimage

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Register decoders for the formats user uploads come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/noto-space/noto-web/pkg/logger"
)

// maxImageBytes caps how much of a remote image body gets read. User
// uploads are resized by the mobile backend, anything bigger is abuse.
const maxImageBytes = 20 << 20

// ImageFetcher retrieves a remote source image (item photo, avatar,
// wishlist cover) for compositing. Implementations must honor ctx.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// HTTPImageFetcher fetches source images over plain HTTP.
type HTTPImageFetcher struct {
	client *http.Client
}

func NewHTTPImageFetcher() *HTTPImageFetcher {
	return &HTTPImageFetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Warn("Failed to fetch source image", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Source image request returned non-200", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: status %d", ErrImageUnavailable, resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrImageUnavailable, err)
	}

	return img, nil
}
