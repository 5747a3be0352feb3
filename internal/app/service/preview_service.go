package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/repository"
	apperrors "github.com/noto-space/noto-web/internal/errors"
	"github.com/noto-space/noto-web/pkg/logger"
)

var (
	// ErrInvalidIdentifier means the public identifier is malformed and no
	// remote lookup was attempted.
	ErrInvalidIdentifier = errors.New("invalid public identifier")
	// ErrPreviewNotFound means the store has no record for the identifier.
	ErrPreviewNotFound = errors.New("preview not found")
	// ErrBackendUnavailable means the remote store could not be reached.
	ErrBackendUnavailable = errors.New("preview backend unavailable")
)

// PreviewService resolves public identifiers to preview snapshots. Each
// resolution is a single read-only lookup; there are no retries and no
// caching at this layer.
type PreviewService interface {
	ResolveItem(ctx context.Context, identifier string) (*model.ItemPreview, error)
	ResolveProfile(ctx context.Context, username string) (*model.ProfilePreview, error)
	ResolveWishlist(ctx context.Context, shareToken string) (*model.WishlistPreview, error)
}

type previewService struct {
	previewRepo repository.PreviewRepository
}

func NewPreviewService(previewRepo repository.PreviewRepository) PreviewService {
	return &previewService{previewRepo: previewRepo}
}

// ParseItemID validates an item identifier. Item ids are non-negative
// integers; everything else is rejected before any database work.
func ParseItemID(identifier string) (uint, error) {
	if identifier == "" {
		return 0, ErrInvalidIdentifier
	}
	id, err := strconv.ParseUint(identifier, 10, 32)
	if err != nil {
		return 0, ErrInvalidIdentifier
	}
	return uint(id), nil
}

func (s *previewService) ResolveItem(ctx context.Context, identifier string) (*model.ItemPreview, error) {
	itemID, err := ParseItemID(identifier)
	if err != nil {
		logger.Warn("Rejected malformed item identifier", map[string]interface{}{
			"identifier": identifier,
		})
		return nil, err
	}

	preview, err := s.previewRepo.GetItemPreview(ctx, itemID)
	if err != nil {
		return nil, classifyLookupError(err, "item", identifier)
	}
	return preview, nil
}

func (s *previewService) ResolveProfile(ctx context.Context, username string) (*model.ProfilePreview, error) {
	if username == "" {
		return nil, ErrInvalidIdentifier
	}

	preview, err := s.previewRepo.GetProfilePreview(ctx, username)
	if err != nil {
		return nil, classifyLookupError(err, "profile", username)
	}
	return preview, nil
}

func (s *previewService) ResolveWishlist(ctx context.Context, shareToken string) (*model.WishlistPreview, error) {
	if shareToken == "" {
		return nil, ErrInvalidIdentifier
	}

	preview, err := s.previewRepo.GetWishlistPreview(ctx, shareToken)
	if err != nil {
		return nil, classifyLookupError(err, "wishlist", shareToken)
	}
	return preview, nil
}

// classifyLookupError folds repository failures into the two outcomes the
// rest of the pipeline understands: a miss or an unavailable backend.
func classifyLookupError(err error, kind, identifier string) error {
	info := apperrors.ParseError(err, kind)

	if info.Code == apperrors.PreviewNotFound {
		logger.Debug("Preview not found", map[string]interface{}{
			"kind":       kind,
			"identifier": identifier,
		})
		return ErrPreviewNotFound
	}

	logger.Error("Preview lookup failed", err, map[string]interface{}{
		"kind":       kind,
		"identifier": identifier,
		"code":       info.Code,
	})
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
