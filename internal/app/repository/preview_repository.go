package repository

import (
	"context"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/pkg/logger"
	"gorm.io/gorm"
)

// PreviewRepository reads denormalized preview snapshots from the app
// database. Every method performs exactly one read-only query; misses
// surface as gorm.ErrRecordNotFound.
type PreviewRepository interface {
	GetItemPreview(ctx context.Context, itemID uint) (*model.ItemPreview, error)
	GetProfilePreview(ctx context.Context, username string) (*model.ProfilePreview, error)
	GetWishlistPreview(ctx context.Context, shareToken string) (*model.WishlistPreview, error)
	ListPublicWishlistTokens(ctx context.Context) ([]string, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

type previewRepository struct {
	db *gorm.DB
}

func NewPreviewRepository(db *gorm.DB) PreviewRepository {
	return &previewRepository{db: db}
}

func (r *previewRepository) GetItemPreview(ctx context.Context, itemID uint) (*model.ItemPreview, error) {
	logger.Debug("Fetching item preview from database", map[string]interface{}{
		"item_id": itemID,
	})

	var preview model.ItemPreview
	err := r.db.WithContext(ctx).
		Table("wishlist_items AS i").
		Select(`i.id,
			COALESCE(i.title, '') AS title,
			i.description,
			i.price_amount,
			i.currency,
			i.image_url,
			w.name AS wishlist_name,
			w.share_token AS wishlist_token,
			p.username AS owner_username,
			p.full_name AS owner_full_name`).
		Joins("JOIN wishlists w ON w.id = i.wishlist_id").
		Joins("JOIN profiles p ON p.id = w.owner_id").
		Where("i.id = ?", itemID).
		Take(&preview).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to fetch item preview from database", err, map[string]interface{}{
				"item_id": itemID,
			})
		}
		return nil, err
	}

	return &preview, nil
}

func (r *previewRepository) GetProfilePreview(ctx context.Context, username string) (*model.ProfilePreview, error) {
	logger.Debug("Fetching profile preview from database", map[string]interface{}{
		"username": username,
	})

	var preview model.ProfilePreview
	err := r.db.WithContext(ctx).
		Table("profiles").
		Select("username, full_name, avatar_url, bio").
		Where("username = ?", username).
		Take(&preview).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to fetch profile preview from database", err, map[string]interface{}{
				"username": username,
			})
		}
		return nil, err
	}

	return &preview, nil
}

func (r *previewRepository) GetWishlistPreview(ctx context.Context, shareToken string) (*model.WishlistPreview, error) {
	logger.Debug("Fetching wishlist preview from database", map[string]interface{}{
		"share_token": shareToken,
	})

	var preview model.WishlistPreview
	err := r.db.WithContext(ctx).
		Table("wishlists AS w").
		Select(`w.share_token,
			w.name,
			w.description,
			w.image_url,
			w.cover_color_hex,
			w.text_color_hex,
			w.privacy,
			(SELECT COUNT(*) FROM wishlist_items wi WHERE wi.wishlist_id = w.id) AS item_count,
			p.username AS owner_username`).
		Joins("JOIN profiles p ON p.id = w.owner_id").
		Where("w.share_token = ?", shareToken).
		Take(&preview).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to fetch wishlist preview from database", err, map[string]interface{}{
				"share_token": shareToken,
			})
		}
		return nil, err
	}

	return &preview, nil
}

func (r *previewRepository) ListPublicWishlistTokens(ctx context.Context) ([]string, error) {
	logger.Debug("Listing public wishlist tokens from database", nil)

	var tokens []string
	err := r.db.WithContext(ctx).
		Table("wishlists").
		Where("privacy = ? AND share_token IS NOT NULL", model.PrivacyPublic).
		Order("id").
		Pluck("share_token", &tokens).Error
	if err != nil {
		logger.Error("Failed to list public wishlist tokens from database", err, nil)
		return nil, err
	}

	return tokens, nil
}

func (r *previewRepository) ListUsernames(ctx context.Context) ([]string, error) {
	logger.Debug("Listing usernames from database", nil)

	var usernames []string
	err := r.db.WithContext(ctx).
		Table("profiles").
		Where("username IS NOT NULL AND username <> ''").
		Order("username").
		Pluck("username", &usernames).Error
	if err != nil {
		logger.Error("Failed to list usernames from database", err, nil)
		return nil, err
	}

	return usernames, nil
}
