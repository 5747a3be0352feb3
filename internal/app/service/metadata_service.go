package service

import (
	"fmt"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/model"
)

// ContentType is the OpenGraph object type emitted for a preview page.
type ContentType string

const (
	ContentTypeWebsite ContentType = "website"
	ContentTypeProfile ContentType = "profile"
)

// LinkMetadata is everything a messenger or crawler needs to unfurl a
// shared link. Text is passed through untruncated; only the rendered
// image applies character budgets.
type LinkMetadata struct {
	Title          string // og:title
	PageTitle      string // <title>, includes the brand suffix
	Description    string
	CanonicalURL   string
	ImageURL       string // always the composed 1200x630 asset, never a raw source image
	ImageAlt       string
	ContentType    ContentType
	Indexable      bool
	TwitterCreator string // @username, profiles only
}

// MetadataService synthesizes link-unfurling metadata from preview
// snapshots. It never fails: a miss still yields well-formed not-found
// metadata so the 404 page renders with sane tags.
type MetadataService interface {
	ForItem(item *model.ItemPreview) LinkMetadata
	ForProfile(profile *model.ProfilePreview) LinkMetadata
	ForWishlist(wishlist *model.WishlistPreview) LinkMetadata
	NotFound(kind model.PreviewKind) LinkMetadata
}

type metadataService struct {
	app config.AppConfig
}

func NewMetadataService(app config.AppConfig) MetadataService {
	return &metadataService{app: app}
}

func (s *metadataService) ForItem(item *model.ItemPreview) LinkMetadata {
	title := item.Title
	if title == "" {
		title = model.KindItem.Label()
	}

	description := strOrEmpty(item.Description)
	if description == "" {
		description = fmt.Sprintf("Check out %s on %s", title, s.app.BrandName)
	}

	return LinkMetadata{
		Title:        title,
		PageTitle:    fmt.Sprintf("%s - %s", title, s.app.BrandName),
		Description:  description,
		CanonicalURL: fmt.Sprintf("%s/item/%d", s.app.BaseURL, item.ID),
		ImageURL:     fmt.Sprintf("%s/preview/item?id=%d", s.app.BaseURL, item.ID),
		ImageAlt:     title,
		ContentType:  ContentTypeWebsite,
		Indexable:    true,
	}
}

func (s *metadataService) ForProfile(profile *model.ProfilePreview) LinkMetadata {
	title := profile.DisplayName()
	if title == "" {
		title = model.KindProfile.Label()
	}

	description := strOrEmpty(profile.Bio)
	if description == "" {
		description = fmt.Sprintf("Check out %s's profile on %s", title, s.app.BrandName)
	}

	return LinkMetadata{
		Title:          title,
		PageTitle:      fmt.Sprintf("%s - %s", title, s.app.BrandName),
		Description:    description,
		CanonicalURL:   fmt.Sprintf("%s/profile/%s", s.app.BaseURL, profile.Username),
		ImageURL:       fmt.Sprintf("%s/preview/profile?username=%s", s.app.BaseURL, profile.Username),
		ImageAlt:       title,
		ContentType:    ContentTypeProfile,
		Indexable:      true,
		TwitterCreator: "@" + profile.Username,
	}
}

func (s *metadataService) ForWishlist(wishlist *model.WishlistPreview) LinkMetadata {
	title := wishlist.Name
	if title == "" {
		title = model.KindWishlist.Label()
	}

	description := strOrEmpty(wishlist.Description)
	if description == "" {
		description = fmt.Sprintf("Check out %s wishlist on %s", title, s.app.BrandName)
	}

	return LinkMetadata{
		Title:        title,
		PageTitle:    fmt.Sprintf("%s - %s", title, s.app.BrandName),
		Description:  description,
		CanonicalURL: fmt.Sprintf("%s/wishlist/%s", s.app.BaseURL, wishlist.ShareToken),
		ImageURL:     fmt.Sprintf("%s/preview/wishlist?token=%s", s.app.BaseURL, wishlist.ShareToken),
		ImageAlt:     title,
		ContentType:  ContentTypeWebsite,
		// Unlisted and private wishlists must not be indexed.
		Indexable: wishlist.Privacy == model.PrivacyPublic,
	}
}

func (s *metadataService) NotFound(kind model.PreviewKind) LinkMetadata {
	label := kind.Label()
	return LinkMetadata{
		Title:        fmt.Sprintf("%s not found", label),
		PageTitle:    fmt.Sprintf("%s not found - %s", label, s.app.BrandName),
		Description:  "The page you are looking for does not exist.",
		CanonicalURL: s.app.BaseURL,
		ContentType:  ContentTypeWebsite,
		Indexable:    false,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
