package model

// PreviewKind names the three shareable entity types.
type PreviewKind string

const (
	KindItem     PreviewKind = "item"
	KindProfile  PreviewKind = "profile"
	KindWishlist PreviewKind = "wishlist"
)

// Label returns the generic fallback title for the kind.
func (k PreviewKind) Label() string {
	switch k {
	case KindItem:
		return "Item"
	case KindProfile:
		return "User"
	case KindWishlist:
		return "Wishlist"
	}
	return "Noto"
}

// ItemPreview is the denormalized snapshot of a shared item, joined with
// its wishlist and owner. Read-only; built by the preview repository in a
// single query.
type ItemPreview struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	PriceAmount   *float64 `json:"price_amount"`
	Currency      *string  `json:"currency"`
	ImageURL      *string  `json:"image_url"`
	WishlistName  *string  `json:"wishlist_name"`
	WishlistToken *string  `json:"wishlist_token"`
	OwnerUsername string   `json:"owner_username"`
	OwnerFullName *string  `json:"owner_full_name"`
}

// ProfilePreview is the denormalized snapshot of a public profile.
type ProfilePreview struct {
	Username  string  `json:"username"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}

// DisplayName prefers the full name and falls back to the username.
func (p *ProfilePreview) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Username
}

// WishlistPreview is the denormalized snapshot of a shared wishlist,
// including its item count and owner.
type WishlistPreview struct {
	ShareToken    string  `json:"share_token"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"image_url"`
	CoverColorHex *string `json:"cover_color_hex"`
	TextColorHex  *string `json:"text_color_hex"`
	Privacy       Privacy `json:"privacy"`
	ItemCount     int     `json:"item_count"`
	OwnerUsername string  `json:"owner_username"`
}
