package model

import "time"

// Privacy classifies who may discover a wishlist. Anything other than
// PrivacyPublic suppresses search-engine indexing on shared links.
type Privacy string

const (
	PrivacyPublic   Privacy = "public"
	PrivacyUnlisted Privacy = "unlisted"
	PrivacyPrivate  Privacy = "private"
)

// Wishlist mirrors the wishlists table of the app database. ShareToken is
// the public identifier used in shared URLs; the numeric ID never leaves
// the backend.
type Wishlist struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OwnerID       string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"image_url"`
	CoverColorHex *string   `json:"cover_color_hex"`
	TextColorHex  *string   `json:"text_color_hex"`
	Privacy       Privacy   `gorm:"not null;default:private" json:"privacy"`
	ShareToken    *string   `gorm:"uniqueIndex" json:"share_token"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
