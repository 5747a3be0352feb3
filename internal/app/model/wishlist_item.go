package model

import "time"

// WishlistItem mirrors the wishlist_items table of the app database.
type WishlistItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WishlistID  uint      `gorm:"not null;index" json:"wishlist_id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	PriceAmount *float64  `json:"price_amount"`
	Currency    *string   `json:"currency"`
	ImageURL    *string   `json:"image_url"`
	ProductURL  *string   `json:"product_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
