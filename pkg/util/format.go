package util

import (
	"fmt"
	"math"
)

// FormatPrice renders a positive decimal amount as "$199.99", dropping
// the cents when the amount is whole. Returns "" for absent prices so
// callers can simply omit the price slot.
func FormatPrice(amount *float64) string {
	if amount == nil || *amount <= 0 {
		return ""
	}
	if *amount == math.Trunc(*amount) {
		return fmt.Sprintf("$%.0f", *amount)
	}
	return fmt.Sprintf("$%.2f", *amount)
}

// ItemCountBadge renders a wishlist's item count, e.g. "1 item" or
// "3 items".
func ItemCountBadge(count int) string {
	if count == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", count)
}
