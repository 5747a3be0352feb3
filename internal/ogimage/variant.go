package ogimage

import (
	"fmt"

	"github.com/noto-space/noto-web/internal/app/model"
)

// Variant names a layout alternative for the same logical preview. The
// layout differences are data (budgets, slots, background handling), not
// separate code paths.
type Variant string

const (
	// VariantSplit puts text on the left and a framed source image on the
	// right, on a white canvas. Default for items.
	VariantSplit Variant = "split"
	// VariantCentered stacks everything centered over a colored or
	// gradient background. Default for profiles and wishlists.
	VariantCentered Variant = "centered"
	// VariantBanner renders the source image full-bleed with a legibility
	// overlay and left-aligned text.
	VariantBanner Variant = "banner"
)

// DefaultVariant returns the layout used when the request does not ask
// for one.
func DefaultVariant(kind model.PreviewKind) Variant {
	if kind == model.KindItem {
		return VariantSplit
	}
	return VariantCentered
}

// ParseVariant validates a variant query parameter. Empty selects the
// kind's default.
func ParseVariant(s string, kind model.PreviewKind) (Variant, error) {
	switch Variant(s) {
	case "":
		return DefaultVariant(kind), nil
	case VariantSplit, VariantCentered, VariantBanner:
		return Variant(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// fieldBudgets are the per-variant character budgets applied to rendered
// text. Metadata is never truncated; these budgets exist purely so the
// fixed canvas never overflows.
type fieldBudgets struct {
	title       int
	description int
}

func budgetsFor(kind model.PreviewKind, variant Variant) fieldBudgets {
	switch kind {
	case model.KindItem:
		if variant == VariantBanner {
			return fieldBudgets{title: 60, description: 100}
		}
		return fieldBudgets{title: 50, description: 100}
	case model.KindProfile:
		return fieldBudgets{title: 40, description: 120}
	case model.KindWishlist:
		if variant == VariantBanner {
			return fieldBudgets{title: 40, description: 120}
		}
		return fieldBudgets{title: 30, description: 120}
	}
	return fieldBudgets{title: 50, description: 100}
}
