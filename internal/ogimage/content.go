package ogimage

import (
	"image/color"
	"strings"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/pkg/util"
)

// content is the kind-agnostic view of a preview record that the layout
// code consumes. Collapsing the three record shapes here is what lets a
// single renderer serve every entity type.
type content struct {
	kind        model.PreviewKind
	title       string
	subtitle    string // attribution line, e.g. "@maria"
	description string
	badge       string // "$199.99" or "3 items"
	imageURL    string // source image for the image slot / background
	coverColor  *color.RGBA
	textColor   *color.RGBA
	circleImage bool // render the source image as a circle (avatars)
	uppercase   bool
}

func itemContent(item *model.ItemPreview) content {
	title := item.Title
	if title == "" {
		title = model.KindItem.Label()
	}

	return content{
		kind:        model.KindItem,
		title:       title,
		subtitle:    "@" + item.OwnerUsername,
		description: deref(item.Description),
		badge:       util.FormatPrice(item.PriceAmount),
		imageURL:    deref(item.ImageURL),
		uppercase:   true,
	}
}

func profileContent(profile *model.ProfilePreview) content {
	return content{
		kind:        model.KindProfile,
		title:       profile.DisplayName(),
		subtitle:    "@" + profile.Username,
		description: deref(profile.Bio),
		imageURL:    deref(profile.AvatarURL),
		circleImage: true,
	}
}

func wishlistContent(wishlist *model.WishlistPreview) content {
	title := wishlist.Name
	if title == "" {
		title = model.KindWishlist.Label()
	}

	return content{
		kind:        model.KindWishlist,
		title:       title,
		subtitle:    "@" + wishlist.OwnerUsername,
		description: deref(wishlist.Description),
		badge:       util.ItemCountBadge(wishlist.ItemCount),
		imageURL:    deref(wishlist.ImageURL),
		coverColor:  parseHexColor(deref(wishlist.CoverColorHex)),
		textColor:   parseHexColor(deref(wishlist.TextColorHex)),
		uppercase:   true,
	}
}

// parseHexColor accepts "#RRGGBB" (case-insensitive, leading # optional)
// and returns nil for anything it cannot parse, so bad stored colors
// degrade to the default styling instead of failing the render.
func parseHexColor(s string) *color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return nil
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[i*2])
		lo, ok2 := hexVal(s[i*2+1])
		if !ok1 || !ok2 {
			return nil
		}
		rgb[i] = hi<<4 | lo
	}

	return &color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
