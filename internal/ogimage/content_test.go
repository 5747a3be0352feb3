package ogimage

import (
	"image/color"
	"testing"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c := parseHexColor("#667eea")
	require.NotNil(t, c)
	assert.Equal(t, color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 255}, *c)

	c = parseHexColor("764BA2")
	require.NotNil(t, c)
	assert.Equal(t, color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 255}, *c)

	assert.Nil(t, parseHexColor(""))
	assert.Nil(t, parseHexColor("#fff"))
	assert.Nil(t, parseHexColor("#zzzzzz"))
	assert.Nil(t, parseHexColor("not a color"))
}

func TestItemContent(t *testing.T) {
	cnt := itemContent(testItem())

	assert.Equal(t, "Noise-cancelling headphones", cnt.title)
	assert.Equal(t, "@maria", cnt.subtitle)
	assert.Equal(t, "$199.99", cnt.badge)
	assert.Empty(t, cnt.description)
	assert.Empty(t, cnt.imageURL)
}

func TestItemContent_UntitledFallsBackToLabel(t *testing.T) {
	cnt := itemContent(&model.ItemPreview{ID: 1, OwnerUsername: "maria"})
	assert.Equal(t, "Item", cnt.title)
}

func TestWishlistContent_BadgePluralization(t *testing.T) {
	one := wishlistContent(&model.WishlistPreview{Name: "W", ItemCount: 1, OwnerUsername: "maria"})
	assert.Equal(t, "1 item", one.badge)

	many := wishlistContent(&model.WishlistPreview{Name: "W", ItemCount: 3, OwnerUsername: "maria"})
	assert.Equal(t, "3 items", many.badge)

	zero := wishlistContent(&model.WishlistPreview{Name: "W", OwnerUsername: "maria"})
	assert.Equal(t, "0 items", zero.badge)
}

func TestProfileContent_DisplayNamePreferred(t *testing.T) {
	cnt := profileContent(&model.ProfilePreview{
		Username: "maria",
		FullName: strPtr("Maria Lopez"),
	})
	assert.Equal(t, "Maria Lopez", cnt.title)
	assert.Equal(t, "@maria", cnt.subtitle)
	assert.True(t, cnt.circleImage)
}
