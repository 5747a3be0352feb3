package ogimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/pkg/util"
)

// Canvas contract: link-unfurling clients expect exactly this size.
const (
	Width  = 1200
	Height = 630

	headerHeight = 80
	ctaHeight    = 54
	marginX      = 72
)

var (
	// ErrNilRecord is a contract violation: compose must only be called
	// after the gateway resolved a record.
	ErrNilRecord = errors.New("ogimage: nil preview record")
	// ErrUnknownVariant rejects variants the layout table does not know.
	ErrUnknownVariant = errors.New("ogimage: unknown variant")
	// ErrImageUnavailable means a remote source image could not be
	// fetched or decoded; no partial image is emitted.
	ErrImageUnavailable = errors.New("ogimage: remote image unavailable")
)

// Composer renders the 1200x630 social preview images. It is a pure
// function of (kind, record, variant) apart from the source-image fetch,
// so identical inputs always produce identical output.
type Composer struct {
	fetcher ImageFetcher
	brand   string
}

func NewComposer(fetcher ImageFetcher, brandName string) *Composer {
	return &Composer{
		fetcher: fetcher,
		brand:   brandName,
	}
}

func (c *Composer) ComposeItem(ctx context.Context, item *model.ItemPreview, variant Variant) ([]byte, error) {
	if item == nil {
		return nil, ErrNilRecord
	}
	return c.render(ctx, itemContent(item), variant)
}

func (c *Composer) ComposeProfile(ctx context.Context, profile *model.ProfilePreview, variant Variant) ([]byte, error) {
	if profile == nil {
		return nil, ErrNilRecord
	}
	return c.render(ctx, profileContent(profile), variant)
}

func (c *Composer) ComposeWishlist(ctx context.Context, wishlist *model.WishlistPreview, variant Variant) ([]byte, error) {
	if wishlist == nil {
		return nil, ErrNilRecord
	}
	return c.render(ctx, wishlistContent(wishlist), variant)
}

func (c *Composer) render(ctx context.Context, cnt content, variant Variant) ([]byte, error) {
	switch variant {
	case VariantSplit, VariantCentered, VariantBanner:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	budgets := budgetsFor(cnt.kind, variant)
	title := util.Truncate(cnt.title, budgets.title)
	if cnt.uppercase {
		title = strings.ToUpper(title)
	}
	description := util.Truncate(cnt.description, budgets.description)

	var src image.Image
	if cnt.imageURL != "" {
		img, err := c.fetcher.Fetch(ctx, cnt.imageURL)
		if err != nil {
			return nil, err
		}
		src = img
	}

	dc := gg.NewContext(Width, Height)

	switch variant {
	case VariantSplit:
		c.renderSplit(dc, cnt, title, description, src)
	case VariantCentered:
		c.renderCentered(dc, cnt, title, description, src)
	case VariantBanner:
		c.renderBanner(dc, cnt, title, description, src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("ogimage: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// paintCanvas resolves the canvas background with the strict priority
// order: photographic source image, solid cover color, brand gradient,
// bundled default asset. It reports whether the result is photographic
// (and therefore needs the legibility overlay).
func paintCanvas(dc *gg.Context, cnt content, src image.Image, allowImage bool) bool {
	if allowImage && src != nil {
		drawCoverImage(dc, src, 0, 0, Width, Height)
		return true
	}
	if cnt.coverColor != nil {
		fillSolid(dc, *cnt.coverColor)
		return false
	}
	if cnt.kind != model.KindItem {
		fillGradient(dc, gradientStart, gradientEnd)
		return false
	}
	drawCoverImage(dc, defaultBackground, 0, 0, Width, Height)
	return true
}

// renderSplit draws the white, two-column layout: text on the left, a
// framed source image (or the generic glyph) on the right.
func (c *Composer) renderSplit(dc *gg.Context, cnt content, title, description string, src image.Image) {
	fillSolid(dc, whiteColor)

	// Header zone with the brand wordmark.
	dc.SetFontFace(boldFace(34))
	dc.SetColor(inkColor)
	dc.DrawStringAnchored(strings.ToLower(c.brand), Width/2, headerHeight/2+8, 0.5, 0.5)

	textX := float64(marginX)
	textWidth := 500.0
	y := 150.0

	dc.SetFontFace(boldFace(36))
	dc.SetColor(inkColor)
	y += drawWrapped(dc, title, textX, y, textWidth, 1.1, gg.AlignLeft)

	if cnt.subtitle != "" {
		y += 16
		dc.SetFontFace(regularFace(20))
		dc.SetColor(mutedColor)
		y += drawWrapped(dc, cnt.subtitle, textX, y, textWidth, 1.2, gg.AlignLeft)
	}

	if cnt.badge != "" {
		y += 24
		dc.SetFontFace(boldFace(20))
		dc.SetColor(inkColor)
		y += drawWrapped(dc, cnt.badge, textX, y, textWidth, 1.2, gg.AlignLeft)
	}

	if description != "" {
		y += 20
		dc.SetFontFace(regularFace(20))
		dc.SetColor(inkColor)
		drawWrapped(dc, description, textX, y, 420, 1.4, gg.AlignLeft)
	}

	// Image slot on the right: framed source image or the generic glyph.
	slotSize := 380
	slotX := Width - marginX - slotSize
	slotY := 130
	dc.SetColor(slotColor)
	dc.DrawRectangle(float64(slotX), float64(slotY), float64(slotSize), float64(slotSize))
	dc.Fill()
	if src != nil {
		drawContainImage(dc, src, slotX, slotY, slotSize, slotSize)
	} else {
		drawImageGlyph(dc, float64(slotX+slotSize/2), float64(slotY+slotSize/2), 120)
	}

	c.drawCTABar(dc)
}

// renderCentered draws the stacked, center-aligned layout over a colored
// or gradient background.
func (c *Composer) renderCentered(dc *gg.Context, cnt content, title, description string, src image.Image) {
	paintCanvas(dc, cnt, nil, false)

	textColor := whiteColor
	if cnt.textColor != nil {
		textColor = *cnt.textColor
	}

	centerX := float64(Width) / 2
	y := 90.0

	// Feature slot: circular avatar for profiles, rounded cover for
	// wishlists. Profiles without an avatar simply omit the slot.
	if cnt.circleImage {
		if src != nil {
			cx, cy, r := centerX, y+100, 100.0
			dc.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 77})
			dc.DrawCircle(cx, cy, r+8)
			dc.Fill()
			dc.DrawCircle(cx, cy, r)
			dc.Clip()
			drawCoverImage(dc, src, int(cx-r), int(cy-r), int(2*r), int(2*r))
			dc.ResetClip()
			y += 240
		}
	} else {
		slotW, slotH := 400, 240
		slotX := (Width - slotW) / 2
		dc.SetColor(color.RGBA{R: 255, G: 255, B: 255, A: 77})
		dc.DrawRoundedRectangle(float64(slotX-8), y-8, float64(slotW+16), float64(slotH+16), 20)
		dc.Fill()
		if src != nil {
			dc.DrawRoundedRectangle(float64(slotX), y, float64(slotW), float64(slotH), 16)
			dc.Clip()
			drawCoverImage(dc, src, slotX, int(y), slotW, slotH)
			dc.ResetClip()
		} else {
			dc.SetColor(color.RGBA{R: 0, G: 0, B: 0, A: 31})
			dc.DrawRoundedRectangle(float64(slotX), y, float64(slotW), float64(slotH), 16)
			dc.Fill()
			drawImageGlyph(dc, centerX, y+float64(slotH)/2, 96)
		}
		y += float64(slotH) + 40
	}

	dc.SetFontFace(boldFace(56))
	dc.SetColor(textColor)
	y += drawWrapped(dc, title, centerX, y, 1000, 1.1, gg.AlignCenter)

	if cnt.subtitle != "" {
		y += 14
		dc.SetFontFace(regularFace(26))
		dc.SetColor(withAlpha(textColor, 230))
		y += drawWrapped(dc, cnt.subtitle, centerX, y, 1000, 1.2, gg.AlignCenter)
	}

	if description != "" {
		y += 20
		dc.SetFontFace(regularFace(24))
		dc.SetColor(withAlpha(textColor, 230))
		y += drawWrapped(dc, description, centerX, y, 800, 1.3, gg.AlignCenter)
	}

	if cnt.badge != "" {
		y += 18
		dc.SetFontFace(regularFace(22))
		dc.SetColor(withAlpha(textColor, 204))
		drawWrapped(dc, cnt.badge, centerX, y, 800, 1.2, gg.AlignCenter)
	}

	// Brand line pinned to the bottom edge.
	dc.SetFontFace(regularFace(20))
	dc.SetColor(withAlpha(textColor, 179))
	dc.DrawStringAnchored(fmt.Sprintf("%s - Share your wishlists", c.brand), centerX, Height-40, 0.5, 0.5)
}

// renderBanner draws the full-bleed layout: photographic background (or
// the canvas fallback chain), legibility overlay, left-aligned text.
func (c *Composer) renderBanner(dc *gg.Context, cnt content, title, description string, src image.Image) {
	if photographic := paintCanvas(dc, cnt, src, true); photographic {
		drawLegibilityOverlay(dc)
	}

	dc.SetFontFace(boldFace(30))
	dc.SetColor(whiteColor)
	dc.DrawString(strings.ToLower(c.brand), marginX, 72)

	textX := float64(marginX)
	y := 210.0

	dc.SetFontFace(boldFace(48))
	dc.SetColor(whiteColor)
	y += drawWrapped(dc, title, textX, y, 640, 1.15, gg.AlignLeft)

	if description != "" {
		y += 22
		dc.SetFontFace(regularFace(24))
		dc.SetColor(withAlpha(whiteColor, 230))
		y += drawWrapped(dc, description, textX, y, 600, 1.35, gg.AlignLeft)
	}

	if cnt.badge != "" {
		y += 26
		dc.SetFontFace(boldFace(28))
		dc.SetColor(whiteColor)
		y += drawWrapped(dc, cnt.badge, textX, y, 600, 1.2, gg.AlignLeft)
	}

	if cnt.subtitle != "" {
		y += 18
		dc.SetFontFace(regularFace(22))
		dc.SetColor(color.RGBA{R: 0xB3, G: 0xB3, B: 0xB3, A: 255})
		drawWrapped(dc, cnt.subtitle, textX, y, 600, 1.2, gg.AlignLeft)
	}

	c.drawCTABar(dc)
}

// drawCTABar pins the fixed-height "download app" bar to the bottom
// edge. Decorative only; the image itself is not interactive.
func (c *Composer) drawCTABar(dc *gg.Context) {
	dc.SetColor(barColor)
	dc.DrawRectangle(0, Height-ctaHeight, Width, ctaHeight)
	dc.Fill()

	dc.SetFontFace(boldFace(18))
	dc.SetColor(whiteColor)
	dc.DrawStringAnchored("download app", Width/2, Height-ctaHeight/2, 0.5, 0.5)
}

// drawWrapped draws word-wrapped text with its top-left (or top-center
// for AlignCenter) anchored at (x, y) and returns the rendered height so
// callers can stack blocks.
func drawWrapped(dc *gg.Context, text string, x, y, width, lineSpacing float64, align gg.Align) float64 {
	wrapped := strings.Join(dc.WordWrap(text, width), "\n")
	_, h := dc.MeasureMultilineString(wrapped, lineSpacing)

	ax := 0.0
	if align == gg.AlignCenter {
		ax = 0.5
	}
	dc.DrawStringWrapped(text, x, y, ax, 0, width, lineSpacing, align)
	return h
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
