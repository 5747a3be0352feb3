package ogimage

import (
	"bytes"
	"embed"
	"image"
	"image/color"
	_ "image/png"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

//go:embed assets/bg_default.png
var assetFS embed.FS

// Fixed styling constants. These are part of the image contract: they
// never vary with content, which keeps identical inputs producing
// identical pixels.
var (
	gradientStart = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 255} // #667eea
	gradientEnd   = color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 255} // #764ba2

	inkColor    = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 255} // #1A1A1A
	mutedColor  = color.RGBA{R: 0x54, G: 0x54, B: 0x54, A: 255} // #545454
	slotColor   = color.RGBA{R: 0xF7, G: 0xF7, B: 0xF7, A: 255} // #F7F7F7
	glyphColor  = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 255} // #D1D5DB
	whiteColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}
	barColor    = inkColor
	overlayInk  = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 255}
	overlayLoA  = uint8(51)  // 0.20 alpha at the light edge
	overlayHiA  = uint8(242) // 0.95 alpha at the text edge
)

var defaultBackground = mustDecodeAsset("assets/bg_default.png")

func mustDecodeAsset(name string) image.Image {
	data, err := assetFS.ReadFile(name)
	if err != nil {
		panic("ogimage: missing bundled asset " + name)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		panic("ogimage: corrupt bundled asset " + name)
	}
	return img
}

// fillGradient paints the fixed diagonal brand gradient across the whole
// canvas.
func fillGradient(dc *gg.Context, start, end color.RGBA) {
	grad := gg.NewLinearGradient(0, 0, float64(dc.Width()), float64(dc.Height()))
	grad.AddColorStop(0, start)
	grad.AddColorStop(1, end)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
}

// fillSolid paints the canvas a single color.
func fillSolid(dc *gg.Context, c color.Color) {
	dc.SetColor(c)
	dc.Clear()
}

// drawCoverImage scales img to cover the w*h box at (x, y), cropping the
// overflow, like CSS object-fit: cover.
func drawCoverImage(dc *gg.Context, img image.Image, x, y, w, h int) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	// Crop the source to the target aspect ratio, centered.
	targetRatio := float64(w) / float64(h)
	srcRatio := float64(srcW) / float64(srcH)

	crop := bounds
	if srcRatio > targetRatio {
		cropW := int(float64(srcH) * targetRatio)
		offset := (srcW - cropW) / 2
		crop = image.Rect(bounds.Min.X+offset, bounds.Min.Y, bounds.Min.X+offset+cropW, bounds.Max.Y)
	} else if srcRatio < targetRatio {
		cropH := int(float64(srcW) / targetRatio)
		offset := (srcH - cropH) / 2
		crop = image.Rect(bounds.Min.X, bounds.Min.Y+offset, bounds.Max.X, bounds.Min.Y+offset+cropH)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, xdraw.Src, nil)
	dc.DrawImage(dst, x, y)
}

// drawContainImage scales img to fit inside the w*h box at (x, y),
// centered, like CSS object-fit: contain.
func drawContainImage(dc *gg.Context, img image.Image, x, y, w, h int) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	scale := float64(w) / float64(srcW)
	if s := float64(h) / float64(srcH); s < scale {
		scale = s
	}
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	dc.DrawImage(dst, x+(w-dstW)/2, y+(h-dstH)/2)
}

// drawLegibilityOverlay lays the fixed right-to-left dark gradient over a
// photographic background so text stays readable whatever the photo is.
func drawLegibilityOverlay(dc *gg.Context) {
	grad := gg.NewLinearGradient(float64(dc.Width()), 0, 0, 0)
	grad.AddColorStop(0, color.RGBA{R: overlayInk.R, G: overlayInk.G, B: overlayInk.B, A: overlayLoA})
	grad.AddColorStop(1, color.RGBA{R: overlayInk.R, G: overlayInk.G, B: overlayInk.B, A: overlayHiA})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
}

// drawImageGlyph draws the generic picture-frame icon used when an image
// slot has no source: a rounded frame, a small sun, and a mountain line.
func drawImageGlyph(dc *gg.Context, cx, cy, size float64) {
	dc.SetColor(glyphColor)
	dc.SetLineWidth(size / 24)

	half := size / 2
	dc.DrawRoundedRectangle(cx-half, cy-half, size, size, size/9)
	dc.Stroke()

	dc.DrawCircle(cx-size/5, cy-size/5, size/11)
	dc.Stroke()

	dc.MoveTo(cx+half-size/12, cy+size/10)
	dc.LineTo(cx+size/8, cy-size/6)
	dc.LineTo(cx-half+size/12, cy+half-size/12)
	dc.Stroke()
}
