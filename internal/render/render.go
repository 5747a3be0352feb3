// Package render holds the embedded HTML templates for the preview pages
// and the static marketing pages, plus the view models they consume.
package render

import (
	"embed"
	"html/template"

	"github.com/noto-space/noto-web/internal/app/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded template set. Called once at startup and
// handed to the router.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// PreviewPage is the view model for the human-readable fallback card
// shown to browsers that follow a shared link directly. Optional fields
// render as nothing when empty.
type PreviewPage struct {
	Meta        service.LinkMetadata
	Title       string
	Subtitle    string // attribution line, e.g. "@maria"
	Description string
	Badge       string // formatted price or item count
	ImageURL    string // raw source image for the in-page card
	CoverColor  string // hex background accent, wishlists only
	RoundImage  bool   // avatars render as a circle
	DeepLink    string
	StoreURL    string
	Brand       string
}

// NotFoundPage is the view model for the generic not-found document.
type NotFoundPage struct {
	Meta  service.LinkMetadata
	Brand string
}

// StaticPage is the view model for the fixed marketing pages.
type StaticPage struct {
	Title    string
	Brand    string
	StoreURL string
}
