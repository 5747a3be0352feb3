package errors

// Error code constants
// Format: CATEGORY_SPECIFIC_DETAIL
// Clients and log queries key off these codes, not the messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // malformed public identifier
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required parameter
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // generic bad input

	// ==================== Preview resolution (PREVIEW_) ====================
	PreviewNotFound       = "PREVIEW_NOT_FOUND"       // no record for the identifier
	PreviewInvalidVariant = "PREVIEW_INVALID_VARIANT" // unknown layout variant
	PreviewRenderFailed   = "PREVIEW_RENDER_FAILED"   // image composition failed

	// ==================== Backend (BACKEND_) ====================
	BackendUnavailable = "BACKEND_UNAVAILABLE" // remote store unreachable

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalConfigError = "INTERNAL_CONFIG_ERROR"
)
