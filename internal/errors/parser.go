package errors

import (
	"context"
	"errors"
	"net"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified form of a lower-level error.
type ErrorInfo struct {
	Code    string // code constant from codes.go
	Message string
}

// ParseError maps repository and network errors onto the pipeline's error
// taxonomy. Anything unrecognized is reported as an internal error so the
// HTTP layer never leaks a raw failure to the client.
func ParseError(err error, entity string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    PreviewNotFound,
			Message: notFoundMessage(entity),
		}
	}

	if isConnectivityError(err) {
		return ErrorInfo{
			Code:    BackendUnavailable,
			Message: "Upstream data service is unavailable, try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong, try again later",
	}
}

// isConnectivityError reports whether err looks like a transient transport
// failure rather than a data-level miss.
func isConnectivityError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout")
}

func notFoundMessage(entity string) string {
	switch strings.ToLower(entity) {
	case "item":
		return "Item not found"
	case "profile":
		return "Profile not found"
	case "wishlist":
		return "Wishlist not found"
	}
	return "Requested data not found"
}
