package google

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates an invalid API key or credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates the sheet is not shared with the caller.
	ErrForbidden = errors.New("google: forbidden (sheet not shared)")

	// ErrNotFound indicates the spreadsheet or range does not exist.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || hasCode(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) || hasCode(err, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasCode(err, http.StatusNotFound)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited) || hasCode(err, http.StatusTooManyRequests)
}

func hasCode(err error, code int) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// WrapError converts a Google API error to a more specific error type.
// Unrecognised errors are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusBadRequest:
		// The Sheets API answers 400 for an unparsable range.
		return errors.Join(ErrNotFound, err)
	case http.StatusUnauthorized:
		return errors.Join(ErrUnauthorized, err)
	case http.StatusForbidden:
		return errors.Join(ErrForbidden, err)
	case http.StatusNotFound:
		return errors.Join(ErrNotFound, err)
	case http.StatusTooManyRequests:
		return errors.Join(ErrRateLimited, err)
	default:
		return err
	}
}

// Hint names what to check for a classified error, or "" when unclassified.
func Hint(err error) string {
	switch {
	case IsUnauthorized(err):
		return "check the API key or service account credentials"
	case IsForbidden(err):
		return "share the spreadsheet with the service account or make it viewable by link"
	case IsNotFound(err):
		return "check the spreadsheet id and sheet range"
	case IsRateLimited(err):
		return "request budget exhausted"
	default:
		return ""
	}
}
