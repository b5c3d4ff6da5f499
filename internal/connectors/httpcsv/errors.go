package httpcsv

import (
	"errors"
	"regexp"
)

var (
	// ErrUnexpectedStatus indicates a non-2xx response.
	ErrUnexpectedStatus = errors.New("httpcsv: unexpected status")

	// ErrNotCSV indicates the body is an HTML document rather than CSV.
	ErrNotCSV = errors.New("httpcsv: response is HTML, not CSV")

	// ErrBodyTooLarge indicates the export exceeded the download limit.
	ErrBodyTooLarge = errors.New("httpcsv: response body too large")
)

var htmlPattern = regexp.MustCompile(`(?i)<!doctype html|<html`)

// LooksLikeHTML reports whether body resembles an HTML document.
func LooksLikeHTML(body []byte) bool {
	return htmlPattern.Match(body)
}
