// Package httpcsv fetches a published spreadsheet's CSV export over HTTP.
//
// Responses are never cached. A non-2xx status, a transport failure, or a
// body that looks like an HTML page (an unpublished sheet redirects to a
// sign-in page) are all errors, so a fallback source can take over.
package httpcsv
