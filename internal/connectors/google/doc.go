// Package google provides shared infrastructure for Google connectors.
//
// This package contains common utilities used by the sheets connector and
// the remote CSV export fetcher, including:
//   - Service factory for the Sheets API with API key or service account auth
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google quotas
//
// # Usage
//
//	svc, err := google.NewSheetsService(ctx, google.Credentials{APIKey: key})
//
// # OAuth2 Scopes
//
// Service accounts are granted a single scope:
//   - https://www.googleapis.com/auth/spreadsheets.readonly
package google
