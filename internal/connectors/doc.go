// Package connectors resolves where raw table text comes from.
//
// Each table (catalog and generic content) is read from one primary source
// (the published CSV export or the Sheets API) with the local file as the
// single fallback. The strategy is chosen once from configuration.
//
// Sub-packages hold the concrete sources:
//   - httpcsv: published spreadsheet CSV export over HTTP
//   - google/sheets: Sheets API v4 range reads
//   - filesystem: local files and the development file watcher
package connectors
