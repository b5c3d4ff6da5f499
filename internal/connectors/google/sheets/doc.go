// Package sheets reads a spreadsheet range through the Google Sheets API v4
// and presents it as CSV text, so it can stand in for the published CSV
// export wherever a driven.Source is expected.
package sheets
