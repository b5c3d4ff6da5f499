package driven

import "context"

// Source produces the raw tabular text of one logical table.
// Implementations: remote CSV export, Google Sheets API, local file,
// and the fallback composition of two sources.
type Source interface {
	// Name identifies the source in logs (e.g. "remote-csv", "local-file").
	Name() string

	// Fetch returns the full table as CSV text.
	// Every call goes to the underlying location; nothing is cached here.
	Fetch(ctx context.Context) ([]byte, error)
}
