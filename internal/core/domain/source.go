package domain

import "strings"

// AcquisitionStrategy names how raw tabular text is acquired.
// It is chosen explicitly in configuration, never inferred from the environment.
type AcquisitionStrategy string

const (
	// StrategyRemote fetches the published CSV export and falls back to the local file.
	// Without a configured URL it behaves like StrategyLocal.
	StrategyRemote AcquisitionStrategy = "remote"

	// StrategyLocal reads only the local fallback file.
	StrategyLocal AcquisitionStrategy = "local"

	// StrategySheetsAPI reads the sheet through the Google Sheets API
	// and falls back to the local file.
	StrategySheetsAPI AcquisitionStrategy = "sheets-api"
)

// ParseStrategy parses a strategy name. Matching ignores case and surrounding space.
func ParseStrategy(s string) (AcquisitionStrategy, error) {
	st := AcquisitionStrategy(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrUnsupportedStrategy
	}
	return st, nil
}

// IsValid returns true if the strategy is recognised.
func (s AcquisitionStrategy) IsValid() bool {
	switch s {
	case StrategyRemote, StrategyLocal, StrategySheetsAPI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s AcquisitionStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s AcquisitionStrategy) Description() string {
	switch s {
	case StrategyRemote:
		return "Published CSV export, local file fallback"
	case StrategyLocal:
		return "Local file only"
	case StrategySheetsAPI:
		return "Google Sheets API, local file fallback"
	default:
		return unknownDescription
	}
}

// SourceSettings locates one logical table (catalog or generic content).
type SourceSettings struct {
	// RemoteURL is the published CSV export URL. Empty means not configured.
	RemoteURL string

	// LocalPath is the fallback file, relative to the working directory.
	LocalPath string

	// SheetsRange is the A1 range read under StrategySheetsAPI (e.g. "Catalog!A1:Z").
	SheetsRange string
}
