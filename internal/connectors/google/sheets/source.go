package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/woodenlobby/storefront/internal/connectors/google"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
	"github.com/woodenlobby/storefront/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source fetches one range of one spreadsheet.
type Source struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	limiter       *google.RateLimiter
}

// New creates a source for readRange (a sheet name or A1 range).
func New(service *sheets.Service, spreadsheetID, readRange string, limiter *google.RateLimiter) *Source {
	if limiter == nil {
		limiter = google.NewRateLimiter(google.ServiceSheets)
	}
	return &Source{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		limiter:       limiter,
	}
}

// Name returns the source name used in logs.
func (s *Source) Name() string {
	return "sheets-api"
}

// Fetch reads the range with formatted values and writes it as CSV.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Acquire(); err != nil {
		return nil, fmt.Errorf("sheets %s!%s: %w", s.spreadsheetID, s.readRange, err)
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		err = google.WrapError(err)
		if hint := google.Hint(err); hint != "" {
			return nil, fmt.Errorf("sheets %s!%s (%s): %w", s.spreadsheetID, s.readRange, hint, err)
		}
		return nil, fmt.Errorf("sheets %s!%s: %w", s.spreadsheetID, s.readRange, err)
	}

	logger.Debug("Sheets API: %d rows from %s", len(resp.Values), resp.Range)
	return valuesToCSV(resp.Values)
}

// valuesToCSV writes rows of cell values as CSV. Cells are rendered with
// fmt so numbers and booleans survive; ragged rows are kept as they are.
func valuesToCSV(values [][]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range values {
		record := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				record[i] = fmt.Sprint(cell)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
