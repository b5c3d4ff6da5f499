package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/core/ports/driven"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure Decoder implements the interfaces.
var (
	_ driven.CatalogDecoder = (*Decoder)(nil)
	_ driven.ContentDecoder = (*Decoder)(nil)
)

// Decoder implements both table decoders.
type Decoder struct{}

// New creates a new decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeCatalog decodes catalog CSV text into rows.
func (d *Decoder) DecodeCatalog(text []byte) ([]domain.RawProductRow, error) {
	return DecodeCatalog(text)
}

// DecodeGenericContent decodes generic content CSV text.
func (d *Decoder) DecodeGenericContent(text []byte) (domain.GenericContent, error) {
	return DecodeGenericContent(string(text))
}

// DecodeCatalog decodes catalog CSV text into rows. A header row is required.
func DecodeCatalog(text []byte) ([]domain.RawProductRow, error) {
	text = bytes.TrimPrefix(text, utf8BOM)

	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows := make([]domain.RawProductRow, 0)
	if err := gocsv.UnmarshalCSV(&headerReader{r: r}, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, fmt.Errorf("catalog: no header row: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return rows, nil
}

// headerReader cleans the first record before gocsv maps it to struct tags.
type headerReader struct {
	r          *csv.Reader
	headerDone bool
}

func (h *headerReader) Read() ([]string, error) {
	rec, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if !h.headerDone {
		h.headerDone = true
		rec = cleanHeader(rec)
	}
	return rec, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := h.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// cleanHeader trims names and renames repeats so only the first
// occurrence of a column is mapped.
func cleanHeader(rec []string) []string {
	seen := make(map[string]int, len(rec))
	out := make([]string, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s#%d", name, n)
		}
		out[i] = name
	}
	return out
}
