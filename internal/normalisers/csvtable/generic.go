package csvtable

import (
	"fmt"
	"strings"

	"github.com/woodenlobby/storefront/internal/core/domain"
	"github.com/woodenlobby/storefront/internal/logger"
)

// ParseQuoted splits CSV text into rows of trimmed fields.
//
// Inside double quotes, commas and newlines are literal and "" is one
// quote. Outside quotes a comma ends a field, a newline ends a row and a
// carriage return is dropped. Rows whose fields are all empty are skipped.
func ParseQuoted(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRow := func() {
		endField()
		for _, f := range row {
			if f != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\n':
			endRow()
		case '\r':
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

// DecodeGenericContent reads the header row and the first data row.
// Fewer than two rows is an error so that callers do not cache it.
func DecodeGenericContent(text string) (domain.GenericContent, error) {
	rows := ParseQuoted(strings.TrimSpace(strings.TrimPrefix(text, "\ufeff")))
	if len(rows) < 2 {
		return domain.GenericContent{}, fmt.Errorf("generic content: want header and data row, got %d rows: %w",
			len(rows), domain.ErrInvalidInput)
	}

	header, values := rows[0], rows[1]
	var content domain.GenericContent
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		value := ""
		if i < len(values) {
			value = Unescape(values[i])
		}
		if !content.Set(name, value) {
			logger.Debug("Generic content: ignoring column %q", name)
		}
	}
	return content, nil
}

// Unescape undoes the sheet export's text escaping: \n becomes a newline,
// \" becomes a quote, \r is dropped, then one layer of surrounding quotes
// is removed and the result trimmed.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\r`, "")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
