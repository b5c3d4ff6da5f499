package driven

import "github.com/woodenlobby/storefront/internal/core/domain"

// CatalogDecoder turns catalog CSV text into untyped rows.
// Missing columns decode as empty strings; unknown columns are ignored.
type CatalogDecoder interface {
	DecodeCatalog(text []byte) ([]domain.RawProductRow, error)
}

// ContentDecoder turns generic content CSV text into a GenericContent record.
// Only the first data row is used.
type ContentDecoder interface {
	DecodeGenericContent(text []byte) (domain.GenericContent, error)
}
