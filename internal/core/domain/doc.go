// Package domain defines the core business entities for the storefront.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: A catalog entry normalised from one spreadsheet row
//   - RawProductRow: The untyped spreadsheet row before normalisation
//   - GenericContent: Site-wide boilerplate text blocks
//   - SiteSettings: Resolved runtime configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
