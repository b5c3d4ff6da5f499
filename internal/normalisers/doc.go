// Package normalisers groups the packages that turn raw text into
// domain values.
//
//   - csvtable: catalog and generic content CSV decoding
//   - markdown: long-form product content rendered to HTML
package normalisers
