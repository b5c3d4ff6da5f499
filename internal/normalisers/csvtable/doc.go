// Package csvtable decodes the two tabular wire formats of the storefront:
// the product catalog (one product per row) and the generic content sheet
// (one header row and one data row of long-form text).
//
// Catalog decoding is lenient: headers are trimmed, missing columns decode
// as empty strings and unknown columns are ignored. Generic content uses a
// small quoted-CSV parser so multi-paragraph fields survive intact.
package csvtable
