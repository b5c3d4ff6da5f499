// Package filesystem reads the local fallback tables and, in development,
// watches them for edits.
package filesystem
