// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Source: Produces raw tabular text (remote export, Sheets API, local file)
//   - CatalogDecoder: Turns catalog text into untyped rows
//   - ContentDecoder: Turns generic content text into a GenericContent record
//   - ContentCache: Single-slot memo for GenericContent
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
