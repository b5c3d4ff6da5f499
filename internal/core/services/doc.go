// Package services implements the driving port interfaces.
// Services contain the catalog business logic and orchestrate
// calls to driven ports (sources, decoders, caches).
//
// Row normalisation, slug assignment, the active filter and the
// featured selection live here and are pure functions of their input.
package services
