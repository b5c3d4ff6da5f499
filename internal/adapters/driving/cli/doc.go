// Package cli provides the storefront command-line interface.
//
// Commands are built with cobra. Services are constructed lazily by a
// Bootstrap function supplied from main, so commands such as "version"
// run without touching configuration or the network.
package cli
