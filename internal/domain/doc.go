// Package domain holds the core entities and error types of tgship.
//
// It has no dependencies on infrastructure. The application layer
// (internal/app) operates on these types; adapters translate them to
// and from the wire.
package domain
