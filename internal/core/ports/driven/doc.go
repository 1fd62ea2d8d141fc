// Package driven defines the interfaces the core depends on.
// Adapters (storage, metadata API, config) implement these ports.
package driven
