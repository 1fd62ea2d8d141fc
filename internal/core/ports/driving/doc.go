// Package driving defines the interfaces through which external actors
// (CLI, TUI, MCP server) drive the core services.
package driving
