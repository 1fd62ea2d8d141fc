// Package mcp provides an MCP (Model Context Protocol) server adapter for Stacks.
// It enables AI assistants like Claude to browse and update the reading catalogue.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
