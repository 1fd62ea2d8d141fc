// Package openlibrary implements book metadata search against the
// Open Library search API.
package openlibrary
