// Package domain contains the core business entities for stacks.
// It has no dependencies on adapters or infrastructure.
package domain
