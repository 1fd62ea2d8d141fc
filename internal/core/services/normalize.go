package services

import "strings"

// NormalizeQuery turns raw keystroke input into the canonical query used
// for cache keys and equality checks. Whitespace-only input normalises
// to the empty string, which the orchestrator treats as "no query".
//
// Case is deliberately preserved: cache keys are case sensitive even
// though the local scan matches case-insensitively.
func NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}
