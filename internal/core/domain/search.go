package domain

// SearchPhase identifies which member of the search state variant is active.
type SearchPhase int

const (
	// SearchIdle means no query is in progress and results are empty.
	SearchIdle SearchPhase = iota
	// SearchSearching means a query has been dispatched and not yet resolved.
	SearchSearching
	// SearchCompleted means the most recent query for the current input resolved.
	SearchCompleted
)

// String returns the string representation of the phase.
func (p SearchPhase) String() string {
	switch p {
	case SearchIdle:
		return "idle"
	case SearchSearching:
		return "searching"
	case SearchCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// SearchState is the tagged variant exposed by the incremental search
// orchestrator. Query is set for the Searching and Completed phases and
// always equals the orchestrator's current normalised input at the moment
// the state was set. Results is set only for Completed and preserves the
// source order of the hits.
type SearchState struct {
	Phase   SearchPhase
	Query   string
	Results []Book
}

// IdleSearchState returns the idle state.
func IdleSearchState() SearchState {
	return SearchState{Phase: SearchIdle}
}

// SearchingState returns the in-flight state for a query.
func SearchingState(query string) SearchState {
	return SearchState{Phase: SearchSearching, Query: query}
}

// CompletedState returns the resolved state for a query.
func CompletedState(query string, results []Book) SearchState {
	return SearchState{Phase: SearchCompleted, Query: query, Results: results}
}

// SearchOptions configures a one-shot search.
type SearchOptions struct {
	// Limit is the maximum number of results.
	Limit int
}
