package domain

// Default settings values.
const (
	// DefaultSearchLimit is the default maximum number of search results.
	DefaultSearchLimit = 20

	// DefaultDebounceMS is the quiet period before an incremental search
	// dispatches, in milliseconds.
	DefaultDebounceMS = 300

	// DefaultMetadataBaseURL is the Open Library search endpoint.
	DefaultMetadataBaseURL = "https://openlibrary.org"
)

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// SearchLimit caps the number of results per search.
	SearchLimit int

	// DebounceMS is the incremental-search debounce window in milliseconds.
	DebounceMS int

	// MetadataBaseURL is the base URL of the book-metadata API.
	MetadataBaseURL string

	// DataDir overrides the default data directory when non-empty.
	DataDir string
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() AppSettings {
	return AppSettings{
		SearchLimit:     DefaultSearchLimit,
		DebounceMS:      DefaultDebounceMS,
		MetadataBaseURL: DefaultMetadataBaseURL,
	}
}

// Normalise fills zero values with defaults.
func (s AppSettings) Normalise() AppSettings {
	if s.SearchLimit <= 0 {
		s.SearchLimit = DefaultSearchLimit
	}
	if s.DebounceMS <= 0 {
		s.DebounceMS = DefaultDebounceMS
	}
	if s.MetadataBaseURL == "" {
		s.MetadataBaseURL = DefaultMetadataBaseURL
	}
	return s
}
