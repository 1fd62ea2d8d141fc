package tui

import "errors"

// ErrMissingSearchFactory is returned when the search factory is not provided.
var ErrMissingSearchFactory = errors.New("tui: search factory is required")

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("tui: library service is required")

// ErrMissingActivityService is returned when the activity service is not provided.
var ErrMissingActivityService = errors.New("tui: activity service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
