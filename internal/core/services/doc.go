// Package services implements the core application services.
//
// The centrepiece is the incremental search orchestrator (Orchestrator)
// and its collaborators: query normalisation, the session result cache,
// the debounce scheduler, the cancellable query dispatcher, and the
// local catalogue fallback scan. The remaining services (library,
// progress, review, activity, settings) are thin coordination over the
// driven stores.
package services
