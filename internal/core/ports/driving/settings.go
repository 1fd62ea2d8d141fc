package driving

import (
	"context"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
)

// SettingsService loads and persists application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get(ctx context.Context) (*domain.AppSettings, error)

	// Save persists the given settings.
	Save(ctx context.Context, settings *domain.AppSettings) error
}
