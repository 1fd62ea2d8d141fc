package services

import (
	"context"
	"fmt"

	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys used in the config store.
const (
	keySearchLimit     = "search.limit"
	keyDebounceMS      = "search.debounce_ms"
	keyMetadataBaseURL = "metadata.base_url"
	keyDataDir         = "data.dir"
)

// SettingsService maps application settings onto the config store.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// Get returns the current settings with defaults applied.
func (s *SettingsService) Get(_ context.Context) (*domain.AppSettings, error) {
	settings := domain.AppSettings{
		SearchLimit:     s.config.GetInt(keySearchLimit),
		DebounceMS:      s.config.GetInt(keyDebounceMS),
		MetadataBaseURL: s.config.GetString(keyMetadataBaseURL),
		DataDir:         s.config.GetString(keyDataDir),
	}.Normalise()
	return &settings, nil
}

// Save persists the given settings.
func (s *SettingsService) Save(_ context.Context, settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	normalised := settings.Normalise()

	pairs := map[string]any{
		keySearchLimit:     normalised.SearchLimit,
		keyDebounceMS:      normalised.DebounceMS,
		keyMetadataBaseURL: normalised.MetadataBaseURL,
		keyDataDir:         normalised.DataDir,
	}
	for key, value := range pairs {
		if err := s.config.Set(key, value); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}
	return nil
}
