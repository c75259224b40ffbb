package contract

import (
	"context"

	"event-ticketing-be/internal/entity"
)

// SettingsRepository manages the singleton event settings row.
type SettingsRepository interface {
	// Get returns the settings row, creating it with the given default
	// event name when it does not exist yet.
	Get(ctx context.Context, defaultName string) (*entity.EventSettings, error)

	// Save persists the settings, always against the fixed singleton identity.
	Save(ctx context.Context, settings *entity.EventSettings) error
}
