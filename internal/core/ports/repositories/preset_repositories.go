package repositories

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
)

// PresetReader defines read operations for entry presets
type PresetReader interface {
	// FindPresetByID retrieves a preset owned by the user.
	FindPresetByID(ctx context.Context, userID string, presetID string) (*domain.Preset, error)

	// ListPresets retrieves all presets of the user.
	ListPresets(ctx context.Context, userID string) ([]domain.Preset, error)
}

// PresetWriter defines write operations for entry presets
type PresetWriter interface {
	SavePreset(ctx context.Context, preset domain.Preset) error
	UpdatePreset(ctx context.Context, preset domain.Preset) error
	DeletePreset(ctx context.Context, userID string, presetID string) error
}

// PresetRepositoryFacade combines all preset-related repository interfaces
type PresetRepositoryFacade interface {
	PresetReader
	PresetWriter
}
