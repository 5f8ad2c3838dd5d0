package services

import (
	"context"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
)

// PresetSvcFacade defines the operations on entry presets.
type PresetSvcFacade interface {
	CreatePreset(ctx context.Context, userID string, req dto.CreatePresetRequest) (*domain.Preset, error)
	GetPresetByID(ctx context.Context, userID string, presetID string) (*domain.Preset, error)

	// ListPresets returns fixed presets sorted by day of month then name and
	// frequent presets sorted by name.
	ListPresets(ctx context.Context, userID string) (*domain.PresetGroups, error)

	UpdatePreset(ctx context.Context, userID string, presetID string, req dto.UpdatePresetRequest) (*domain.Preset, error)
	DeletePreset(ctx context.Context, userID string, presetID string) error
}
