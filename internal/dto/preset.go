package dto

import (
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePresetRequest defines a new entry preset. Amount and dayOfMonth are
// required for FIXED presets.
type CreatePresetRequest struct {
	Name            string            `json:"name" binding:"required,max=100"`
	PresetType      domain.PresetType `json:"presetType" binding:"required,oneof=FIXED FREQUENT"`
	Item            string            `json:"item" binding:"required,max=200"`
	Amount          *decimal.Decimal  `json:"amount" swaggertype:"string"`
	DebitAccountID  string            `json:"debitAccountID" binding:"required"`
	CreditAccountID string            `json:"creditAccountID" binding:"required"`
	DayOfMonth      *int              `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
}

// UpdatePresetRequest replaces all fields of a preset.
type UpdatePresetRequest CreatePresetRequest

// PresetResponse defines the data returned for a preset.
type PresetResponse struct {
	PresetID        string            `json:"presetID"`
	Name            string            `json:"name"`
	PresetType      domain.PresetType `json:"presetType"`
	Item            string            `json:"item"`
	Amount          *decimal.Decimal  `json:"amount,omitempty"`
	DebitAccountID  string            `json:"debitAccountID"`
	CreditAccountID string            `json:"creditAccountID"`
	DayOfMonth      *int              `json:"dayOfMonth,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// PresetGroupsResponse splits presets by type.
type PresetGroupsResponse struct {
	Fixed    []PresetResponse `json:"fixed"`
	Frequent []PresetResponse `json:"frequent"`
}

// ToPresetResponse converts a domain.Preset to PresetResponse DTO.
func ToPresetResponse(p *domain.Preset) PresetResponse {
	return PresetResponse{
		PresetID:        p.PresetID,
		Name:            p.Name,
		PresetType:      p.PresetType,
		Item:            p.Item,
		Amount:          p.Amount,
		DebitAccountID:  p.DebitAccountID,
		CreditAccountID: p.CreditAccountID,
		DayOfMonth:      p.DayOfMonth,
		CreatedAt:       p.CreatedAt,
	}
}

func toPresetResponses(presets []domain.Preset) []PresetResponse {
	res := make([]PresetResponse, len(presets))
	for i, p := range presets {
		res[i] = ToPresetResponse(&p)
	}
	return res
}

// ToPresetGroupsResponse converts grouped presets.
func ToPresetGroupsResponse(g *domain.PresetGroups) PresetGroupsResponse {
	return PresetGroupsResponse{
		Fixed:    toPresetResponses(g.Fixed),
		Frequent: toPresetResponses(g.Frequent),
	}
}
