package domain

import (
	"strings"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PresetType distinguishes recurring fixed entries from quick-entry shortcuts.
type PresetType string

const (
	PresetFixed    PresetType = "FIXED"
	PresetFrequent PresetType = "FREQUENT"
)

// Preset is a named template surfaced on the entry form.
type Preset struct {
	PresetID        string           `json:"presetID"`
	UserID          string           `json:"userID"`
	Name            string           `json:"name"`
	PresetType      PresetType       `json:"presetType"`
	Item            string           `json:"item"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	DebitAccountID  string           `json:"debitAccountID"`
	CreditAccountID string           `json:"creditAccountID"`
	DayOfMonth      *int             `json:"dayOfMonth,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Validate checks the per-type field requirements. FREQUENT presets drop any
// day of month since it is unused for them.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewFieldError("name", "name is required")
	}
	if strings.TrimSpace(p.Item) == "" {
		return apperrors.NewFieldError("item", "item is required")
	}
	if p.Amount != nil && (p.Amount.IsNegative() || !p.Amount.IsInteger()) {
		return apperrors.NewFieldError("amount", "amount must be a non-negative whole number")
	}
	switch p.PresetType {
	case PresetFixed:
		if p.Amount == nil {
			return apperrors.NewFieldError("amount", "amount is required for fixed presets")
		}
		if p.DayOfMonth == nil {
			return apperrors.NewFieldError("dayOfMonth", "day of month is required for fixed presets")
		}
		if *p.DayOfMonth < 1 || *p.DayOfMonth > 31 {
			return apperrors.NewFieldError("dayOfMonth", "day of month must be between 1 and 31")
		}
	case PresetFrequent:
		p.DayOfMonth = nil
	default:
		return apperrors.NewFieldError("presetType", "unknown preset type %q", p.PresetType)
	}
	return nil
}

// PresetGroups holds presets arranged for the entry form.
type PresetGroups struct {
	Fixed    []Preset `json:"fixed"`
	Frequent []Preset `json:"frequent"`
}
