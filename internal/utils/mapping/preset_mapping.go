package mapping

import (
	"database/sql"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelPreset converts a domain Preset to a model Preset
func ToModelPreset(d domain.Preset) models.Preset {
	m := models.Preset{
		PresetID:        d.PresetID,
		UserID:          d.UserID,
		Name:            d.Name,
		PresetType:      string(d.PresetType),
		Item:            d.Item,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		CreatedAt:       d.CreatedAt,
	}
	if d.Amount != nil {
		m.Amount = decimal.NullDecimal{Decimal: *d.Amount, Valid: true}
	}
	if d.DayOfMonth != nil {
		m.DayOfMonth = sql.NullInt32{Int32: int32(*d.DayOfMonth), Valid: true}
	}
	return m
}

// ToDomainPreset converts a model Preset to a domain Preset
func ToDomainPreset(m models.Preset) domain.Preset {
	d := domain.Preset{
		PresetID:        m.PresetID,
		UserID:          m.UserID,
		Name:            m.Name,
		PresetType:      domain.PresetType(m.PresetType),
		Item:            m.Item,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		CreatedAt:       m.CreatedAt,
	}
	if m.Amount.Valid {
		amount := m.Amount.Decimal
		d.Amount = &amount
	}
	if m.DayOfMonth.Valid {
		day := int(m.DayOfMonth.Int32)
		d.DayOfMonth = &day
	}
	return d
}
