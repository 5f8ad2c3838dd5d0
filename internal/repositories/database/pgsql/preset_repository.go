package pgsql

import (
	"context"
	"fmt"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/soyjefu/theprepared-PFM/internal/models"
	"github.com/soyjefu/theprepared-PFM/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const presetColumns = `preset_id, user_id, name, preset_type, item, amount, debit_account_id, credit_account_id, day_of_month, created_at`

type PgxPresetRepository struct {
	BaseRepository
}

func newPgxPresetRepository(pool *pgxpool.Pool) portsrepo.PresetRepositoryFacade {
	return &PgxPresetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PresetRepositoryFacade = (*PgxPresetRepository)(nil)

func scanPreset(row rowScanner) (domain.Preset, error) {
	var m models.Preset
	err := row.Scan(
		&m.PresetID,
		&m.UserID,
		&m.Name,
		&m.PresetType,
		&m.Item,
		&m.Amount,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.DayOfMonth,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Preset{}, err
	}
	return mapping.ToDomainPreset(m), nil
}

func (r *PgxPresetRepository) FindPresetByID(ctx context.Context, userID string, presetID string) (*domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = $1 AND preset_id = $2;`
	p, err := scanPreset(r.Pool.QueryRow(ctx, query, userID, presetID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find preset %s", presetID))
	}
	return &p, nil
}

// ListPresets retrieves all presets of the user. Ordering is left to the service.
func (r *PgxPresetRepository) ListPresets(ctx context.Context, userID string) ([]domain.Preset, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+presetColumns+` FROM presets WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query presets for user %s: %w", userID, err)
	}
	defer rows.Close()

	presets := []domain.Preset{}
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preset rows: %w", err)
	}
	return presets, nil
}

func (r *PgxPresetRepository) SavePreset(ctx context.Context, preset domain.Preset) error {
	m := mapping.ToModelPreset(preset)
	query := `
		INSERT INTO presets (` + presetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PresetID, m.UserID, m.Name, m.PresetType, m.Item, m.Amount,
		m.DebitAccountID, m.CreditAccountID, m.DayOfMonth, m.CreatedAt)
	return translateError(err, fmt.Sprintf("failed to save preset %q", m.Name))
}

func (r *PgxPresetRepository) UpdatePreset(ctx context.Context, preset domain.Preset) error {
	m := mapping.ToModelPreset(preset)
	query := `
		UPDATE presets
		SET name = $3, preset_type = $4, item = $5, amount = $6, debit_account_id = $7, credit_account_id = $8, day_of_month = $9
		WHERE user_id = $1 AND preset_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.PresetID, m.Name, m.PresetType, m.Item, m.Amount,
		m.DebitAccountID, m.CreditAccountID, m.DayOfMonth)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update preset %s", m.PresetID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPresetRepository) DeletePreset(ctx context.Context, userID string, presetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM presets WHERE user_id = $1 AND preset_id = $2;`, userID, presetID)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", presetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
