package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/google/uuid"
)

type presetService struct {
	BaseService
	presetRepo  portsrepo.PresetRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewPresetService creates the entry preset service.
func NewPresetService(presetRepo portsrepo.PresetRepositoryFacade, accountRepo portsrepo.AccountReader, opts ...Option) portssvc.PresetSvcFacade {
	return &presetService{
		BaseService: newBaseService(opts),
		presetRepo:  presetRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.PresetSvcFacade = (*presetService)(nil)

func (s *presetService) checkAccounts(ctx context.Context, userID string, p *domain.Preset) error {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, userID, []string{p.DebitAccountID, p.CreditAccountID})
	if err != nil {
		return fmt.Errorf("failed to load preset accounts: %w", err)
	}
	if _, ok := accounts[p.DebitAccountID]; !ok {
		return fmt.Errorf("debit account %s: %w", p.DebitAccountID, apperrors.ErrNotFound)
	}
	if _, ok := accounts[p.CreditAccountID]; !ok {
		return fmt.Errorf("credit account %s: %w", p.CreditAccountID, apperrors.ErrNotFound)
	}
	return nil
}

func presetFromRequest(req dto.CreatePresetRequest) domain.Preset {
	return domain.Preset{
		Name:            req.Name,
		PresetType:      req.PresetType,
		Item:            req.Item,
		Amount:          req.Amount,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		DayOfMonth:      req.DayOfMonth,
	}
}

func (s *presetService) CreatePreset(ctx context.Context, userID string, req dto.CreatePresetRequest) (*domain.Preset, error) {
	preset := presetFromRequest(req)
	preset.PresetID = uuid.NewString()
	preset.UserID = userID
	preset.CreatedAt = s.Now()
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, userID, &preset); err != nil {
		return nil, err
	}

	if err := s.presetRepo.SavePreset(ctx, preset); err != nil {
		s.LogError(ctx, err, "Failed to save preset", slog.String("preset_name", preset.Name))
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}
	s.LogInfo(ctx, "Preset created", slog.String("preset_id", preset.PresetID))
	return &preset, nil
}

func (s *presetService) GetPresetByID(ctx context.Context, userID string, presetID string) (*domain.Preset, error) {
	preset, err := s.presetRepo.FindPresetByID(ctx, userID, presetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find preset", slog.String("preset_id", presetID))
		}
		return nil, err
	}
	return preset, nil
}

func (s *presetService) ListPresets(ctx context.Context, userID string) (*domain.PresetGroups, error) {
	presets, err := s.presetRepo.ListPresets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list presets")
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	groups := &domain.PresetGroups{Fixed: []domain.Preset{}, Frequent: []domain.Preset{}}
	for _, p := range presets {
		if p.PresetType == domain.PresetFixed {
			groups.Fixed = append(groups.Fixed, p)
		} else {
			groups.Frequent = append(groups.Frequent, p)
		}
	}
	sort.SliceStable(groups.Fixed, func(i, j int) bool {
		a, b := groups.Fixed[i], groups.Fixed[j]
		if da, db := dayOf(a), dayOf(b); da != db {
			return da < db
		}
		return a.Name < b.Name
	})
	sort.SliceStable(groups.Frequent, func(i, j int) bool {
		return groups.Frequent[i].Name < groups.Frequent[j].Name
	})
	return groups, nil
}

func dayOf(p domain.Preset) int {
	if p.DayOfMonth == nil {
		return 0
	}
	return *p.DayOfMonth
}

func (s *presetService) UpdatePreset(ctx context.Context, userID string, presetID string, req dto.UpdatePresetRequest) (*domain.Preset, error) {
	existing, err := s.GetPresetByID(ctx, userID, presetID)
	if err != nil {
		return nil, err
	}

	preset := presetFromRequest(dto.CreatePresetRequest(req))
	preset.PresetID = existing.PresetID
	preset.UserID = existing.UserID
	preset.CreatedAt = existing.CreatedAt
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, userID, &preset); err != nil {
		return nil, err
	}

	if err := s.presetRepo.UpdatePreset(ctx, preset); err != nil {
		s.LogError(ctx, err, "Failed to update preset", slog.String("preset_id", presetID))
		return nil, fmt.Errorf("failed to update preset: %w", err)
	}
	return &preset, nil
}

func (s *presetService) DeletePreset(ctx context.Context, userID string, presetID string) error {
	if err := s.presetRepo.DeletePreset(ctx, userID, presetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete preset", slog.String("preset_id", presetID))
		}
		return err
	}
	s.LogInfo(ctx, "Preset deleted", slog.String("preset_id", presetID))
	return nil
}
