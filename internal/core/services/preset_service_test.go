package services_test

import (
	"context"
	"testing"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/core/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestListPresets_GroupsAndSorts(t *testing.T) {
	presetRepo := new(MockPresetRepository)
	svc := services.NewPresetService(presetRepo, new(MockAccountRepository))
	ctx := context.Background()

	presetRepo.On("ListPresets", ctx, testUserID).Return([]domain.Preset{
		{PresetID: "1", Name: "통신비", PresetType: domain.PresetFixed, DayOfMonth: intPtr(25)},
		{PresetID: "2", Name: "커피", PresetType: domain.PresetFrequent},
		{PresetID: "3", Name: "월세", PresetType: domain.PresetFixed, DayOfMonth: intPtr(1)},
		{PresetID: "4", Name: "보험", PresetType: domain.PresetFixed, DayOfMonth: intPtr(25)},
		{PresetID: "5", Name: "점심", PresetType: domain.PresetFrequent},
	}, nil).Once()

	groups, err := svc.ListPresets(ctx, testUserID)
	require.NoError(t, err)

	fixed := make([]string, 0, len(groups.Fixed))
	for _, p := range groups.Fixed {
		fixed = append(fixed, p.Name)
	}
	frequent := make([]string, 0, len(groups.Frequent))
	for _, p := range groups.Frequent {
		frequent = append(frequent, p.Name)
	}
	assert.Equal(t, []string{"월세", "보험", "통신비"}, fixed)
	assert.Equal(t, []string{"점심", "커피"}, frequent)
	presetRepo.AssertExpectations(t)
}

func TestCreatePreset(t *testing.T) {
	ctx := context.Background()
	amount := d(55000)

	t.Run("fixed preset needs a day of month", func(t *testing.T) {
		svc := services.NewPresetService(new(MockPresetRepository), new(MockAccountRepository))
		_, err := svc.CreatePreset(ctx, testUserID, dto.CreatePresetRequest{
			Name: "통신비", PresetType: domain.PresetFixed, Item: "통신비", Amount: &amount,
			DebitAccountID: "food", CreditAccountID: "cash",
		})
		var fieldErr *apperrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "dayOfMonth", fieldErr.Field)
	})

	t.Run("frequent preset drops the day", func(t *testing.T) {
		presetRepo := new(MockPresetRepository)
		accountRepo := new(MockAccountRepository)
		svc := services.NewPresetService(presetRepo, accountRepo)
		accountRepo.On("FindAccountsByIDs", ctx, testUserID, []string{"food", "cash"}).
			Return(map[string]domain.Account{"food": foodAccount, "cash": cashAccount}, nil).Once()
		presetRepo.On("SavePreset", ctx, mock.MatchedBy(func(p domain.Preset) bool {
			return p.DayOfMonth == nil && p.UserID == testUserID
		})).Return(nil).Once()

		p, err := svc.CreatePreset(ctx, testUserID, dto.CreatePresetRequest{
			Name: "커피", PresetType: domain.PresetFrequent, Item: "커피",
			DebitAccountID: "food", CreditAccountID: "cash", DayOfMonth: intPtr(3),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.PresetID)
		presetRepo.AssertExpectations(t)
		accountRepo.AssertExpectations(t)
	})

	t.Run("unknown account", func(t *testing.T) {
		accountRepo := new(MockAccountRepository)
		svc := services.NewPresetService(new(MockPresetRepository), accountRepo)
		accountRepo.On("FindAccountsByIDs", ctx, testUserID, []string{"food", "ghost"}).
			Return(map[string]domain.Account{"food": foodAccount}, nil).Once()

		_, err := svc.CreatePreset(ctx, testUserID, dto.CreatePresetRequest{
			Name: "커피", PresetType: domain.PresetFrequent, Item: "커피",
			DebitAccountID: "food", CreditAccountID: "ghost",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
