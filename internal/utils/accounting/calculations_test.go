package accounting_test

import (
	"testing"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		side        domain.TransactionType
		accountType domain.AccountType
		want        int64
	}{
		{"debit asset", domain.Debit, domain.Asset, 100},
		{"credit asset", domain.Credit, domain.Asset, -100},
		{"debit expense", domain.Debit, domain.Expense, 100},
		{"credit expense", domain.Credit, domain.Expense, -100},
		{"debit liability", domain.Debit, domain.Liability, -100},
		{"credit liability", domain.Credit, domain.Liability, 100},
		{"debit equity", domain.Debit, domain.Equity, -100},
		{"credit equity", domain.Credit, domain.Equity, 100},
		{"debit revenue", domain.Debit, domain.Revenue, -100},
		{"credit revenue", domain.Credit, domain.Revenue, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.CalculateSignedAmount(d(100), tt.side, tt.accountType)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := accounting.CalculateSignedAmount(d(1), domain.Debit, "UNKNOWN")
	assert.Error(t, err)
}

func TestBalanceFromTotals(t *testing.T) {
	totals := domain.AccountTotals{AccountID: "a", Debit: d(700), Credit: d(200)}

	for _, accType := range []domain.AccountType{domain.Asset, domain.Expense} {
		got, err := accounting.BalanceFromTotals(totals, accType)
		require.NoError(t, err)
		assert.True(t, d(500).Equal(got), "%s: got %s", accType, got)
	}
	for _, accType := range []domain.AccountType{domain.Liability, domain.Equity, domain.Revenue} {
		got, err := accounting.BalanceFromTotals(totals, accType)
		require.NoError(t, err)
		assert.True(t, d(-500).Equal(got), "%s: got %s", accType, got)
	}
}

func TestSignedDelta(t *testing.T) {
	cash := domain.Account{AccountID: "cash", AccountType: domain.Asset}
	card := domain.Account{AccountID: "card", AccountType: domain.Liability}
	txn := domain.Transaction{Amount: d(30), DebitAccountID: "food", CreditAccountID: "card"}

	delta, err := accounting.SignedDelta(txn, card)
	require.NoError(t, err)
	assert.True(t, d(30).Equal(delta))

	delta, err = accounting.SignedDelta(txn, cash)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())
}

func TestValidateCategory(t *testing.T) {
	legal := map[domain.AccountType][]domain.AccountCategory{
		domain.Equity:    {domain.CategoryGeneral},
		domain.Asset:     {domain.CategoryGeneral, domain.CategoryVariable, domain.CategorySaving},
		domain.Liability: {domain.CategoryGeneral, domain.CategoryVariable},
		domain.Revenue:   {domain.CategoryFixed, domain.CategoryVariable},
		domain.Expense:   {domain.CategoryFixed, domain.CategoryVariable},
	}
	all := []domain.AccountCategory{domain.CategoryFixed, domain.CategoryVariable, domain.CategorySaving, domain.CategoryGeneral}

	for accType, allowed := range legal {
		for _, cat := range all {
			err := accounting.ValidateCategory(accType, cat)
			if contains(allowed, cat) {
				assert.NoError(t, err, "%s/%s should be legal", accType, cat)
				continue
			}
			require.Error(t, err, "%s/%s should be rejected", accType, cat)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			var fieldErr *apperrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "category", fieldErr.Field)
		}
		assert.ElementsMatch(t, allowed, accounting.AllowedCategories(accType))
	}

	err := accounting.ValidateCategory("UNKNOWN", domain.CategoryGeneral)
	var fieldErr *apperrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "accountType", fieldErr.Field)
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, domain.CategoryGeneral, accounting.DefaultCategory(domain.Equity))
	assert.Equal(t, domain.CategoryGeneral, accounting.DefaultCategory(domain.Asset))
	assert.Equal(t, domain.CategoryGeneral, accounting.DefaultCategory(domain.Liability))
	assert.Equal(t, domain.CategoryVariable, accounting.DefaultCategory(domain.Revenue))
	assert.Equal(t, domain.CategoryVariable, accounting.DefaultCategory(domain.Expense))
}

func contains(cats []domain.AccountCategory, c domain.AccountCategory) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}
