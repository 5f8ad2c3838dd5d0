package accounting

import (
	"fmt"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NaturalSide returns the side on which an account of the given type grows.
// ASSET/EXPENSE grow on the debit side, LIABILITY/EQUITY/REVENUE on the credit side.
func NaturalSide(accountType domain.AccountType) (domain.TransactionType, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return domain.Debit, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return domain.Credit, nil
	}
	return "", fmt.Errorf("unknown account type '%s'", accountType)
}

// CalculateSignedAmount applies the correct sign to an amount posted on the
// given side of an account of the given type.
func CalculateSignedAmount(amount decimal.Decimal, side domain.TransactionType, accountType domain.AccountType) (decimal.Decimal, error) {
	natural, err := NaturalSide(accountType)
	if err != nil {
		return decimal.Zero, err
	}
	if side != natural {
		return amount.Neg(), nil
	}
	return amount, nil
}

// BalanceFromTotals folds debit and credit totals into a balance using the
// sign convention of the account type.
func BalanceFromTotals(totals domain.AccountTotals, accountType domain.AccountType) (decimal.Decimal, error) {
	natural, err := NaturalSide(accountType)
	if err != nil {
		return decimal.Zero, fmt.Errorf("account %s: %w", totals.AccountID, err)
	}
	if natural == domain.Debit {
		return totals.Debit.Sub(totals.Credit), nil
	}
	return totals.Credit.Sub(totals.Debit), nil
}

// SignedDelta returns how much txn moves the balance of the given account.
// Transactions that do not touch the account, or touch it on both sides, move it by zero.
func SignedDelta(txn domain.Transaction, account domain.Account) (decimal.Decimal, error) {
	side, ok := txn.SideOf(account.AccountID)
	if !ok {
		if _, err := NaturalSide(account.AccountType); err != nil {
			return decimal.Zero, err
		}
		return decimal.Zero, nil
	}
	return CalculateSignedAmount(txn.Amount, side, account.AccountType)
}
