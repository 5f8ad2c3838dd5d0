package accounting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

var (
	cashAcc   = domain.Account{AccountID: "cash", Name: "현금", AccountType: domain.Asset, Category: domain.CategoryVariable}
	savingAcc = domain.Account{AccountID: "saving", Name: "적금", AccountType: domain.Asset, Category: domain.CategorySaving}
	cardAcc   = domain.Account{AccountID: "card", Name: "신용카드", AccountType: domain.Liability, Category: domain.CategoryVariable}
	foodAcc   = domain.Account{AccountID: "food", Name: "식비", AccountType: domain.Expense, Category: domain.CategoryVariable}
)

func TestComputeAccountBalancesAndNetWorth(t *testing.T) {
	accounts := []domain.Account{cashAcc, savingAcc, cardAcc, foodAcc}
	current := map[string]domain.AccountTotals{
		"cash":   {AccountID: "cash", Debit: d(1000), Credit: d(300)},
		"saving": {AccountID: "saving", Debit: d(500), Credit: d(0)},
		"card":   {AccountID: "card", Debit: d(100), Credit: d(400)},
		"food":   {AccountID: "food", Debit: d(300), Credit: d(0)},
	}
	lifetime := map[string]domain.AccountTotals{
		"cash":   {AccountID: "cash", Debit: d(1000), Credit: d(300)},
		"saving": {AccountID: "saving", Debit: d(800), Credit: d(0)},
		"card":   {AccountID: "card", Debit: d(100), Credit: d(600)},
	}

	balances, err := accounting.ComputeAccountBalances(accounts, current, lifetime)
	require.NoError(t, err)
	require.Len(t, balances, 4)

	assert.True(t, d(700).Equal(balances[0].Current))
	assert.True(t, d(300).Equal(balances[2].Current))
	assert.True(t, d(300).Equal(balances[3].Current))
	assert.True(t, balances[3].Lifetime.IsZero(), "missing totals mean zero balance")

	cur := accounting.ComputeNetWorth(balances, accounting.CurrentBalance)
	assert.True(t, d(700).Equal(cur.Assets))
	assert.True(t, d(500).Equal(cur.Savings))
	assert.True(t, d(300).Equal(cur.Liabilities))
	assert.True(t, d(900).Equal(cur.Total))

	life := accounting.ComputeNetWorth(balances, accounting.LifetimeBalance)
	assert.True(t, d(700+800-500).Equal(life.Total))
}

func TestTrendWindowStart(t *testing.T) {
	assert.Equal(t, day(2023, 9, 1), accounting.TrendWindowStart(day(2024, 8, 20)))
	assert.Equal(t, day(2024, 2, 1), accounting.TrendWindowStart(day(2025, 1, 31)))
}

func TestBuildNetWorthTrend(t *testing.T) {
	today := day(2024, 8, 20)
	accounts := []domain.Account{cashAcc, savingAcc, cardAcc, foodAcc}
	opening := map[string]domain.AccountTotals{
		"cash": {AccountID: "cash", Debit: d(1000), Credit: d(0)},
		"card": {AccountID: "card", Debit: d(0), Credit: d(200)},
		"food": {AccountID: "food", Debit: d(999), Credit: d(0)},
	}
	monthly := []domain.MonthlyAccountTotals{
		{Month: domain.YearMonth{Year: 2023, Month: 9}, AccountTotals: domain.AccountTotals{AccountID: "cash", Debit: d(100), Credit: d(0)}},
		{Month: domain.YearMonth{Year: 2024, Month: 3}, AccountTotals: domain.AccountTotals{AccountID: "saving", Debit: d(300), Credit: d(0)}},
		{Month: domain.YearMonth{Year: 2024, Month: 3}, AccountTotals: domain.AccountTotals{AccountID: "cash", Debit: d(0), Credit: d(300)}},
		{Month: domain.YearMonth{Year: 2024, Month: 8}, AccountTotals: domain.AccountTotals{AccountID: "card", Debit: d(0), Credit: d(50)}},
		{Month: domain.YearMonth{Year: 2024, Month: 8}, AccountTotals: domain.AccountTotals{AccountID: "food", Debit: d(50), Credit: d(0)}},
	}

	points, err := accounting.BuildNetWorthTrend(accounts, opening, monthly, today)
	require.NoError(t, err)
	require.Len(t, points, accounting.TrendMonths)

	assert.Equal(t, "2023-09", points[0].Label)
	assert.Equal(t, "2024-08", points[11].Label)
	assert.True(t, d(900).Equal(points[0].NetWorth), "got %s", points[0].NetWorth)
	// moving cash into savings leaves net worth unchanged
	assert.True(t, d(900).Equal(points[6].NetWorth), "got %s", points[6].NetWorth)
	assert.True(t, d(850).Equal(points[11].NetWorth), "got %s", points[11].NetWorth)
}

func ledgerRows() []domain.Transaction {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Transaction{
		{TransactionID: "t4", Date: day(2024, 1, 3), CreatedAt: base.Add(2 * time.Hour), Amount: d(200), DebitAccountID: "food", CreditAccountID: "cash"},
		{TransactionID: "t3", Date: day(2024, 1, 3), CreatedAt: base.Add(time.Hour), Amount: d(50), DebitAccountID: "cash", CreditAccountID: "salary"},
		{TransactionID: "t2", Date: day(2024, 1, 2), CreatedAt: base, Amount: d(70), DebitAccountID: "food", CreditAccountID: "card"},
		{TransactionID: "t1", Date: day(2024, 1, 1), CreatedAt: base, Amount: d(500), DebitAccountID: "cash", CreditAccountID: "salary"},
	}
}

func TestRunningBalance_Asset(t *testing.T) {
	rows, final, err := accounting.RunningBalance(cashAcc, d(1000), ledgerRows())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	wantIDs := []string{"t4", "t3", "t2", "t1"}
	wantBal := []int64{1350, 1550, 1500, 1500}
	for i, row := range rows {
		assert.Equal(t, wantIDs[i], row.TransactionID)
		require.NotNil(t, row.RunningBalance)
		assert.True(t, d(wantBal[i]).Equal(*row.RunningBalance), "row %s: got %s", row.TransactionID, row.RunningBalance)
	}
	assert.True(t, d(1350).Equal(final))
}

func TestRunningBalance_Liability(t *testing.T) {
	rows := []domain.Transaction{
		{TransactionID: "repay", Date: day(2024, 2, 10), Amount: d(100), DebitAccountID: "card", CreditAccountID: "cash", IsRepayment: true},
		{TransactionID: "spend", Date: day(2024, 2, 1), Amount: d(300), DebitAccountID: "food", CreditAccountID: "card"},
	}
	out, final, err := accounting.RunningBalance(cardAcc, d(0), rows)
	require.NoError(t, err)
	assert.True(t, d(200).Equal(final))
	assert.Equal(t, "repay", out[0].TransactionID)
	assert.True(t, d(200).Equal(*out[0].RunningBalance))
	assert.True(t, d(300).Equal(*out[1].RunningBalance))
}

func TestRunningBalance_OrderIndependent(t *testing.T) {
	_, want, err := accounting.RunningBalance(cashAcc, d(1000), ledgerRows())
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := ledgerRows()
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		rows, got, err := accounting.RunningBalance(cashAcc, d(1000), shuffled)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
		assert.Equal(t, "t4", rows[0].TransactionID)
	}
}

func TestRunningBalance_EmptyWindow(t *testing.T) {
	rows, final, err := accounting.RunningBalance(cashAcc, decimal.NewFromInt(42), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.True(t, d(42).Equal(final))
}

func TestRunningBalance_SameAccountRowKeepsBalance(t *testing.T) {
	rows := []domain.Transaction{
		{TransactionID: "self", Date: day(2024, 3, 2), Amount: d(500), DebitAccountID: "cash", CreditAccountID: "cash"},
		{TransactionID: "in", Date: day(2024, 3, 1), Amount: d(200), DebitAccountID: "cash", CreditAccountID: "saving"},
	}
	out, final, err := accounting.RunningBalance(cashAcc, d(100), rows)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "self", out[0].TransactionID)
	assert.True(t, d(300).Equal(*out[0].RunningBalance))
	assert.True(t, d(300).Equal(*out[1].RunningBalance))
	assert.True(t, d(300).Equal(final))
}
