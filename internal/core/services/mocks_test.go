package services_test

import (
	"context"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock TransactionManager. Begin hands out a nil pgx.Tx;
// repositories are mocked so the handle is never used.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// expectCommit prepares a transaction that commits.
func expectCommit(m *MockTxManager) {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	m.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// expectRollback prepares a transaction that is rolled back.
func expectRollback(m *MockTxManager) {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, userID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByRole(ctx context.Context, userID string, role domain.AccountRole) (*domain.Account, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, userID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	return m.Called(ctx, userID, accountID).Error(0)
}

func (m *MockAccountRepository) ListAccountsInTx(ctx context.Context, tx pgx.Tx, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	return m.Called(ctx, tx, accounts).Error(0)
}

func (m *MockAccountRepository) DeleteAccountsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	return m.Called(ctx, tx, userID).Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecentTransactions(ctx context.Context, userID string, limit int, createdBefore *time.Time, idBefore *string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, createdBefore, idBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) HasTransactionsSince(ctx context.Context, userID string, since time.Time) (bool, error) {
	args := m.Called(ctx, userID, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	return m.Called(ctx, userID, transactionID).Error(0)
}

func (m *MockTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	return m.Called(ctx, tx, txns).Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	return m.Called(ctx, tx, userID).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumByAccount(ctx context.Context, userID string, from, to *time.Time) (map[string]domain.AccountTotals, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountTotals), args.Error(1)
}

func (m *MockReportingRepository) SumByAccountAndMonth(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyAccountTotals, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAccountTotals), args.Error(1)
}

func (m *MockReportingRepository) SumRepayments(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockPresetRepository is a mock type for the PresetRepositoryFacade interface
type MockPresetRepository struct {
	mock.Mock
}

func (m *MockPresetRepository) FindPresetByID(ctx context.Context, userID string, presetID string) (*domain.Preset, error) {
	args := m.Called(ctx, userID, presetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preset), args.Error(1)
}

func (m *MockPresetRepository) ListPresets(ctx context.Context, userID string) ([]domain.Preset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preset), args.Error(1)
}

func (m *MockPresetRepository) SavePreset(ctx context.Context, preset domain.Preset) error {
	return m.Called(ctx, preset).Error(0)
}

func (m *MockPresetRepository) UpdatePreset(ctx context.Context, preset domain.Preset) error {
	return m.Called(ctx, preset).Error(0)
}

func (m *MockPresetRepository) DeletePreset(ctx context.Context, userID string, presetID string) error {
	return m.Called(ctx, userID, presetID).Error(0)
}

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string, period domain.YearMonth) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	return m.Called(ctx, userID, budgetID).Error(0)
}

func (m *MockBudgetRepository) ListBudgetsInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) ([]domain.Budget, error) {
	args := m.Called(ctx, tx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudgetsForMonthInTx(ctx context.Context, tx pgx.Tx, userID string, period domain.YearMonth) error {
	return m.Called(ctx, tx, userID, period).Error(0)
}

func (m *MockBudgetRepository) SaveBudgetsInTx(ctx context.Context, tx pgx.Tx, budgets []domain.Budget) error {
	return m.Called(ctx, tx, budgets).Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// fixedClock pins service time to 2024-08-20 10:00 UTC.
func fixedClock() time.Time {
	return time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)
}
