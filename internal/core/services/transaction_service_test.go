package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/core/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

var (
	cashAccount      = domain.Account{AccountID: "cash", UserID: testUserID, Name: "현금", AccountType: domain.Asset, Category: domain.CategoryVariable, Role: domain.RoleCash}
	checkCardAccount = domain.Account{AccountID: "check", UserID: testUserID, Name: "체크카드", AccountType: domain.Asset, Category: domain.CategoryGeneral, Role: domain.RoleCheckCard}
	creditCard       = domain.Account{AccountID: "card", UserID: testUserID, Name: "신용카드", AccountType: domain.Liability, Category: domain.CategoryVariable, Role: domain.RoleNone}
	foodAccount      = domain.Account{AccountID: "food", UserID: testUserID, Name: "식비", AccountType: domain.Expense, Category: domain.CategoryVariable, Role: domain.RoleNone}
	salaryAccount    = domain.Account{AccountID: "salary", UserID: testUserID, Name: "급여", AccountType: domain.Revenue, Category: domain.CategoryFixed, Role: domain.RoleNone}
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txManager     *MockTxManager
	txnRepo       *MockTransactionRepository
	accountRepo   *MockAccountRepository
	reportingRepo *MockReportingRepository
	service       portssvc.TransactionSvcFacade
	ctx           context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.txManager = new(MockTxManager)
	s.txnRepo = new(MockTransactionRepository)
	s.accountRepo = new(MockAccountRepository)
	s.reportingRepo = new(MockReportingRepository)
	s.service = services.NewTransactionService(s.txManager, s.txnRepo, s.accountRepo, s.reportingRepo,
		services.WithClock(fixedClock))
	s.ctx = context.Background()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.txManager.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
	s.accountRepo.AssertExpectations(s.T())
	s.reportingRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	byID := make(map[string]domain.Account, len(accounts))
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
		ids = append(ids, a.AccountID)
	}
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testUserID, ids).Return(byID, nil).Once()
}

// captureSaved records the rows handed to SaveTransactionsInTx.
func (s *TransactionServiceTestSuite) captureSaved(err error) *[]domain.Transaction {
	var saved []domain.Transaction
	s.txnRepo.On("SaveTransactionsInTx", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.Transaction)
		}).
		Return(err).Once()
	return &saved
}

func (s *TransactionServiceTestSuite) TestRecordEntry_InstallmentSplit() {
	s.expectAccounts(foodAccount, creditCard)
	expectCommit(s.txManager)
	saved := s.captureSaved(nil)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-01-15",
		Item:            "여행//3",
		Memo:            "ignored",
		Amount:          d(300000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: creditCard.AccountID,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 3)
	s.Empty(result.Warnings)
	s.Equal(result.Transactions, *saved)

	wantDates := []time.Time{date(2024, 1, 15), date(2024, 2, 15), date(2024, 3, 15)}
	wantMemos := []string{"여행 (1/3회차)", "여행 (2/3회차)", "여행 (3/3회차)"}
	for i, txn := range result.Transactions {
		s.Equal(wantDates[i], txn.Date)
		s.Equal("여행", txn.Item)
		s.Equal(wantMemos[i], txn.Memo)
		s.True(d(100000).Equal(txn.Amount))
		s.Equal(foodAccount.AccountID, txn.DebitAccountID)
		s.Equal(creditCard.AccountID, txn.CreditAccountID)
		s.Equal(testUserID, txn.UserID)
		s.NotEmpty(txn.TransactionID)
		if i > 0 {
			s.True(result.Transactions[i-1].CreatedAt.Before(txn.CreatedAt), "rows keep generation order")
		}
	}
}

func (s *TransactionServiceTestSuite) TestRecordEntry_CheckCardSettlement() {
	s.expectAccounts(foodAccount, checkCardAccount)
	s.accountRepo.On("FindAccountByRole", mock.Anything, testUserID, domain.RoleCash).Return(&cashAccount, nil).Once()
	expectCommit(s.txManager)
	s.captureSaved(nil)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-03-05",
		Item:            "점심",
		Memo:            "김밥",
		Amount:          d(8000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: checkCardAccount.AccountID,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 2)
	s.Empty(result.Warnings)

	purchase, settlement := result.Transactions[0], result.Transactions[1]
	s.Equal("김밥", purchase.Memo)
	s.Equal(foodAccount.AccountID, purchase.DebitAccountID)
	s.Equal(checkCardAccount.AccountID, purchase.CreditAccountID)

	s.Equal(date(2024, 3, 5), settlement.Date)
	s.Equal("점심", settlement.Item)
	s.Equal(services.DefaultRoleNames.SettlementMemo, settlement.Memo)
	s.True(d(8000).Equal(settlement.Amount))
	s.Equal(checkCardAccount.AccountID, settlement.DebitAccountID)
	s.Equal(cashAccount.AccountID, settlement.CreditAccountID)
	s.False(settlement.IsRepayment)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_SettlesAgainstCreatedCheckCard() {
	accounts := services.NewAccountService(s.accountRepo, services.WithClock(fixedClock))
	var created domain.Account
	s.accountRepo.On("FindAccountByRole", mock.Anything, testUserID, domain.RoleCheckCard).Return(nil, apperrors.ErrNotFound).Once()
	s.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(domain.Account)
		}).
		Return(nil).Once()

	card, err := accounts.CreateAccount(s.ctx, testUserID, dto.CreateAccountRequest{Name: "체크카드", AccountType: domain.Asset})
	s.Require().NoError(err)
	s.Require().Equal(domain.RoleCheckCard, created.Role)

	s.expectAccounts(foodAccount, created)
	s.accountRepo.On("FindAccountByRole", mock.Anything, testUserID, domain.RoleCash).Return(&cashAccount, nil).Once()
	expectCommit(s.txManager)
	s.captureSaved(nil)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-03-05",
		Item:            "점심",
		Amount:          d(8000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: card.AccountID,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Transactions, 2)
	settlement := result.Transactions[1]
	s.Equal(card.AccountID, settlement.DebitAccountID)
	s.Equal(cashAccount.AccountID, settlement.CreditAccountID)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_CheckCardWithoutCash() {
	s.expectAccounts(foodAccount, checkCardAccount)
	s.accountRepo.On("FindAccountByRole", mock.Anything, testUserID, domain.RoleCash).Return(nil, apperrors.ErrNotFound).Once()
	expectCommit(s.txManager)
	s.captureSaved(nil)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-03-05",
		Item:            "점심",
		Amount:          d(8000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: checkCardAccount.AccountID,
	})

	s.Require().NoError(err)
	s.Len(result.Transactions, 1)
	s.Equal([]string{services.MissingCashAccountWarning}, result.Warnings)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_InstallmentOnCheckCardIsNotSettled() {
	s.expectAccounts(foodAccount, checkCardAccount)
	expectCommit(s.txManager)
	s.captureSaved(nil)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-03-05",
		Item:            "가방//2",
		Amount:          d(50000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: checkCardAccount.AccountID,
	})

	s.Require().NoError(err)
	s.Len(result.Transactions, 2)
	for _, txn := range result.Transactions {
		s.Equal(checkCardAccount.AccountID, txn.CreditAccountID)
	}
}

func (s *TransactionServiceTestSuite) TestRecordEntry_AtomicFailure() {
	s.expectAccounts(foodAccount, creditCard)
	expectRollback(s.txManager)
	dbErr := errors.New("connection reset")
	s.captureSaved(dbErr)

	result, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-01-15",
		Item:            "여행//3",
		Amount:          d(300000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: creditCard.AccountID,
	})

	s.Require().Error(err)
	s.ErrorIs(err, dbErr)
	s.Nil(result)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_Validation() {
	tests := []struct {
		name  string
		req   dto.CreateTransactionRequest
		field string
	}{
		{"bad date", dto.CreateTransactionRequest{Date: "2024/01/15", Item: "x", Amount: d(1)}, "date"},
		{"blank item", dto.CreateTransactionRequest{Date: "2024-01-15", Item: "  ", Amount: d(1)}, "item"},
		{"negative amount", dto.CreateTransactionRequest{Date: "2024-01-15", Item: "x", Amount: d(-5)}, "amount"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.RecordEntry(s.ctx, testUserID, tt.req)
			var fieldErr *apperrors.FieldError
			s.Require().ErrorAs(err, &fieldErr)
			s.Equal(tt.field, fieldErr.Field)
		})
	}
}

func (s *TransactionServiceTestSuite) TestRecordEntry_BadInstallmentCount() {
	s.expectAccounts(foodAccount, creditCard)

	_, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-01-15",
		Item:            "여행//0",
		Amount:          d(1000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: creditCard.AccountID,
	})

	var fieldErr *apperrors.FieldError
	s.Require().ErrorAs(err, &fieldErr)
	s.Equal("item", fieldErr.Field)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_InstallmentCountTooLarge() {
	s.expectAccounts(foodAccount, creditCard)

	_, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-01-15",
		Item:            "여행//999999999",
		Amount:          d(1000),
		DebitAccountID:  foodAccount.AccountID,
		CreditAccountID: creditCard.AccountID,
	})

	var fieldErr *apperrors.FieldError
	s.Require().ErrorAs(err, &fieldErr)
	s.Equal("item", fieldErr.Field)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordEntry_UnknownAccount() {
	s.accountRepo.On("FindAccountsByIDs", mock.Anything, testUserID, []string{"food", "ghost"}).
		Return(map[string]domain.Account{"food": foodAccount}, nil).Once()

	_, err := s.service.RecordEntry(s.ctx, testUserID, dto.CreateTransactionRequest{
		Date:            "2024-01-15",
		Item:            "x",
		Amount:          d(1),
		DebitAccountID:  "food",
		CreditAccountID: "ghost",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestGetLedger_RunningBalance() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := []domain.Transaction{
		{TransactionID: "t3", Date: date(2024, 1, 20), CreatedAt: base.Add(time.Hour), Amount: d(200), DebitAccountID: "food", CreditAccountID: "cash"},
		{TransactionID: "t2", Date: date(2024, 1, 20), CreatedAt: base, Amount: d(50), DebitAccountID: "cash", CreditAccountID: "salary"},
		{TransactionID: "t1", Date: date(2024, 1, 5), CreatedAt: base, Amount: d(500), DebitAccountID: "cash", CreditAccountID: "salary"},
	}
	s.accountRepo.On("FindAccountByID", mock.Anything, testUserID, "cash").Return(&cashAccount, nil).Once()
	s.txnRepo.On("ListTransactions", mock.Anything, testUserID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.AccountID == "cash" && f.From.Equal(date(2024, 1, 1)) && f.To.Equal(date(2024, 1, 31))
	})).Return(rows, nil).Once()
	s.reportingRepo.On("SumByAccount", mock.Anything, testUserID, (*time.Time)(nil), mock.MatchedBy(func(to *time.Time) bool {
		return to != nil && to.Equal(date(2023, 12, 31))
	})).Return(map[string]domain.AccountTotals{
		"cash": {AccountID: "cash", Debit: d(1500), Credit: d(500)},
	}, nil).Once()

	ledger, err := s.service.GetLedger(s.ctx, testUserID, dto.ListTransactionsParams{Account: "cash", Year: 2024, Month: 1})

	s.Require().NoError(err)
	s.Require().Len(ledger.Rows, 3)
	s.True(d(750).Equal(ledger.PeriodTotal))
	s.Require().NotNil(ledger.OpeningBalance)
	s.True(d(1000).Equal(*ledger.OpeningBalance))
	s.Require().NotNil(ledger.CumulativeTotal)
	s.True(d(1350).Equal(*ledger.CumulativeTotal))

	want := map[string]int64{"t3": 1350, "t2": 1550, "t1": 1500}
	for _, row := range ledger.Rows {
		s.Require().NotNil(row.RunningBalance)
		s.True(d(want[row.TransactionID]).Equal(*row.RunningBalance), "%s: got %s", row.TransactionID, row.RunningBalance)
	}
}

func (s *TransactionServiceTestSuite) TestGetLedger_RunningBalanceFromDebitFilter() {
	rows := []domain.Transaction{
		{TransactionID: "t2", Date: date(2024, 1, 20), Amount: d(50), DebitAccountID: "cash", CreditAccountID: "salary"},
		{TransactionID: "t1", Date: date(2024, 1, 5), Amount: d(500), DebitAccountID: "cash", CreditAccountID: "salary"},
	}
	s.accountRepo.On("FindAccountByID", mock.Anything, testUserID, "cash").Return(&cashAccount, nil).Once()
	s.txnRepo.On("ListTransactions", mock.Anything, testUserID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.AccountID == "" && f.DebitAccountID == "cash"
	})).Return(rows, nil).Once()
	s.reportingRepo.On("SumByAccount", mock.Anything, testUserID, (*time.Time)(nil), mock.Anything).
		Return(map[string]domain.AccountTotals{"cash": {AccountID: "cash", Debit: d(100), Credit: d(0)}}, nil).Once()

	ledger, err := s.service.GetLedger(s.ctx, testUserID, dto.ListTransactionsParams{DebitAccount: "cash", Year: 2024, Month: 1})

	s.Require().NoError(err)
	s.Require().NotNil(ledger.CumulativeTotal)
	s.True(d(650).Equal(*ledger.CumulativeTotal))
	s.Require().NotNil(ledger.Rows[0].RunningBalance)
	s.True(d(650).Equal(*ledger.Rows[0].RunningBalance))
}

func (s *TransactionServiceTestSuite) TestGetLedger_RunningBalanceFromCreditFilter() {
	s.accountRepo.On("FindAccountByID", mock.Anything, testUserID, "salary").Return(&salaryAccount, nil).Once()
	s.txnRepo.On("ListTransactions", mock.Anything, testUserID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.CreditAccountID == "salary"
	})).Return([]domain.Transaction{
		{TransactionID: "t1", Date: date(2024, 1, 25), Amount: d(3000), DebitAccountID: "cash", CreditAccountID: "salary"},
	}, nil).Once()
	s.reportingRepo.On("SumByAccount", mock.Anything, testUserID, (*time.Time)(nil), mock.Anything).
		Return(map[string]domain.AccountTotals{}, nil).Once()

	ledger, err := s.service.GetLedger(s.ctx, testUserID, dto.ListTransactionsParams{CreditAccount: "salary", Year: 2024, Month: 1})

	s.Require().NoError(err)
	s.Require().NotNil(ledger.CumulativeTotal)
	s.True(d(3000).Equal(*ledger.CumulativeTotal))
}

func (s *TransactionServiceTestSuite) TestGetLedger_DefaultWindowWithoutAccount() {
	s.txnRepo.On("ListTransactions", mock.Anything, testUserID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.From.Equal(date(2024, 7, 20)) && f.To.Equal(date(2024, 8, 20)) && f.ItemContains == "커피"
	})).Return([]domain.Transaction{{TransactionID: "a", Amount: d(4500)}}, nil).Once()

	ledger, err := s.service.GetLedger(s.ctx, testUserID, dto.ListTransactionsParams{Item: " 커피 "})

	s.Require().NoError(err)
	s.Len(ledger.Rows, 1)
	s.Nil(ledger.Rows[0].RunningBalance)
	s.Nil(ledger.CumulativeTotal)
	s.True(d(4500).Equal(ledger.PeriodTotal))
}

func (s *TransactionServiceTestSuite) TestGetLedger_InvertedWindow() {
	_, err := s.service.GetLedger(s.ctx, testUserID, dto.ListTransactionsParams{Start: "2024-05-02", End: "2024-05-01"})
	var fieldErr *apperrors.FieldError
	s.Require().ErrorAs(err, &fieldErr)
	s.Equal("start", fieldErr.Field)
}

func (s *TransactionServiceTestSuite) TestListRecentTransactions_Pagination() {
	created := time.Date(2024, 8, 1, 9, 0, 0, 123456000, time.UTC)
	page := []domain.Transaction{
		{TransactionID: "c", CreatedAt: created.Add(2 * time.Second)},
		{TransactionID: "b", CreatedAt: created.Add(time.Second)},
		{TransactionID: "a", CreatedAt: created},
	}
	s.txnRepo.On("ListRecentTransactions", mock.Anything, testUserID, 3, (*time.Time)(nil), (*string)(nil)).Return(page, nil).Once()

	txns, next, err := s.service.ListRecentTransactions(s.ctx, testUserID, dto.ListRecentTransactionsParams{Limit: 2})
	s.Require().NoError(err)
	s.Len(txns, 2)
	s.Require().NotNil(next)

	s.txnRepo.On("ListRecentTransactions", mock.Anything, testUserID, 3,
		mock.MatchedBy(func(ts *time.Time) bool { return ts != nil && ts.Equal(created.Add(time.Second)) }),
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == "b" }),
	).Return(page[2:], nil).Once()

	txns, next, err = s.service.ListRecentTransactions(s.ctx, testUserID, dto.ListRecentTransactionsParams{Limit: 2, NextToken: *next})
	s.Require().NoError(err)
	s.Len(txns, 1)
	s.Nil(next)
}

func (s *TransactionServiceTestSuite) TestListRecentTransactions_BadToken() {
	_, _, err := s.service.ListRecentTransactions(s.ctx, testUserID, dto.ListRecentTransactionsParams{Limit: 5, NextToken: "%%%"})
	var fieldErr *apperrors.FieldError
	s.Require().ErrorAs(err, &fieldErr)
	s.Equal("nextToken", fieldErr.Field)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_KeepsInstallmentSyntax() {
	existing := &domain.Transaction{TransactionID: "t1", UserID: testUserID, Date: date(2024, 1, 1), Item: "old", Amount: d(10), DebitAccountID: "food", CreditAccountID: "cash"}
	s.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "t1").Return(existing, nil).Once()
	s.expectAccounts(foodAccount, creditCard)
	s.txnRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Item == "여행//3" && t.CreditAccountID == "card" && d(300).Equal(t.Amount)
	})).Return(nil).Once()

	txn, err := s.service.UpdateTransaction(s.ctx, testUserID, "t1", dto.UpdateTransactionRequest{
		Date:            "2024-01-02",
		Item:            "여행//3",
		Amount:          d(300),
		DebitAccountID:  "food",
		CreditAccountID: "card",
	})
	s.Require().NoError(err)
	s.Equal(date(2024, 1, 2), txn.Date)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	s.txnRepo.On("DeleteTransaction", mock.Anything, testUserID, "nope").Return(apperrors.ErrNotFound).Once()
	err := s.service.DeleteTransaction(s.ctx, testUserID, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
