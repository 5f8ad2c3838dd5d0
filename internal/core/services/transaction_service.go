package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/soyjefu/theprepared-PFM/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MissingCashAccountWarning is returned when a checking-card entry could not
// be settled because the user has no cash account.
const MissingCashAccountWarning = "no cash account found; the checking-card settlement was not recorded"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	reportingRepo   portsrepo.ReportingRepository
}

// NewTransactionService creates the ledger entry and query service.
func NewTransactionService(
	txManager portsrepo.TransactionManager,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	reportingRepo portsrepo.ReportingRepository,
	opts ...Option,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(opts),
		txManager:       txManager,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		reportingRepo:   reportingRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// entryFields are the validated common fields of a create or update request.
type entryFields struct {
	date   time.Time
	item   string
	amount decimal.Decimal
}

func parseEntryFields(date, item string, amount decimal.Decimal) (entryFields, error) {
	d, err := time.Parse(dto.DateLayout, date)
	if err != nil {
		return entryFields{}, apperrors.NewFieldError("date", "date must be formatted as YYYY-MM-DD")
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return entryFields{}, apperrors.NewFieldError("item", "item is required")
	}
	if amount.IsNegative() {
		return entryFields{}, apperrors.NewFieldError("amount", "amount must not be negative")
	}
	if !amount.IsInteger() {
		return entryFields{}, apperrors.NewFieldError("amount", "amount must be a whole number")
	}
	return entryFields{date: domain.DateOnly(d), item: item, amount: amount}, nil
}

// loadEntryAccounts resolves both sides of an entry for the user.
func (s *transactionService) loadEntryAccounts(ctx context.Context, userID, debitID, creditID string) (domain.Account, domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, userID, []string{debitID, creditID})
	if err != nil {
		return domain.Account{}, domain.Account{}, fmt.Errorf("failed to load entry accounts: %w", err)
	}
	debit, ok := accounts[debitID]
	if !ok {
		return domain.Account{}, domain.Account{}, fmt.Errorf("debit account %s: %w", debitID, apperrors.ErrNotFound)
	}
	credit, ok := accounts[creditID]
	if !ok {
		return domain.Account{}, domain.Account{}, fmt.Errorf("credit account %s: %w", creditID, apperrors.ErrNotFound)
	}
	return debit, credit, nil
}

func (s *transactionService) RecordEntry(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.EntryResult, error) {
	fields, err := parseEntryFields(req.Date, req.Item, req.Amount)
	if err != nil {
		return nil, err
	}
	_, credit, err := s.loadEntryAccounts(ctx, userID, req.DebitAccountID, req.CreditAccountID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	newRow := func(date time.Time, item, memo string, amount decimal.Decimal, debitID, creditID string, repayment bool) domain.Transaction {
		return domain.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			Date:            date,
			Item:            item,
			Memo:            memo,
			Amount:          amount,
			DebitAccountID:  debitID,
			CreditAccountID: creditID,
			IsRepayment:     repayment,
		}
	}

	result := &domain.EntryResult{Warnings: []string{}}
	var rows []domain.Transaction

	if accounting.IsInstallment(fields.item) {
		name, count, err := accounting.ParseInstallment(fields.item)
		if err != nil {
			return nil, err
		}
		for _, part := range accounting.SplitInstallments(name, fields.amount, count, fields.date) {
			rows = append(rows, newRow(part.Date, part.Item, part.Memo, part.Amount, req.DebitAccountID, req.CreditAccountID, req.IsRepayment))
		}
	} else {
		rows = append(rows, newRow(fields.date, fields.item, req.Memo, fields.amount, req.DebitAccountID, req.CreditAccountID, req.IsRepayment))

		if credit.Role == domain.RoleCheckCard {
			cash, err := s.accountRepo.FindAccountByRole(ctx, userID, domain.RoleCash)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				s.LogWarn(ctx, "Checking-card entry without a cash account",
					slog.String("credit_account_id", credit.AccountID))
				result.Warnings = append(result.Warnings, MissingCashAccountWarning)
			case err != nil:
				s.LogError(ctx, err, "Failed to look up cash account")
				return nil, fmt.Errorf("failed to look up cash account: %w", err)
			default:
				rows = append(rows, newRow(fields.date, fields.item, s.roles.SettlementMemo, fields.amount, credit.AccountID, cash.AccountID, false))
			}
		}
	}

	// Rows of one submission keep their generation order under created_at.
	for i := range rows {
		rows[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
	}

	err = runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		return s.transactionRepo.SaveTransactionsInTx(ctx, tx, rows)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record entry",
			slog.Int("rows", len(rows)))
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	s.LogInfo(ctx, "Entry recorded",
		slog.Int("rows", len(rows)),
		slog.Int("warnings", len(result.Warnings)))
	result.Transactions = rows
	return result, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ledgerWindow resolves the date window of a ledger query.
func (s *transactionService) ledgerWindow(params dto.ListTransactionsParams) (time.Time, time.Time, error) {
	if params.Year > 0 && params.Month > 0 {
		from, to := domain.YearMonth{Year: params.Year, Month: params.Month}.Bounds()
		return from, to, nil
	}

	today := s.Today()
	var from, to time.Time
	if params.End != "" {
		end, err := time.Parse(dto.DateLayout, params.End)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewFieldError("end", "end must be formatted as YYYY-MM-DD")
		}
		to = end
	} else {
		to = today
	}
	if params.Start != "" {
		start, err := time.Parse(dto.DateLayout, params.Start)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewFieldError("start", "start must be formatted as YYYY-MM-DD")
		}
		from = start
	} else {
		from = domain.AddMonths(to, -1)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.NewFieldError("start", "start must not be after end")
	}
	return from, to, nil
}

func (s *transactionService) GetLedger(ctx context.Context, userID string, params dto.ListTransactionsParams) (*domain.Ledger, error) {
	from, to, err := s.ledgerWindow(params)
	if err != nil {
		return nil, err
	}

	// The running balance follows the account filter, else the debit side, else the credit side.
	selectedID := params.Account
	if selectedID == "" {
		selectedID = params.DebitAccount
	}
	if selectedID == "" {
		selectedID = params.CreditAccount
	}

	var selected *domain.Account
	if selectedID != "" {
		selected, err = s.accountRepo.FindAccountByID(ctx, userID, selectedID)
		if err != nil {
			return nil, fmt.Errorf("selected account: %w", err)
		}
	}

	filter := domain.TransactionFilter{
		AccountID:       params.Account,
		DebitAccountID:  params.DebitAccount,
		CreditAccountID: params.CreditAccount,
		ItemContains:    strings.TrimSpace(params.Item),
		MemoContains:    strings.TrimSpace(params.Memo),
		From:            &from,
		To:              &to,
	}
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	ledger := &domain.Ledger{From: from, To: to, PeriodTotal: decimal.Zero}
	for _, t := range txns {
		ledger.PeriodTotal = ledger.PeriodTotal.Add(t.Amount)
	}

	if selected == nil {
		ledger.Rows = make([]domain.LedgerRow, len(txns))
		for i, t := range txns {
			ledger.Rows[i] = domain.LedgerRow{Transaction: t}
		}
		return ledger, nil
	}

	before := from.AddDate(0, 0, -1)
	totals, err := s.reportingRepo.SumByAccount(ctx, userID, nil, &before)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance",
			slog.String("account_id", selected.AccountID))
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}
	opening, err := accounting.BalanceFromTotals(totalsOrZero(totals, selected.AccountID), selected.AccountType)
	if err != nil {
		return nil, err
	}

	rows, final, err := accounting.RunningBalance(*selected, opening, txns)
	if err != nil {
		return nil, err
	}
	ledger.Rows = rows
	ledger.OpeningBalance = &opening
	ledger.CumulativeTotal = &final
	return ledger, nil
}

func (s *transactionService) ListRecentTransactions(ctx context.Context, userID string, params dto.ListRecentTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var createdBefore *time.Time
	var idBefore *string
	if params.NextToken != "" {
		ts, id, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewFieldError("nextToken", "invalid pagination token")
		}
		createdBefore, idBefore = &ts, &id
	}

	txns, err := s.transactionRepo.ListRecentTransactions(ctx, userID, limit+1, createdBefore, idBefore)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions")
		return nil, nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	var next *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		next = &token
	}
	return txns, next, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	fields, err := parseEntryFields(req.Date, req.Item, req.Amount)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.loadEntryAccounts(ctx, userID, req.DebitAccountID, req.CreditAccountID); err != nil {
		return nil, err
	}

	txn.Date = fields.date
	txn.Item = fields.item
	txn.Memo = req.Memo
	txn.Amount = fields.amount
	txn.DebitAccountID = req.DebitAccountID
	txn.CreditAccountID = req.CreditAccountID
	txn.IsRepayment = req.IsRepayment

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction",
				slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func totalsOrZero(m map[string]domain.AccountTotals, accountID string) domain.AccountTotals {
	if t, ok := m[accountID]; ok {
		return t
	}
	return domain.AccountTotals{AccountID: accountID, Debit: decimal.Zero, Credit: decimal.Zero}
}
