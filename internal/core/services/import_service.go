package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/adapters/tabular"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var accountColumnAliases = map[string][]string{
	"type": {"계정", "type", "account_type"},
	"name": {"계좌명", "name", "account_name"},
}

var transactionColumnAliases = map[string][]string{
	"date":   {"거래일", "date"},
	"item":   {"항목", "item"},
	"memo":   {"메모", "memo"},
	"amount": {"금액", "amount"},
	"debit":  {"차변계정명", "debit"},
	"credit": {"대변계정명", "credit"},
}

var (
	accountColumns     = []string{"type", "name"}
	transactionColumns = []string{"date", "item", "memo", "amount", "debit", "credit"}
)

var accountTypeLabels = map[string]domain.AccountType{
	"asset":     domain.Asset,
	"liability": domain.Liability,
	"equity":    domain.Equity,
	"revenue":   domain.Revenue,
	"expense":   domain.Expense,
	"자산":        domain.Asset,
	"부채":        domain.Liability,
	"순자산":       domain.Equity,
	"자본":        domain.Equity,
	"순자산(자본)":   domain.Equity,
	"수익":        domain.Revenue,
	"비용":        domain.Expense,
}

// parseAccountType accepts English type names and the Korean ledger labels.
func parseAccountType(label string) (domain.AccountType, bool) {
	t, ok := accountTypeLabels[strings.ToLower(strings.ReplaceAll(label, " ", ""))]
	return t, ok
}

type importService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	accountRepo     portsrepo.AccountTransactionSupport
	transactionRepo portsrepo.TransactionBatchSupport
}

// NewImportService creates the bulk import service.
func NewImportService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountTransactionSupport,
	transactionRepo portsrepo.TransactionBatchSupport,
	opts ...Option,
) portssvc.ImportSvcFacade {
	return &importService{
		BaseService:     newBaseService(opts),
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// dataRows drops a detected header and pairs every data row with its 1-based
// row number in the file.
func dataRows(rows [][]string, isHeader bool) ([][]string, int) {
	if isHeader {
		return rows[1:], 2
	}
	return rows, 1
}

func (s *importService) ImportAccounts(ctx context.Context, userID string, rows [][]string) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Skipped: []domain.ImportRowError{}}
	if len(rows) == 0 {
		return result, nil
	}
	cols, isHeader := tabular.DetectColumns(rows[0], accountColumnAliases, accountColumns)
	data, firstRow := dataRows(rows, isHeader)

	err := runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		existing, err := s.accountRepo.ListAccountsInTx(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		byName := make(map[string]domain.Account, len(existing))
		takenRoles := make(map[domain.AccountRole]bool)
		for _, acc := range existing {
			byName[acc.Name] = acc
			if acc.Role != domain.RoleNone {
				takenRoles[acc.Role] = true
			}
		}

		now := s.Now()
		var created []domain.Account
		for i, row := range data {
			rowNum := firstRow + i
			name := cols.Cell(row, "name")
			if name == "" {
				result.Skipped = append(result.Skipped, domain.ImportRowError{Row: rowNum, Reason: "account name is empty"})
				continue
			}
			accType, ok := parseAccountType(cols.Cell(row, "type"))
			if !ok {
				result.Skipped = append(result.Skipped, domain.ImportRowError{Row: rowNum, Reason: fmt.Sprintf("unknown account type %q", cols.Cell(row, "type"))})
				continue
			}
			if acc, ok := byName[name]; ok {
				if acc.AccountType != accType {
					result.Skipped = append(result.Skipped, domain.ImportRowError{Row: rowNum, Reason: fmt.Sprintf("account %q already exists as %s", name, acc.AccountType)})
					continue
				}
				result.Existing++
				continue
			}

			acc := domain.Account{
				AccountID:   uuid.NewString(),
				UserID:      userID,
				Name:        name,
				AccountType: accType,
				Category:    accounting.DefaultCategory(accType),
				Role:        s.RoleForName(name),
				AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			}
			if acc.Role != domain.RoleNone && (takenRoles[acc.Role] || validateAccount(&acc) != nil) {
				acc.Role = domain.RoleNone
			}
			if err := validateAccount(&acc); err != nil {
				result.Skipped = append(result.Skipped, domain.ImportRowError{Row: rowNum, Reason: err.Error()})
				continue
			}
			if acc.Role != domain.RoleNone {
				takenRoles[acc.Role] = true
			}
			byName[name] = acc
			created = append(created, acc)
		}

		if len(created) == 0 {
			return nil
		}
		if err := s.accountRepo.SaveAccountsInTx(ctx, tx, created); err != nil {
			return fmt.Errorf("failed to save imported accounts: %w", err)
		}
		result.Created = len(created)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Account import failed")
		return nil, err
	}

	s.LogInfo(ctx, "Accounts imported",
		slog.Int("created", result.Created),
		slog.Int("existing", result.Existing),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *importService) ImportTransactions(ctx context.Context, userID string, rows [][]string) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Skipped: []domain.ImportRowError{}}
	if len(rows) == 0 {
		return result, nil
	}
	cols, isHeader := tabular.DetectColumns(rows[0], transactionColumnAliases, transactionColumns)
	data, firstRow := dataRows(rows, isHeader)

	err := runInTx(ctx, s.txManager, func(tx pgx.Tx) error {
		accounts, err := s.accountRepo.ListAccountsInTx(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		byName := make(map[string]string, len(accounts))
		for _, acc := range accounts {
			byName[acc.Name] = acc.AccountID
		}

		now := s.Now()
		var txns []domain.Transaction
		for i, row := range data {
			rowNum := firstRow + i
			txn, reason := s.parseTransactionRow(cols, row, byName)
			if reason != "" {
				result.Skipped = append(result.Skipped, domain.ImportRowError{Row: rowNum, Reason: reason})
				continue
			}
			txn.TransactionID = uuid.NewString()
			txn.UserID = userID
			txn.CreatedAt = now.Add(time.Duration(len(txns)) * time.Microsecond)
			txns = append(txns, txn)
		}

		if len(txns) == 0 {
			return nil
		}
		if err := s.transactionRepo.SaveTransactionsInTx(ctx, tx, txns); err != nil {
			return fmt.Errorf("failed to save imported transactions: %w", err)
		}
		result.Created = len(txns)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Transaction import failed")
		return nil, err
	}

	s.LogInfo(ctx, "Transactions imported",
		slog.Int("created", result.Created),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

// parseTransactionRow converts one data row, returning a skip reason when the
// row cannot be imported.
func (s *importService) parseTransactionRow(cols tabular.Columns, row []string, accountIDs map[string]string) (domain.Transaction, string) {
	date, err := tabular.ParseDate(cols.Cell(row, "date"))
	if err != nil {
		return domain.Transaction{}, err.Error()
	}
	item := cols.Cell(row, "item")
	if item == "" {
		return domain.Transaction{}, "item is empty"
	}
	amount, err := tabular.CleanAmount(cols.Cell(row, "amount"))
	if err != nil {
		return domain.Transaction{}, err.Error()
	}
	if amount.IsNegative() || !amount.IsInteger() {
		return domain.Transaction{}, fmt.Sprintf("amount %s must be a non-negative whole number", amount)
	}
	debitName, creditName := cols.Cell(row, "debit"), cols.Cell(row, "credit")
	debitID, ok := accountIDs[debitName]
	if !ok {
		return domain.Transaction{}, fmt.Sprintf("unknown debit account %q", debitName)
	}
	creditID, ok := accountIDs[creditName]
	if !ok {
		return domain.Transaction{}, fmt.Sprintf("unknown credit account %q", creditName)
	}
	return domain.Transaction{
		Date:            date,
		Item:            item,
		Memo:            cols.Cell(row, "memo"),
		Amount:          amount,
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
	}, ""
}
