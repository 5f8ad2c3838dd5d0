package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/soyjefu/theprepared-PFM/internal/models"
	"github.com/soyjefu/theprepared-PFM/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, txn_date, item, memo, amount, debit_account_id, credit_account_id, is_repayment, created_at`

// PgxTransactionRepository stores ledger rows.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger rows.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TxnDate,
		&m.Item,
		&m.Memo,
		&m.Amount,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.IsRepayment,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// FindTransactionByID retrieves a single transaction owned by the user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND transaction_id = $2;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find transaction %s", transactionID))
	}
	return &txn, nil
}

// filterClause renders the WHERE conditions for a ledger filter. Arguments
// are numbered after the leading user_id parameter.
func filterClause(userID string, f domain.TransactionFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(debit_account_id = $%d OR credit_account_id = $%d)", n, n))
	}
	if f.DebitAccountID != "" {
		add("debit_account_id = $%d", f.DebitAccountID)
	}
	if f.CreditAccountID != "" {
		add("credit_account_id = $%d", f.CreditAccountID)
	}
	if f.ItemContains != "" {
		add("item ILIKE $%d", "%"+escapeLike(f.ItemContains)+"%")
	}
	if f.MemoContains != "" {
		add("memo ILIKE $%d", "%"+escapeLike(f.MemoContains)+"%")
	}
	if f.From != nil {
		add("txn_date >= $%d", domain.DateOnly(*f.From))
	}
	if f.To != nil {
		add("txn_date <= $%d", domain.DateOnly(*f.To))
	}
	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListTransactions retrieves the rows matching filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := filterClause(userID, filter)
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where +
		` ORDER BY txn_date DESC, created_at DESC, transaction_id DESC;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// ListRecentTransactions retrieves up to limit rows by creation time using
// keyset pagination on (created_at, transaction_id).
func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, userID string, limit int, createdBefore *time.Time, idBefore *string) ([]domain.Transaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if createdBefore != nil && idBefore != nil {
		query := `SELECT ` + transactionColumns + ` FROM transactions
			WHERE user_id = $1 AND (created_at, transaction_id) < ($2, $3)
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $4;`
		rows, err = r.Pool.Query(ctx, query, userID, *createdBefore, *idBefore, limit)
	} else {
		query := `SELECT ` + transactionColumns + ` FROM transactions
			WHERE user_id = $1
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, userID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// HasTransactionsSince reports whether any row is dated on or after since.
func (r *PgxTransactionRepository) HasTransactionsSince(ctx context.Context, userID string, since time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = $1 AND txn_date >= $2);`
	if err := r.Pool.QueryRow(ctx, query, userID, domain.DateOnly(since)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions since %s: %w", since.Format(time.DateOnly), err)
	}
	return exists, nil
}

// UpdateTransaction replaces the editable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET txn_date = $3, item = $4, memo = $5, amount = $6, debit_account_id = $7, credit_account_id = $8, is_repayment = $9
		WHERE user_id = $1 AND transaction_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.TransactionID, m.TxnDate, m.Item, m.Memo, m.Amount, m.DebitAccountID, m.CreditAccountID, m.IsRepayment)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update transaction %s", m.TransactionID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND transaction_id = $2;`, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveTransactionsInTx inserts all rows within a transaction using one batch.
func (r *PgxTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID, m.UserID, m.TxnDate, m.Item, m.Memo, m.Amount,
			m.DebitAccountID, m.CreditAccountID, m.IsRepayment, m.CreatedAt)
	}
	return execBatch(ctx, tx, batch, "failed to insert transactions")
}

// DeleteTransactionsByUserInTx removes every row of the user within a transaction.
func (r *PgxTransactionRepository) DeleteTransactionsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete transactions of user %s: %w", userID, err)
	}
	return nil
}
