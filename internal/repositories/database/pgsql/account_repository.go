package pgsql

import (
	"context"
	"fmt"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/soyjefu/theprepared-PFM/internal/models"
	"github.com/soyjefu/theprepared-PFM/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, user_id, name, account_type, category, role, created_at, last_updated_at`

// accountTypeOrder sorts accounts the way the entry form and dashboard show them.
const accountTypeOrder = `CASE account_type
	WHEN 'ASSET' THEN 1 WHEN 'LIABILITY' THEN 2 WHEN 'EQUITY' THEN 3
	WHEN 'REVENUE' THEN 4 WHEN 'EXPENSE' THEN 5 ELSE 6 END`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.Name,
		&m.AccountType,
		&m.Category,
		&m.Role,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

const insertAccountQuery = `
	INSERT INTO accounts (account_id, user_id, name, account_type, category, role, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func accountInsertArgs(account domain.Account) []any {
	m := mapping.ToModelAccount(account)
	return []any{m.AccountID, m.UserID, m.Name, m.AccountType, m.Category, m.Role, m.CreatedAt, m.LastUpdatedAt}
}

// SaveAccount inserts a new account. A name already used by the same user is
// reported as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.Pool.Exec(ctx, insertAccountQuery, accountInsertArgs(account)...)
	return translateError(err, fmt.Sprintf("failed to save account %q", account.Name))
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND account_id = $2;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, userID, accountID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find account by ID %s", accountID))
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs. IDs that do not
// exist are simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, userID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		out[acc.AccountID] = acc
	}
	return out, nil
}

// FindAccountByRole retrieves the account holding a settlement role.
func (r *PgxAccountRepository) FindAccountByRole(ctx context.Context, userID string, role domain.AccountRole) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND role = $2 LIMIT 1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, userID, string(role)))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find account with role %s", role))
	}
	return &acc, nil
}

// ListAccounts retrieves the user's accounts ordered by type and name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string, accountType *domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE user_id = $1 AND ($2::text IS NULL OR account_type = $2)
		ORDER BY ` + accountTypeOrder + `, name;`
	var typeFilter *string
	if accountType != nil {
		t := string(*accountType)
		typeFilter = &t
	}
	rows, err := r.Pool.Query(ctx, query, userID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	return collectAccounts(rows)
}

// UpdateAccount updates an existing account in the database.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, account_type = $4, category = $5, role = $6, last_updated_at = $7
		WHERE user_id = $1 AND account_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.UserID, m.AccountID, m.Name, m.AccountType, m.Category, m.Role, m.LastUpdatedAt)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update account %s", m.AccountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account. Rows still referenced by transactions hit
// the foreign key and surface as ErrConflict.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1 AND account_id = $2;`, userID, accountID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete account %s", accountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAccountsInTx retrieves all accounts of the user within a transaction.
func (r *PgxAccountRepository) ListAccountsInTx(ctx context.Context, tx pgx.Tx, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY ` + accountTypeOrder + `, name;`
	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	return collectAccounts(rows)
}

// SaveAccountsInTx persists several new accounts within a transaction.
func (r *PgxAccountRepository) SaveAccountsInTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		batch.Queue(insertAccountQuery, accountInsertArgs(acc)...)
	}
	return execBatch(ctx, tx, batch, "failed to save accounts")
}

// DeleteAccountsByUserInTx removes every account of the user within a transaction.
func (r *PgxAccountRepository) DeleteAccountsByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1;`, userID); err != nil {
		return translateError(err, fmt.Sprintf("failed to delete accounts of user %s", userID))
	}
	return nil
}
