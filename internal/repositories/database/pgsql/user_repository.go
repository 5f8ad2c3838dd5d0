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

const userColumns = `user_id, username, password_hash, name, email, auth_provider, provider_user_id, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row rowScanner) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Email,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+`;`, args...))
	if err != nil {
		return nil, translateError(err, "failed to find user")
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `username = $1`, username)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, `auth_provider = $1 AND provider_user_id = $2`, string(provider), providerUserID)
}

// SaveUserInTx inserts a new user. A taken username or provider identity is
// reported as ErrDuplicate.
func (r *PgxUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Name,
		m.Email,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	return translateError(err, fmt.Sprintf("failed to save user %s", m.Username))
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $2, email = $3, last_updated_at = $4
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.UserID, m.Name, m.Email, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
