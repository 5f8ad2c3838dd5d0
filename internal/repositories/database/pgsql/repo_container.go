package pgsql

import (
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       &BaseRepository{Pool: dbPool},
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PresetRepo:      newPgxPresetRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
