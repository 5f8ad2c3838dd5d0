package services

import (
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	opts := []Option{
		WithLocation(cfg.Location),
		WithRoleNames(RoleNames{
			CheckCard:      cfg.CheckCardAccountName,
			Cash:           cfg.CashAccountName,
			SettlementMemo: cfg.SettlementMemo,
		}),
	}

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, opts...),
		Transaction: NewTransactionService(repos.TxManager, repos.TransactionRepo, repos.AccountRepo, repos.ReportingRepo, opts...),
		Preset:      NewPresetService(repos.PresetRepo, repos.AccountRepo, opts...),
		Budget:      NewBudgetService(repos.TxManager, repos.BudgetRepo, repos.AccountRepo, opts...),
		Reporting:   NewReportingService(repos.AccountRepo, repos.TransactionRepo, repos.BudgetRepo, repos.ReportingRepo, opts...),
		Import:      NewImportService(repos.TxManager, repos.AccountRepo, repos.TransactionRepo, opts...),
		User:        NewUserService(repos.TxManager, repos.UserRepo, repos.AccountRepo, repos.TransactionRepo, opts...),

		TokenService:       NewTokenService(cfg, opts...),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg, opts...),
	}
}
