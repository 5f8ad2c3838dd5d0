package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portsrepo "github.com/soyjefu/theprepared-PFM/internal/core/ports/repositories"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// RoleNames holds the account names that receive settlement roles when
// accounts are seeded or imported, and the memo of generated settlement rows.
type RoleNames struct {
	CheckCard      string
	Cash           string
	SettlementMemo string
}

// DefaultRoleNames are used when no configuration is supplied.
var DefaultRoleNames = RoleNames{
	CheckCard:      "체크카드",
	Cash:           "현금",
	SettlementMemo: "체크카드 자동출금",
}

// BaseService provides common functionality for all services
type BaseService struct {
	now      func() time.Time
	location *time.Location
	roles    RoleNames
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithLocation sets the location that decides the current calendar day.
func WithLocation(loc *time.Location) Option {
	return func(s *BaseService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithRoleNames sets the account names used for settlement role assignment.
func WithRoleNames(names RoleNames) Option {
	return func(s *BaseService) {
		if names.CheckCard != "" {
			s.roles.CheckCard = names.CheckCard
		}
		if names.Cash != "" {
			s.roles.Cash = names.Cash
		}
		if names.SettlementMemo != "" {
			s.roles.SettlementMemo = names.SettlementMemo
		}
	}
}

func newBaseService(opts []Option) BaseService {
	b := BaseService{now: time.Now, location: time.UTC, roles: DefaultRoleNames}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current instant.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the current calendar day as a UTC midnight date.
func (s *BaseService) Today() time.Time {
	loc := s.location
	if loc == nil {
		loc = time.UTC
	}
	return domain.DateOnly(s.Now().In(loc))
}

// RoleForName returns the settlement role carried by an account name.
func (s *BaseService) RoleForName(name string) domain.AccountRole {
	switch name {
	case s.roles.CheckCard:
		return domain.RoleCheckCard
	case s.roles.Cash:
		return domain.RoleCash
	}
	return domain.RoleNone
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.ErrorContext(ctx, msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// runInTx executes fn inside a database transaction, committing when fn
// succeeds and rolling back otherwise.
func runInTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tm.Rollback(ctx, tx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tm.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
