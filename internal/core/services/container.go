package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/coopware/thrift_association_app/internal/core/ports/repositories"
	portssvc "github.com/coopware/thrift_association_app/internal/core/ports/services"
	"github.com/coopware/thrift_association_app/internal/platform/config"
)

// Container wires the service layer together around one shared registry.
type Container struct {
	Registry  *Registry
	Auth      portssvc.AuthSvc
	Members   portssvc.MemberSvc
	Ledger    portssvc.LedgerSvc
	Loans     portssvc.LoanSvc
	Reports   portssvc.ReportingSvc
	snapshots portsrepo.SnapshotRepository
}

// Backup asks the persistence gateway for a backup of the snapshot files.
func (c *Container) Backup(ctx context.Context) (string, error) {
	return c.snapshots.CreateBackup(ctx)
}

// Option configures the container.
type Option func(*BaseService)

// WithClock overrides the time source; tests use it to pin dates.
func WithClock(now func() time.Time) Option {
	return func(b *BaseService) {
		b.now = now
	}
}

// WithLogger sets the logger all services share.
func WithLogger(logger *slog.Logger) Option {
	return func(b *BaseService) {
		b.logger = logger
	}
}

// NewContainer builds the full service layer on top of registry and the
// snapshot gateway.
func NewContainer(registry *Registry, snapshots portsrepo.SnapshotRepository, cfg *config.Config, opts ...Option) *Container {
	base := BaseService{
		registry:  registry,
		snapshots: snapshots,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&base)
	}

	ledger := newLedgerService(base, cfg)
	return &Container{
		Registry:  registry,
		Auth:      newAuthService(base),
		Members:   newMemberService(base, cfg.DefaultInterestRate),
		Ledger:    ledger,
		Loans:     newLoanService(base, cfg, ledger),
		Reports:   newReportingService(base),
		snapshots: snapshots,
	}
}
