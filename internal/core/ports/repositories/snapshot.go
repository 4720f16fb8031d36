package repositories

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/core/domain"
)

// SnapshotRepository is the persistence gateway: four independent
// full-collection snapshots plus a backup operation. Loading a collection
// that has never been saved returns an empty slice, not an error.
type SnapshotRepository interface {
	SaveMembers(ctx context.Context, members []*domain.Member) error
	LoadMembers(ctx context.Context) ([]*domain.Member, error)

	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)

	SaveLoans(ctx context.Context, loans []*domain.Loan) error
	LoadLoans(ctx context.Context) ([]*domain.Loan, error)

	SaveUsers(ctx context.Context, users []*domain.User) error
	LoadUsers(ctx context.Context) ([]*domain.User, error)

	// CreateBackup copies the current snapshot files into a timestamped
	// backup directory and returns its path.
	CreateBackup(ctx context.Context) (string, error)
}
