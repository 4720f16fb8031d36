package services

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvc applies ledger-affecting operations to member accounts and
// maintains the global transaction log.
type LedgerSvc interface {
	// Deposit records a contribution. Requires PROCESS_TRANSACTIONS.
	Deposit(ctx context.Context, memberID string, amount decimal.Decimal, description string) (*domain.Transaction, error)

	// Withdraw records a withdrawal. Requires PROCESS_TRANSACTIONS.
	Withdraw(ctx context.Context, memberID string, amount decimal.Decimal, description string) (*domain.Transaction, error)

	// AccrueInterest sweeps every interest-enabled account and posts
	// interest where due, returning the number of postings made.
	// Requires PROCESS_INTEREST.
	AccrueInterest(ctx context.Context) (int, error)

	// Statement returns one member's account view with history and totals.
	// Requires VIEW_MEMBERS.
	Statement(ctx context.Context, memberID string) (*dto.AccountStatement, error)
}
