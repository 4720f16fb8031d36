package services

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
)

// LoanSvc drives the loan lifecycle: apply, approve, disburse.
type LoanSvc interface {
	// Apply validates eligibility and creates a PENDING loan.
	Apply(ctx context.Context, req dto.LoanApplicationRequest) (*domain.Loan, error)

	// Approve moves a PENDING loan to APPROVED. Requires APPROVE_LOANS.
	Approve(ctx context.Context, loanID string) (*domain.Loan, error)

	// Disburse credits the principal to the member's account and moves an
	// APPROVED loan to DISBURSED. If the credit fails the loan stays
	// APPROVED. Requires DISBURSE_LOANS.
	Disburse(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans returns every loan. Requires VIEW_LOANS.
	ListLoans(ctx context.Context) ([]*domain.Loan, error)

	// MemberLoans returns the loans belonging to one member.
	MemberLoans(ctx context.Context, memberID string) ([]*domain.Loan, error)
}
