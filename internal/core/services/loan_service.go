package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portssvc "github.com/coopware/thrift_association_app/internal/core/ports/services"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/coopware/thrift_association_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// savingsFraction is the share of the requested amount a member must hold in
// savings to be eligible: 10%.
var savingsFraction = decimal.RequireFromString("0.1")

type loanService struct {
	BaseService
	cfg    *config.Config
	ledger portssvc.LedgerSvc
}

func newLoanService(base BaseService, cfg *config.Config, ledger portssvc.LedgerSvc) portssvc.LoanSvc {
	return &loanService{BaseService: base, cfg: cfg, ledger: ledger}
}

var _ portssvc.LoanSvc = (*loanService)(nil)

func (s *loanService) Apply(ctx context.Context, req dto.LoanApplicationRequest) (*domain.Loan, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}
	member, ok := s.registry.FindMember(req.MemberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", req.MemberID, apperrors.ErrNotFound)
	}
	if req.Amount.LessThan(s.cfg.MinLoanAmount) {
		return nil, fmt.Errorf("%w: loan amount must be at least %s",
			apperrors.ErrValidation, s.cfg.MinLoanAmount.StringFixed(2))
	}
	if req.Amount.GreaterThan(s.cfg.MaxLoanAmount) {
		return nil, fmt.Errorf("%w: loan amount exceeds the limit of %s",
			apperrors.ErrValidation, s.cfg.MaxLoanAmount.StringFixed(2))
	}
	if member.MembershipDays(s.now()) < s.cfg.MinLoanMembershipAge {
		return nil, fmt.Errorf("%w: member must be registered for at least %d days to apply for a loan",
			apperrors.ErrValidation, s.cfg.MinLoanMembershipAge)
	}
	if member.Account.Balance.LessThan(req.Amount.Mul(savingsFraction)) {
		return nil, fmt.Errorf("%w: member must have savings worth at least 10%% of the loan amount",
			apperrors.ErrValidation)
	}

	loan := domain.NewLoan(s.registry.NextLoanID(), req.MemberID, req.Amount,
		req.InterestRate, req.TermMonths, req.Purpose, s.now())
	s.registry.AddLoan(loan)
	s.persist(ctx)

	s.LogInfo("loan application submitted",
		slog.String("loan_id", loan.LoanID),
		slog.String("member_id", loan.MemberID),
		slog.String("principal", loan.Principal.StringFixed(2)))
	return loan, nil
}

func (s *loanService) Approve(ctx context.Context, loanID string) (*domain.Loan, error) {
	if err := s.RequireCapability(domain.CapApproveLoans); err != nil {
		return nil, err
	}
	loan, ok := s.registry.FindLoan(loanID)
	if !ok {
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	}
	if loan.Status != domain.LoanPending {
		return nil, fmt.Errorf("%w: loan %s is %s, only PENDING loans can be approved",
			apperrors.ErrValidation, loanID, loan.Status)
	}

	now := s.now()
	loan.Status = domain.LoanApproved
	loan.ApprovalDate = &now
	s.persist(ctx)

	s.LogInfo("loan approved", slog.String("loan_id", loan.LoanID))
	return loan, nil
}

func (s *loanService) Disburse(ctx context.Context, loanID string) (*domain.Loan, error) {
	if err := s.RequireCapability(domain.CapDisburseLoans); err != nil {
		return nil, err
	}
	loan, ok := s.registry.FindLoan(loanID)
	if !ok {
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	}
	if loan.Status != domain.LoanApproved {
		return nil, fmt.Errorf("%w: loan %s is %s, only APPROVED loans can be disbursed",
			apperrors.ErrValidation, loanID, loan.Status)
	}

	// Credit the principal through the ledger engine. If that fails the loan
	// stays APPROVED, no partial state.
	_, err := s.ledger.Deposit(ctx, loan.MemberID, loan.Principal,
		"Loan disbursement - "+loan.LoanID)
	if err != nil {
		s.LogError(err, "loan disbursement credit failed", slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	now := s.now()
	loan.Status = domain.LoanDisbursed
	loan.DisbursementDate = &now
	s.persist(ctx)

	s.LogInfo("loan disbursed", slog.String("loan_id", loan.LoanID))
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context) ([]*domain.Loan, error) {
	if err := s.RequireCapability(domain.CapViewLoans); err != nil {
		return nil, err
	}
	loans := make([]*domain.Loan, len(s.registry.Loans()))
	copy(loans, s.registry.Loans())
	return loans, nil
}

func (s *loanService) MemberLoans(ctx context.Context, memberID string) ([]*domain.Loan, error) {
	var loans []*domain.Loan
	for _, loan := range s.registry.Loans() {
		if loan.MemberID == memberID {
			loans = append(loans, loan)
		}
	}
	return loans, nil
}
