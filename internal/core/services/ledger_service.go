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

// minInterestPosting is the smallest interest amount worth recording.
var minInterestPosting = decimal.RequireFromString("0.01")

var (
	daysPerYear  = decimal.NewFromInt(365)
	oneHundred   = decimal.NewFromInt(100)
	minAccrueGap = 30 // days between interest postings
)

type ledgerService struct {
	BaseService
	cfg *config.Config
}

func newLedgerService(base BaseService, cfg *config.Config) portssvc.LedgerSvc {
	return &ledgerService{BaseService: base, cfg: cfg}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, memberID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if err := s.RequireCapability(domain.CapProcessTransactions); err != nil {
		return nil, err
	}
	member, ok := s.registry.FindMember(memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(s.cfg.MaxContribution) {
		return nil, fmt.Errorf("%w: contribution exceeds the limit of %s",
			apperrors.ErrValidation, s.cfg.MaxContribution.StringFixed(2))
	}

	txn := domain.Transaction{
		TransactionID: s.registry.NextTransactionID(),
		MemberID:      memberID,
		Kind:          domain.KindContribution,
		Amount:        amount,
		Date:          s.now(),
		Description:   description,
	}
	member.Account.Apply(txn)
	s.registry.AppendTransaction(txn)
	s.persist(ctx)

	s.LogInfo("contribution recorded",
		slog.String("txn_id", txn.TransactionID),
		slog.String("member_id", memberID),
		slog.String("balance", member.Account.Balance.StringFixed(2)))
	return &txn, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, memberID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if err := s.RequireCapability(domain.CapProcessTransactions); err != nil {
		return nil, err
	}
	member, ok := s.registry.FindMember(memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(s.cfg.MaxWithdrawal) {
		return nil, fmt.Errorf("%w: withdrawal exceeds the limit of %s",
			apperrors.ErrValidation, s.cfg.MaxWithdrawal.StringFixed(2))
	}
	if member.MembershipDays(s.now()) < s.cfg.MinWithdrawalMembershipAge {
		return nil, fmt.Errorf("%w: member must be registered for at least %d days before withdrawing",
			apperrors.ErrValidation, s.cfg.MinWithdrawalMembershipAge)
	}
	if amount.GreaterThan(member.Account.Balance) {
		return nil, fmt.Errorf("%w: insufficient funds, balance is %s",
			apperrors.ErrValidation, member.Account.Balance.StringFixed(2))
	}

	txn := domain.Transaction{
		TransactionID: s.registry.NextTransactionID(),
		MemberID:      memberID,
		Kind:          domain.KindWithdrawal,
		Amount:        amount,
		Date:          s.now(),
		Description:   description,
	}
	member.Account.Apply(txn)
	s.registry.AppendTransaction(txn)
	s.persist(ctx)

	s.LogInfo("withdrawal recorded",
		slog.String("txn_id", txn.TransactionID),
		slog.String("member_id", memberID),
		slog.String("balance", member.Account.Balance.StringFixed(2)))
	return &txn, nil
}

// AccrueInterest sweeps all accounts and posts interest where at least 30
// days have passed since the last posting. The daily rate is APR/100/365;
// amounts of one cent or less are not worth a ledger entry and leave the
// last-interest date untouched.
func (s *ledgerService) AccrueInterest(ctx context.Context) (int, error) {
	if err := s.RequireCapability(domain.CapProcessInterest); err != nil {
		return 0, err
	}

	today := s.now()
	posted := 0
	for _, member := range s.registry.Members() {
		account := member.Account
		if !account.InterestEnabled || !account.Balance.IsPositive() {
			continue
		}
		days := domain.DaysBetween(account.LastInterestDate, today)
		if days < minAccrueGap {
			continue
		}

		dailyRate := account.InterestRate.Div(oneHundred).Div(daysPerYear)
		interest := account.Balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
		if !interest.GreaterThan(minInterestPosting) {
			continue
		}

		txn := domain.Transaction{
			TransactionID: s.registry.NextTransactionID(),
			MemberID:      member.MemberID,
			Kind:          domain.KindInterest,
			Amount:        interest,
			Date:          today,
			Description:   fmt.Sprintf("Interest for %d days", days),
			InterestRate:  account.InterestRate,
		}
		account.Apply(txn)
		s.registry.AppendTransaction(txn)
		account.LastInterestDate = today
		posted++

		s.LogInfo("interest posted",
			slog.String("txn_id", txn.TransactionID),
			slog.String("member_id", member.MemberID),
			slog.String("amount", interest.StringFixed(2)))
	}
	s.persist(ctx)
	return posted, nil
}

func (s *ledgerService) Statement(ctx context.Context, memberID string) (*dto.AccountStatement, error) {
	if err := s.RequireCapability(domain.CapViewMembers); err != nil {
		return nil, err
	}
	member, ok := s.registry.FindMember(memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}

	account := member.Account
	history := make([]domain.Transaction, len(account.History))
	copy(history, account.History)
	return &dto.AccountStatement{
		MemberID:           member.MemberID,
		MemberName:         member.FullName(),
		Balance:            account.Balance,
		InterestRate:       account.InterestRate,
		InterestEnabled:    account.InterestEnabled,
		TotalContributions: account.TotalContributions(),
		TotalWithdrawals:   account.TotalWithdrawals(),
		TotalInterest:      account.TotalInterest(),
		History:            history,
	}, nil
}
