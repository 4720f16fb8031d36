package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portssvc "github.com/coopware/thrift_association_app/internal/core/ports/services"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
}

func newReportingService(base BaseService) portssvc.ReportingSvc {
	return &reportingService{BaseService: base}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) MonthlyReport(ctx context.Context, yearMonth string) (*dto.MonthlyReport, error) {
	if err := s.RequireCapability(domain.CapGenerateReports); err != nil {
		return nil, err
	}
	start, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be formatted as YYYY-MM", apperrors.ErrValidation)
	}
	end := start.AddDate(0, 1, 0) // first day of the next month, exclusive

	report := &dto.MonthlyReport{
		Month:              yearMonth,
		TotalContributions: decimal.Zero,
		TotalWithdrawals:   decimal.Zero,
		TotalInterest:      decimal.Zero,
		TotalBalance:       decimal.Zero,
	}

	for _, txn := range s.registry.Transactions() {
		if txn.Date.Before(start) || !txn.Date.Before(end) {
			continue
		}
		report.TransactionCount++
		switch txn.Kind {
		case domain.KindContribution:
			report.TotalContributions = report.TotalContributions.Add(txn.Amount)
		case domain.KindWithdrawal:
			report.TotalWithdrawals = report.TotalWithdrawals.Add(txn.Amount)
		case domain.KindInterest:
			report.TotalInterest = report.TotalInterest.Add(txn.Amount)
		}
	}
	report.NetFlow = report.TotalContributions.Sub(report.TotalWithdrawals)

	for _, member := range s.registry.Members() {
		if !member.JoinDate.Before(start) && member.JoinDate.Before(end) {
			report.NewMembers++
		}
		report.TotalBalance = report.TotalBalance.Add(member.Account.Balance)
	}
	report.TotalMembers = len(s.registry.Members())

	return report, nil
}

func (s *reportingService) AssociationSummary(ctx context.Context) (*dto.AssociationSummary, error) {
	if err := s.RequireCapability(domain.CapGenerateReports); err != nil {
		return nil, err
	}

	summary := &dto.AssociationSummary{
		TotalBalance:       decimal.Zero,
		TotalContributions: decimal.Zero,
		TotalWithdrawals:   decimal.Zero,
		TotalInterest:      decimal.Zero,
		LoansByStatus:      make(map[domain.LoanStatus]int),
		TotalOutstanding:   decimal.Zero,
	}

	for _, member := range s.registry.Members() {
		if member.Active {
			summary.ActiveMembers++
		} else {
			summary.InactiveMembers++
		}
		account := member.Account
		summary.TotalBalance = summary.TotalBalance.Add(account.Balance)
		summary.TotalContributions = summary.TotalContributions.Add(account.TotalContributions())
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(account.TotalWithdrawals())
		summary.TotalInterest = summary.TotalInterest.Add(account.TotalInterest())
	}

	for _, loan := range s.registry.Loans() {
		summary.LoansByStatus[loan.Status]++
		if loan.Status == domain.LoanDisbursed || loan.Status == domain.LoanActive {
			summary.TotalOutstanding = summary.TotalOutstanding.Add(loan.OutstandingBalance)
		}
	}

	return summary, nil
}
