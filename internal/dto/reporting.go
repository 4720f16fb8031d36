package dto

import (
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReport summarizes one calendar month of ledger activity. The balance
// and member count are the association's current figures, not a historical
// point-in-time reconstruction.
type MonthlyReport struct {
	Month              string          `json:"month"` // YYYY-MM
	TotalContributions decimal.Decimal `json:"totalContributions"`
	TotalWithdrawals   decimal.Decimal `json:"totalWithdrawals"`
	TotalInterest      decimal.Decimal `json:"totalInterest"`
	NetFlow            decimal.Decimal `json:"netFlow"`
	NewMembers         int             `json:"newMembers"`
	TotalMembers       int             `json:"totalMembers"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TransactionCount   int             `json:"transactionCount"`
}

// AssociationSummary aggregates the whole association's current state.
type AssociationSummary struct {
	ActiveMembers      int                       `json:"activeMembers"`
	InactiveMembers    int                       `json:"inactiveMembers"`
	TotalBalance       decimal.Decimal           `json:"totalBalance"`
	TotalContributions decimal.Decimal           `json:"totalContributions"`
	TotalWithdrawals   decimal.Decimal           `json:"totalWithdrawals"`
	TotalInterest      decimal.Decimal           `json:"totalInterest"`
	LoansByStatus      map[domain.LoanStatus]int `json:"loansByStatus"`
	// TotalOutstanding covers loans in DISBURSED or ACTIVE status.
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}
