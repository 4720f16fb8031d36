package dto

import (
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountStatement is a point-in-time view of one member's account: the
// current projection plus the per-kind lifetime totals.
type AccountStatement struct {
	MemberID           string               `json:"memberID"`
	MemberName         string               `json:"memberName"`
	Balance            decimal.Decimal      `json:"balance"`
	InterestRate       decimal.Decimal      `json:"interestRate"`
	InterestEnabled    bool                 `json:"interestEnabled"`
	TotalContributions decimal.Decimal      `json:"totalContributions"`
	TotalWithdrawals   decimal.Decimal      `json:"totalWithdrawals"`
	TotalInterest      decimal.Decimal      `json:"totalInterest"`
	History            []domain.Transaction `json:"history"`
}
