package dto

import "github.com/shopspring/decimal"

// LoanApplicationRequest carries a member's loan application.
type LoanApplicationRequest struct {
	MemberID     string          `json:"memberID" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	TermMonths   int             `json:"termMonths" validate:"required,gt=0"`
	Purpose      string          `json:"purpose" validate:"required"`
}
