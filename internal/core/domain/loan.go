package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the loan state machine. Only PENDING, APPROVED and DISBURSED
// are reachable through the current operation set; the remaining statuses are
// declared for forward compatibility with a repayment feature that does not
// exist yet.
type LoanStatus string

const (
	LoanPending   LoanStatus = "PENDING"
	LoanApproved  LoanStatus = "APPROVED"
	LoanDisbursed LoanStatus = "DISBURSED"
	LoanActive    LoanStatus = "ACTIVE"
	LoanPaidOff   LoanStatus = "PAID_OFF"
	LoanDefaulted LoanStatus = "DEFAULTED"
	LoanRejected  LoanStatus = "REJECTED"
)

// Loan is a member loan. Status only ever moves forward; OutstandingBalance
// is initialized to the principal and is not reduced by any current
// operation (no repayment exists).
type Loan struct {
	LoanID             string          `json:"loanID"` // LOANnnnn
	MemberID           string          `json:"memberID"`
	Principal          decimal.Decimal `json:"principal"`
	InterestRate       decimal.Decimal `json:"interestRate"` // annual percentage rate
	TermMonths         int             `json:"termMonths"`
	Purpose            string          `json:"purpose"`
	ApplicationDate    time.Time       `json:"applicationDate"`
	ApprovalDate       *time.Time      `json:"approvalDate,omitempty"`
	DisbursementDate   *time.Time      `json:"disbursementDate,omitempty"`
	Status             LoanStatus      `json:"status"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	MonthlyPayment     decimal.Decimal `json:"monthlyPayment"`
}

// NewLoan creates a PENDING loan with the amortized monthly payment computed
// once, at construction.
func NewLoan(loanID, memberID string, principal, annualRate decimal.Decimal, termMonths int, purpose string, now time.Time) *Loan {
	return &Loan{
		LoanID:             loanID,
		MemberID:           memberID,
		Principal:          principal,
		InterestRate:       annualRate,
		TermMonths:         termMonths,
		Purpose:            purpose,
		ApplicationDate:    now,
		Status:             LoanPending,
		OutstandingBalance: principal,
		MonthlyPayment:     AmortizedPayment(principal, annualRate, termMonths),
	}
}

// AmortizedPayment computes the fixed monthly payment that retires principal
// plus interest over the term: P·r·(1+r)^n / ((1+r)^n − 1) with monthly rate
// r = APR/100/12. A zero rate degenerates to principal/term.
func AmortizedPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	monthlyRate := annualRate.Div(decimal.NewFromInt(1200))
	if monthlyRate.IsZero() {
		return principal.Div(n)
	}
	compound := decimal.NewFromInt(1).Add(monthlyRate).Pow(n)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
}
