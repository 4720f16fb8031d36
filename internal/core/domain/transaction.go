package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a ledger entry as a contribution, withdrawal or
// interest posting. The balance effect of an entry is derived from this tag
// alone, never from anything else.
type TransactionKind string

const (
	KindContribution TransactionKind = "CONTRIBUTION"
	KindWithdrawal   TransactionKind = "WITHDRAWAL"
	KindInterest     TransactionKind = "INTEREST"
)

// Transaction is a single immutable ledger entry. Amount is always stored
// positive; Kind determines whether it credits or debits the account.
// InterestRate is only meaningful for KindInterest entries, where it records
// the account's APR at posting time.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // TXNnnnnnn
	MemberID      string          `json:"memberID"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	InterestRate  decimal.Decimal `json:"interestRate,omitempty"`
}

// SignedAmount returns the balance effect of the entry: positive for
// contributions and interest, negative for withdrawals. Unknown kinds
// contribute nothing; Valid rejects them before they reach a ledger.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Kind {
	case KindContribution, KindInterest:
		return t.Amount
	case KindWithdrawal:
		return t.Amount.Neg()
	}
	return decimal.Zero
}

// Valid reports whether the entry carries a known kind and a positive amount.
func (t Transaction) Valid() bool {
	switch t.Kind {
	case KindContribution, KindWithdrawal, KindInterest:
	default:
		return false
	}
	return t.Amount.IsPositive()
}
