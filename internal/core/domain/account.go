package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a member's savings account. Balance and History are a projection
// of the global transaction log, re-derived by replaying it at startup.
// History is kept in insertion order, it is the member's audit trail.
type Account struct {
	AccountID        string          `json:"accountID"` // <memberID>_ACC
	MemberID         string          `json:"memberID"`
	Balance          decimal.Decimal `json:"balance"`
	History          []Transaction   `json:"history"`
	InterestRate     decimal.Decimal `json:"interestRate"` // annual percentage rate
	InterestEnabled  bool            `json:"interestEnabled"`
	LastInterestDate time.Time       `json:"lastInterestDate"`
}

// NewAccount creates the account that accompanies a new member.
func NewAccount(memberID string, interestRate decimal.Decimal, now time.Time) *Account {
	return &Account{
		AccountID:        memberID + "_ACC",
		MemberID:         memberID,
		Balance:          decimal.Zero,
		InterestRate:     interestRate,
		InterestEnabled:  true,
		LastInterestDate: now,
	}
}

// Apply appends a transaction to the account's history and moves the balance
// by its signed amount. This is the only way a balance ever changes.
func (a *Account) Apply(txn Transaction) {
	a.History = append(a.History, txn)
	a.Balance = a.Balance.Add(txn.SignedAmount())
}

// ResetForReplay clears the derived projection so the global log can be
// replayed without double-counting.
func (a *Account) ResetForReplay() {
	a.History = nil
	a.Balance = decimal.Zero
}

func (a *Account) sumByKind(kind TransactionKind) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range a.History {
		if txn.Kind == kind {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// TotalContributions sums all contribution entries in the current history.
func (a *Account) TotalContributions() decimal.Decimal {
	return a.sumByKind(KindContribution)
}

// TotalWithdrawals sums all withdrawal entries in the current history.
func (a *Account) TotalWithdrawals() decimal.Decimal {
	return a.sumByKind(KindWithdrawal)
}

// TotalInterest sums all interest entries in the current history.
func (a *Account) TotalInterest() decimal.Decimal {
	return a.sumByKind(KindInterest)
}
