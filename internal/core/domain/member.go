package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is a cooperative member. Every member owns exactly one Account,
// created together with the member and sharing its lifetime.
type Member struct {
	MemberID    string          `json:"memberID"` // MEMnnnn
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     string          `json:"address"`
	DateOfBirth time.Time       `json:"dateOfBirth"`
	Occupation  string          `json:"occupation"`
	JoinDate    time.Time       `json:"joinDate"`
	Active      bool            `json:"active"`
	CreditScore decimal.Decimal `json:"creditScore"`
	Account     *Account        `json:"account"`
}

// DefaultCreditScore is assigned to every new member.
var DefaultCreditScore = decimal.NewFromInt(700)

// NewMember creates a member together with its account.
func NewMember(memberID, firstName, lastName, email, phone string, interestRate decimal.Decimal, now time.Time) *Member {
	return &Member{
		MemberID:    memberID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		JoinDate:    now,
		Active:      true,
		CreditScore: DefaultCreditScore,
		Account:     NewAccount(memberID, interestRate, now),
	}
}

// FullName returns "First Last".
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// MembershipDays returns whole calendar days between the join date and now.
func (m *Member) MembershipDays(now time.Time) int {
	return DaysBetween(m.JoinDate, now)
}

// DaysBetween counts whole calendar days from one date to another, ignoring
// the time-of-day component of both.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
