package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
)

func (f *fixture) addMember(name string) *domain.Member {
	f.t.Helper()
	f.signIn(domain.RoleAdmin)
	member, err := f.svc.Members.AddMember(context.Background(), dto.CreateMemberRequest{
		FirstName:   name,
		LastName:    "Tester",
		Email:       name + "@example.com",
		PhoneNumber: "08012345678",
	})
	require.NoError(f.t, err)
	return member
}

func TestNewMemberHasZeroBalance(t *testing.T) {
	f := newFixture(t)
	member := f.addMember("Ada")

	assert.Equal(t, "0.00", member.Account.Balance.StringFixed(2))
	assert.Empty(t, member.Account.History)
}

func TestDepositThenWithdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")

	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(100), "monthly dues")
	require.NoError(t, err)

	f.advanceDays(31)
	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(30), "school fees")
	require.NoError(t, err)

	assert.Equal(t, "70.00", member.Account.Balance.StringFixed(2))
	require.Len(t, member.Account.History, 2)
	assert.Equal(t, domain.KindContribution, member.Account.History[0].Kind)
	assert.Equal(t, domain.KindWithdrawal, member.Account.History[1].Kind)
	assert.Equal(t, "100", member.Account.History[0].Amount.String())
	assert.Equal(t, "30", member.Account.History[1].Amount.String())
}

func TestDepositValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")

	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.Zero, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(-5), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(10001), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Ledger.Deposit(ctx, "MEM9999", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Failed operations leave no trace on the ledger.
	assert.Empty(t, member.Account.History)
	assert.Empty(t, f.registry.Transactions())
}

func TestWithdrawValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")
	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(6000), "seed")
	require.NoError(t, err)

	// Too young: membership under 30 days.
	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	f.advanceDays(31)

	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(5001), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "withdrawal ceiling")

	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(-1), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Ledger.Withdraw(ctx, "MEM9999", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Insufficient funds: withdraw within the ceiling but above the balance.
	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(5000), "")
	require.NoError(t, err)
	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(1001), "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Equal(t, "1000.00", member.Account.Balance.StringFixed(2))
}

func TestLedgerDeniedWithoutCapability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")

	f.signIn(domain.RoleMember)
	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(100), "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = f.svc.Ledger.Withdraw(ctx, member.MemberID, decimal.NewFromInt(100), "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = f.svc.Ledger.AccrueInterest(ctx)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	assert.Empty(t, f.registry.Transactions(), "denied operations must not mutate the log")
}

func TestAccrueInterestAfterThirtyDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")
	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(1000), "seed")
	require.NoError(t, err)

	f.advanceDays(30)
	posted, err := f.svc.Ledger.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, posted)

	// 1000 at 3.5% APR for 30 days: 1000 * 0.035/365 * 30 = 2.8767...
	require.Len(t, member.Account.History, 2)
	interest := member.Account.History[1]
	assert.Equal(t, domain.KindInterest, interest.Kind)
	assert.Equal(t, "2.88", interest.Amount.StringFixed(2))
	assert.Equal(t, "3.50", interest.InterestRate.StringFixed(2), "posting records the account APR")
	assert.Equal(t, "1002.88", member.Account.Balance.StringFixed(2))
	assert.Equal(t, f.now, member.Account.LastInterestDate)
}

func TestAccrueInterestGating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	young := f.addMember("Young")
	_, err := f.svc.Ledger.Deposit(ctx, young.MemberID, decimal.NewFromInt(1000), "")
	require.NoError(t, err)

	tiny := f.addMember("Tiny")
	_, err = f.svc.Ledger.Deposit(ctx, tiny.MemberID, decimal.NewFromInt(1), "")
	require.NoError(t, err)

	disabled := f.addMember("Disabled")
	_, err = f.svc.Ledger.Deposit(ctx, disabled.MemberID, decimal.NewFromInt(1000), "")
	require.NoError(t, err)
	disabled.Account.InterestEnabled = false

	// Under 30 days: nothing posts anywhere.
	f.advanceDays(29)
	posted, err := f.svc.Ledger.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, posted)
	assert.Equal(t, testStart, young.Account.LastInterestDate, "gate must not move the last-interest date")

	// Past 30 days: the tiny balance yields under a cent and is skipped, and
	// the interest-disabled account never accrues.
	f.advanceDays(2)
	posted, err = f.svc.Ledger.AccrueInterest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, posted)
	assert.Len(t, young.Account.History, 2)
	assert.Len(t, tiny.Account.History, 1)
	assert.Equal(t, testStart, tiny.Account.LastInterestDate)
	assert.Len(t, disabled.Account.History, 1)
}

func TestStatement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")
	_, err := f.svc.Ledger.Deposit(ctx, member.MemberID, decimal.NewFromInt(250), "dues")
	require.NoError(t, err)

	stmt, err := f.svc.Ledger.Statement(ctx, member.MemberID)
	require.NoError(t, err)
	assert.Equal(t, member.MemberID, stmt.MemberID)
	assert.Equal(t, "250.00", stmt.Balance.StringFixed(2))
	assert.Equal(t, "250.00", stmt.TotalContributions.StringFixed(2))
	assert.Len(t, stmt.History, 1)

	_, err = f.svc.Ledger.Statement(ctx, "MEM9999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
