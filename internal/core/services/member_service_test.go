package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
)

func TestAddMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signIn(domain.RoleAdmin)

	member, err := f.svc.Members.AddMember(ctx, dto.CreateMemberRequest{
		FirstName:   "Ada",
		LastName:    "Okafor",
		Email:       "ada@example.com",
		PhoneNumber: "08012345678",
		Occupation:  "Trader",
	})
	require.NoError(t, err)

	assert.Equal(t, "MEM0001", member.MemberID)
	assert.True(t, member.Active)
	assert.Equal(t, "700", member.CreditScore.String())
	require.NotNil(t, member.Account)
	assert.Equal(t, "MEM0001_ACC", member.Account.AccountID)
	assert.True(t, member.Account.InterestEnabled)
	assert.Equal(t, "3.5", member.Account.InterestRate.String())
	assert.Equal(t, f.now, member.JoinDate)
}

func TestAddMemberValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signIn(domain.RoleAdmin)

	_, err := f.svc.Members.AddMember(ctx, dto.CreateMemberRequest{
		FirstName:   "Ada",
		LastName:    "Okafor",
		Email:       "not-an-email",
		PhoneNumber: "080",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Members.AddMember(ctx, dto.CreateMemberRequest{Email: "a@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "names are required")
	assert.Empty(t, f.registry.Members())
}

func TestAddMemberRequiresCapability(t *testing.T) {
	f := newFixture(t)
	f.signIn(domain.RoleTeller)

	_, err := f.svc.Members.AddMember(context.Background(), dto.CreateMemberRequest{
		FirstName: "Ada", LastName: "Okafor", Email: "ada@example.com", PhoneNumber: "080",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Empty(t, f.registry.Members())
}

func TestUpdateMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")

	updated, err := f.svc.Members.UpdateMember(ctx, member.MemberID, dto.UpdateMemberRequest{
		Email: "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "08012345678", updated.PhoneNumber, "blank fields stay untouched")

	_, err = f.svc.Members.UpdateMember(ctx, "MEM9999", dto.UpdateMemberRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListAndGetMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember("Ada")

	members, err := f.svc.Members.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	got, err := f.svc.Members.GetMember(ctx, member.MemberID)
	require.NoError(t, err)
	assert.Same(t, member, got)

	_, err = f.svc.Members.GetMember(ctx, "MEM9999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	f.signIn(domain.RoleMember)
	_, err = f.svc.Members.ListMembers(ctx)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
