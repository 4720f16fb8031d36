package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/core/services"
)

func TestRegistryIDFormats(t *testing.T) {
	r := services.NewRegistry()
	assert.Equal(t, "MEM0001", r.NextMemberID())
	assert.Equal(t, "MEM0002", r.NextMemberID())
	assert.Equal(t, "TXN000001", r.NextTransactionID())
	assert.Equal(t, "LOAN0001", r.NextLoanID())
	assert.Equal(t, "USR0001", r.NextUserID())
}

// Counters are seeded from the highest issued suffix, not the collection
// size, so a sparse data set cannot cause an id collision.
func TestRegistryLoadSeedsCountersFromMaxSuffix(t *testing.T) {
	r := services.NewRegistry()
	rate := decimal.RequireFromString("3.5")

	members := []*domain.Member{
		domain.NewMember("MEM0002", "A", "B", "a@example.com", "080", rate, testStart),
		domain.NewMember("MEM0007", "C", "D", "c@example.com", "081", rate, testStart),
	}
	transactions := []domain.Transaction{
		{TransactionID: "TXN000412", MemberID: "MEM0002", Kind: domain.KindContribution, Amount: decimal.NewFromInt(1), Date: testStart},
	}
	loans := []*domain.Loan{
		domain.NewLoan("LOAN0003", "MEM0002", decimal.NewFromInt(500), decimal.NewFromInt(5), 6, "x", testStart),
	}
	users := []*domain.User{
		domain.NewUser("USR0009", "admin", "hash", domain.RoleAdmin, testStart),
	}

	r.Load(members, transactions, loans, users)

	assert.Equal(t, "MEM0008", r.NextMemberID())
	assert.Equal(t, "TXN000413", r.NextTransactionID())
	assert.Equal(t, "LOAN0004", r.NextLoanID())
	assert.Equal(t, "USR0010", r.NextUserID())
}

func TestRegistryLoadToleratesMalformedIDs(t *testing.T) {
	r := services.NewRegistry()
	users := []*domain.User{
		domain.NewUser("legacy-admin", "admin", "hash", domain.RoleAdmin, testStart),
		domain.NewUser("USR0002", "second", "hash", domain.RoleTeller, testStart),
	}
	r.Load(nil, nil, nil, users)
	assert.Equal(t, "USR0003", r.NextUserID())
}

func TestRegistryLookups(t *testing.T) {
	r := services.NewRegistry()
	rate := decimal.RequireFromString("3.5")
	member := domain.NewMember("MEM0001", "Ada", "Tester", "a@example.com", "080", rate, testStart)
	r.AddMember(member)

	found, ok := r.FindMember("MEM0001")
	assert.True(t, ok)
	assert.Same(t, member, found)

	_, ok = r.FindMember("MEM0002")
	assert.False(t, ok)

	_, ok = r.FindLoan("LOAN0001")
	assert.False(t, ok)
	_, ok = r.FindUserByUsername("ghost")
	assert.False(t, ok)
}
