package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coopware/thrift_association_app/internal/core/domain"
)

// grantTable is the full authorization matrix: role -> capability -> allowed.
// Capabilities absent from a role's map are denied.
var grantTable = map[domain.Role]map[domain.Capability]bool{
	domain.RoleAdmin: {
		domain.CapAddMember:           true,
		domain.CapEditMember:          true,
		domain.CapViewMembers:         true,
		domain.CapProcessTransactions: true,
		domain.CapProcessInterest:     true,
		domain.CapApproveLoans:        true,
		domain.CapDisburseLoans:       true,
		domain.CapViewLoans:           true,
		domain.CapGenerateReports:     true,
		domain.CapCreateUser:          true,
		domain.CapViewOwnAccount:      true,
	},
	domain.RoleManager: {
		domain.CapAddMember:           true,
		domain.CapEditMember:          true,
		domain.CapViewMembers:         true,
		domain.CapProcessTransactions: true,
		domain.CapProcessInterest:     true,
		domain.CapApproveLoans:        true,
		domain.CapDisburseLoans:       true,
		domain.CapViewLoans:           true,
		domain.CapGenerateReports:     true,
		domain.CapCreateUser:          false,
		domain.CapViewOwnAccount:      true,
	},
	domain.RoleTeller: {
		domain.CapViewMembers:         true,
		domain.CapProcessTransactions: true,
	},
	domain.RoleMember: {
		domain.CapViewOwnAccount: true,
	},
}

func TestHasPermissionMatrix(t *testing.T) {
	for role, grants := range grantTable {
		user := &domain.User{UserID: "USR0001", Username: "u", Role: role, Active: true}
		for _, cap := range domain.AllCapabilities {
			want := grants[cap]
			got := domain.HasPermission(user, cap)
			assert.Equalf(t, want, got, "role %s capability %s", role, cap)
		}
	}
}

func TestHasPermissionNoSession(t *testing.T) {
	for _, cap := range domain.AllCapabilities {
		assert.Falsef(t, domain.HasPermission(nil, cap), "capability %s must be denied with no session", cap)
	}
}

func TestHasPermissionUnknownRole(t *testing.T) {
	user := &domain.User{UserID: "USR0002", Role: domain.Role("AUDITOR")}
	for _, cap := range domain.AllCapabilities {
		assert.False(t, domain.HasPermission(user, cap))
	}
}
