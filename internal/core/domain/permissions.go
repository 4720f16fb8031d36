package domain

// Capability is a named permission checked before every guarded service
// operation.
type Capability string

const (
	CapAddMember           Capability = "ADD_MEMBER"
	CapEditMember          Capability = "EDIT_MEMBER"
	CapViewMembers         Capability = "VIEW_MEMBERS"
	CapProcessTransactions Capability = "PROCESS_TRANSACTIONS"
	CapProcessInterest     Capability = "PROCESS_INTEREST"
	CapApproveLoans        Capability = "APPROVE_LOANS"
	CapDisburseLoans       Capability = "DISBURSE_LOANS"
	CapViewLoans           Capability = "VIEW_LOANS"
	CapGenerateReports     Capability = "GENERATE_REPORTS"
	CapCreateUser          Capability = "CREATE_USER"
	CapViewOwnAccount      Capability = "VIEW_OWN_ACCOUNT"
)

// AllCapabilities lists every capability the guard knows about.
var AllCapabilities = []Capability{
	CapAddMember,
	CapEditMember,
	CapViewMembers,
	CapProcessTransactions,
	CapProcessInterest,
	CapApproveLoans,
	CapDisburseLoans,
	CapViewLoans,
	CapGenerateReports,
	CapCreateUser,
	CapViewOwnAccount,
}

func capabilitySet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

func allExcept(excluded ...Capability) map[Capability]struct{} {
	set := capabilitySet(AllCapabilities...)
	for _, c := range excluded {
		delete(set, c)
	}
	return set
}

// rolePermissions is the declarative policy table: one capability set per
// role, nothing else feeds the decision.
var rolePermissions = map[Role]map[Capability]struct{}{
	RoleAdmin:   allExcept(),
	RoleManager: allExcept(CapCreateUser),
	RoleTeller:  capabilitySet(CapViewMembers, CapProcessTransactions),
	RoleMember:  capabilitySet(CapViewOwnAccount),
}

// HasPermission decides whether user may exercise cap. A nil user (nobody
// signed in) is denied everything. The decision depends on the role alone,
// never on any other state.
func HasPermission(user *User, cap Capability) bool {
	if user == nil {
		return false
	}
	_, ok := rolePermissions[user.Role][cap]
	return ok
}
