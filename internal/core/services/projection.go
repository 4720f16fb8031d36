package services

import "github.com/coopware/thrift_association_app/internal/core/domain"

// ReplayLog re-derives every account's balance and history from the global
// transaction log. The log is the source of truth; whatever the accounts
// held before is discarded first, so replaying is idempotent. Entries whose
// member no longer exists are skipped.
//
// It is a pure function of (members, log) with no I/O, so the ledger
// conservation invariant can be tested directly against it.
func ReplayLog(members []*domain.Member, log []domain.Transaction) {
	index := make(map[string]*domain.Member, len(members))
	for _, m := range members {
		m.Account.ResetForReplay()
		index[m.MemberID] = m
	}
	for _, txn := range log {
		if m, ok := index[txn.MemberID]; ok {
			m.Account.Apply(txn)
		}
	}
}
