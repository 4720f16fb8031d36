package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coopware/thrift_association_app/internal/core/domain"
)

// Registry owns the in-memory collections, the id counters and the signed-in
// user. It is the single mutable state of the association; every service
// operates on one shared instance, sequentially (no locking by design, there
// is exactly one caller at a time).
type Registry struct {
	members      []*domain.Member
	transactions []domain.Transaction
	loans        []*domain.Loan
	users        []*domain.User

	memberSeq int
	txnSeq    int
	loanSeq   int
	userSeq   int

	currentUser *domain.User
}

// NewRegistry returns an empty registry with all counters at 1.
func NewRegistry() *Registry {
	return &Registry{memberSeq: 1, txnSeq: 1, loanSeq: 1, userSeq: 1}
}

// Load replaces the collections with freshly loaded snapshots and seeds every
// id counter from the highest numeric suffix found, so ids issued from here
// on can never collide with one already on record.
func (r *Registry) Load(members []*domain.Member, transactions []domain.Transaction, loans []*domain.Loan, users []*domain.User) {
	r.members = members
	r.transactions = transactions
	r.loans = loans
	r.users = users

	r.memberSeq = 1
	for _, m := range members {
		bumpSeq(&r.memberSeq, m.MemberID, "MEM")
	}
	r.txnSeq = 1
	for _, t := range transactions {
		bumpSeq(&r.txnSeq, t.TransactionID, "TXN")
	}
	r.loanSeq = 1
	for _, l := range loans {
		bumpSeq(&r.loanSeq, l.LoanID, "LOAN")
	}
	r.userSeq = 1
	for _, u := range users {
		bumpSeq(&r.userSeq, u.UserID, "USR")
	}
}

func bumpSeq(seq *int, id, prefix string) {
	suffix := strings.TrimPrefix(id, prefix)
	if suffix == id {
		return
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return
	}
	if n+1 > *seq {
		*seq = n + 1
	}
}

// NextMemberID mints the next MEMnnnn id.
func (r *Registry) NextMemberID() string {
	id := fmt.Sprintf("MEM%04d", r.memberSeq)
	r.memberSeq++
	return id
}

// NextTransactionID mints the next TXNnnnnnn id.
func (r *Registry) NextTransactionID() string {
	id := fmt.Sprintf("TXN%06d", r.txnSeq)
	r.txnSeq++
	return id
}

// NextLoanID mints the next LOANnnnn id.
func (r *Registry) NextLoanID() string {
	id := fmt.Sprintf("LOAN%04d", r.loanSeq)
	r.loanSeq++
	return id
}

// NextUserID mints the next USRnnnn id.
func (r *Registry) NextUserID() string {
	id := fmt.Sprintf("USR%04d", r.userSeq)
	r.userSeq++
	return id
}

// Members returns the member collection.
func (r *Registry) Members() []*domain.Member { return r.members }

// Transactions returns the global transaction log.
func (r *Registry) Transactions() []domain.Transaction { return r.transactions }

// Loans returns the loan collection.
func (r *Registry) Loans() []*domain.Loan { return r.loans }

// Users returns the user collection.
func (r *Registry) Users() []*domain.User { return r.users }

// FindMember looks up a member by id.
func (r *Registry) FindMember(memberID string) (*domain.Member, bool) {
	for _, m := range r.members {
		if m.MemberID == memberID {
			return m, true
		}
	}
	return nil, false
}

// FindLoan looks up a loan by id.
func (r *Registry) FindLoan(loanID string) (*domain.Loan, bool) {
	for _, l := range r.loans {
		if l.LoanID == loanID {
			return l, true
		}
	}
	return nil, false
}

// FindUserByUsername looks up a user by username.
func (r *Registry) FindUserByUsername(username string) (*domain.User, bool) {
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// AddMember appends a member to the register.
func (r *Registry) AddMember(m *domain.Member) { r.members = append(r.members, m) }

// AppendTransaction appends an entry to the global log. Entries are
// append-only and immutable once recorded.
func (r *Registry) AppendTransaction(t domain.Transaction) {
	r.transactions = append(r.transactions, t)
}

// AddLoan appends a loan to the collection.
func (r *Registry) AddLoan(l *domain.Loan) { r.loans = append(r.loans, l) }

// AddUser appends a user to the collection.
func (r *Registry) AddUser(u *domain.User) { r.users = append(r.users, u) }

// CurrentUser returns the signed-in user, or nil.
func (r *Registry) CurrentUser() *domain.User { return r.currentUser }

// SetCurrentUser binds (or, with nil, clears) the session.
func (r *Registry) SetCurrentUser(u *domain.User) { r.currentUser = u }
