package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	portsrepo "github.com/coopware/thrift_association_app/internal/core/ports/repositories"
	"github.com/coopware/thrift_association_app/internal/core/services"
	"github.com/coopware/thrift_association_app/internal/platform/config"
)

// --- Mock SnapshotRepository ---

type MockSnapshotRepository struct {
	mock.Mock
}

var _ portsrepo.SnapshotRepository = (*MockSnapshotRepository)(nil)

func (m *MockSnapshotRepository) SaveMembers(ctx context.Context, members []*domain.Member) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LoadMembers(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockSnapshotRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockSnapshotRepository) SaveLoans(ctx context.Context, loans []*domain.Loan) error {
	args := m.Called(ctx, loans)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LoadLoans(ctx context.Context) ([]*domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockSnapshotRepository) SaveUsers(ctx context.Context, users []*domain.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LoadUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockSnapshotRepository) CreateBackup(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Fixture ---

// testStart pins the fixture clock to a known date.
var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t         *testing.T
	registry  *services.Registry
	snapshots *MockSnapshotRepository
	svc       *services.Container
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{t: t, now: testStart}
	f.registry = services.NewRegistry()
	f.snapshots = new(MockSnapshotRepository)
	f.snapshots.On("SaveMembers", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.snapshots.On("SaveTransactions", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.snapshots.On("SaveLoans", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.snapshots.On("SaveUsers", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.svc = services.NewContainer(f.registry, f.snapshots, config.Default(),
		services.WithClock(func() time.Time { return f.now }))
	return f
}

// advanceDays moves the fixture clock forward.
func (f *fixture) advanceDays(days int) {
	f.now = f.now.AddDate(0, 0, days)
}

// signIn binds the session to a synthetic user with the given role.
func (f *fixture) signIn(role domain.Role) *domain.User {
	user := &domain.User{
		UserID:   "USR9999",
		Username: "tester-" + string(role),
		Role:     role,
		Active:   true,
	}
	f.registry.SetCurrentUser(user)
	return user
}
