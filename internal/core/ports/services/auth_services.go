package services

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
)

// AuthSvc manages login identities and the single in-process session.
type AuthSvc interface {
	// Authenticate verifies username+password against the active users and,
	// on success, binds the session to that user and stamps the last-login
	// date. Failure does not reveal which of the two was wrong.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// Logout clears the session.
	Logout(ctx context.Context)

	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *domain.User

	// CreateUser creates a new login identity. Requires CREATE_USER.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// ChangePassword rehashes the signed-in user's password after verifying
	// the old one, clearing any pending forced change.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// EnsureBootstrapAdmin creates the default admin account when the user
	// store is empty. The fixed default credential must be changed on first
	// login.
	EnsureBootstrapAdmin(ctx context.Context) error
}
