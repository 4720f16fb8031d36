package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portssvc "github.com/coopware/thrift_association_app/internal/core/ports/services"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/coopware/thrift_association_app/internal/utils"
)

// Bootstrap credential for an empty user store. The account is flagged for a
// forced password change on first login.
const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin123"
)

type authService struct {
	BaseService
}

func newAuthService(base BaseService) portssvc.AuthSvc {
	return &authService{BaseService: base}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, ok := s.registry.FindUserByUsername(username)
	if !ok || !user.Active || !utils.CheckPasswordHash(password, user.PasswordHash) {
		// A single failure path: do not reveal whether the username or the
		// password was wrong.
		s.LogWarn("authentication failed", slog.String("username", username))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	now := s.now()
	user.LastLoginDate = &now
	s.registry.SetCurrentUser(user)
	s.persist(ctx)

	s.LogInfo("user signed in",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return user, nil
}

func (s *authService) Logout(ctx context.Context) {
	if user := s.registry.CurrentUser(); user != nil {
		s.LogInfo("user signed out", slog.String("user_id", user.UserID))
	}
	s.registry.SetCurrentUser(nil)
}

func (s *authService) CurrentUser() *domain.User {
	return s.registry.CurrentUser()
}

func (s *authService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.RequireCapability(domain.CapCreateUser); err != nil {
		return nil, err
	}
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}
	if _, exists := s.registry.FindUserByUsername(req.Username); exists {
		return nil, fmt.Errorf("username %q: %w", req.Username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.NewUser(s.registry.NextUserID(), req.Username, hash, domain.Role(req.Role), s.now())
	s.registry.AddUser(user)
	s.persist(ctx)

	s.LogInfo("user created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	user := s.registry.CurrentUser()
	if user == nil {
		return fmt.Errorf("no user signed in: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	s.persist(ctx)

	s.LogInfo("password changed", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	if len(s.registry.Users()) > 0 {
		return nil
	}

	hash, err := utils.HashPassword(bootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing bootstrap password: %w", err)
	}
	admin := domain.NewUser(s.registry.NextUserID(), bootstrapAdminUsername, hash, domain.RoleAdmin, s.now())
	admin.MustChangePassword = true
	s.registry.AddUser(admin)
	s.persist(ctx)

	s.LogWarn("bootstrap admin created with the default password; it must be changed on first login",
		slog.String("username", bootstrapAdminUsername))
	return nil
}
