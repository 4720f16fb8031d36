package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portsrepo "github.com/coopware/thrift_association_app/internal/core/ports/repositories"
)

var validate = validator.New()

// BaseService carries what every service needs: the shared registry, the
// snapshot gateway, a logger and a clock.
type BaseService struct {
	registry  *Registry
	snapshots portsrepo.SnapshotRepository
	logger    *slog.Logger
	now       func() time.Time
}

// GetLogger returns the service logger, falling back to slog's default.
func (s *BaseService) GetLogger() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger().Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(msg string, keyvals ...any) {
	s.GetLogger().Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(msg string, keyvals ...any) {
	s.GetLogger().Warn(msg, keyvals...)
}

// RequireCapability consults the permission table for the signed-in user.
// Denial carries apperrors.ErrUnauthorized and guarantees the guarded
// operation has not touched any state.
func (s *BaseService) RequireCapability(cap domain.Capability) error {
	user := s.registry.CurrentUser()
	if domain.HasPermission(user, cap) {
		return nil
	}
	username := "<none>"
	if user != nil {
		username = user.Username
	}
	s.LogWarn("capability denied",
		slog.String("capability", string(cap)),
		slog.String("username", username))
	return fmt.Errorf("capability %s: %w", cap, apperrors.ErrUnauthorized)
}

// validateStruct runs the request through the validator, mapping failures
// onto the validation error of the taxonomy.
func (s *BaseService) validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	return nil
}

// persist snapshots all four collections after a mutation. Save failures are
// logged and swallowed: the in-memory state stays authoritative for the rest
// of the run even if the last snapshot failed.
func (s *BaseService) persist(ctx context.Context) {
	if err := s.snapshots.SaveMembers(ctx, s.registry.Members()); err != nil {
		s.LogError(err, "failed to save members snapshot")
	}
	if err := s.snapshots.SaveTransactions(ctx, s.registry.Transactions()); err != nil {
		s.LogError(err, "failed to save transactions snapshot")
	}
	if err := s.snapshots.SaveLoans(ctx, s.registry.Loans()); err != nil {
		s.LogError(err, "failed to save loans snapshot")
	}
	if err := s.snapshots.SaveUsers(ctx, s.registry.Users()); err != nil {
		s.LogError(err, "failed to save users snapshot")
	}
}
