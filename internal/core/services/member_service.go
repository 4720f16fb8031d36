package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coopware/thrift_association_app/internal/apperrors"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	portssvc "github.com/coopware/thrift_association_app/internal/core/ports/services"
	"github.com/coopware/thrift_association_app/internal/dto"
	"github.com/shopspring/decimal"
)

type memberService struct {
	BaseService
	defaultInterestRate decimal.Decimal
}

func newMemberService(base BaseService, defaultInterestRate decimal.Decimal) portssvc.MemberSvc {
	return &memberService{BaseService: base, defaultInterestRate: defaultInterestRate}
}

var _ portssvc.MemberSvc = (*memberService)(nil)

func (s *memberService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := s.RequireCapability(domain.CapAddMember); err != nil {
		return nil, err
	}
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	member := domain.NewMember(s.registry.NextMemberID(), req.FirstName, req.LastName,
		req.Email, req.PhoneNumber, s.defaultInterestRate, s.now())
	member.Address = req.Address
	member.DateOfBirth = req.DateOfBirth
	member.Occupation = req.Occupation

	s.registry.AddMember(member)
	s.persist(ctx)

	s.LogInfo("member registered",
		slog.String("member_id", member.MemberID),
		slog.String("name", member.FullName()))
	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if err := s.RequireCapability(domain.CapEditMember); err != nil {
		return nil, err
	}
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}
	member, ok := s.registry.FindMember(memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}

	if req.Email != "" {
		member.Email = req.Email
	}
	if req.PhoneNumber != "" {
		member.PhoneNumber = req.PhoneNumber
	}
	s.persist(ctx)

	s.LogInfo("member updated", slog.String("member_id", member.MemberID))
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	if err := s.RequireCapability(domain.CapViewMembers); err != nil {
		return nil, err
	}
	members := make([]*domain.Member, len(s.registry.Members()))
	copy(members, s.registry.Members())
	return members, nil
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, ok := s.registry.FindMember(memberID)
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	return member, nil
}
