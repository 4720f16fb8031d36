package services

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/dto"
)

// MemberSvc manages the member register.
type MemberSvc interface {
	// AddMember registers a member and its account. Requires ADD_MEMBER.
	AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)

	// UpdateMember changes a member's contact details; empty fields are
	// left as they are. Requires EDIT_MEMBER.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// ListMembers returns all members. Requires VIEW_MEMBERS.
	ListMembers(ctx context.Context) ([]*domain.Member, error)

	// GetMember looks up a member by id, returning ErrNotFound when absent.
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
}
