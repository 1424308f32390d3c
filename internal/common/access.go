package common

import (
	"context"
	"errors"
	"strings"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Capabilities is the derived permission set of a caller on one proposal.
// It is computed fresh on every request and never stored.
type Capabilities struct {
	CanView       bool `json:"can_view"`
	CanEdit       bool `json:"can_edit"`
	CanComment    bool `json:"can_comment"`
	CanReview     bool `json:"can_review"`
	CanGenerateAI bool `json:"can_generate_ai"`
}

var FullCapabilities = Capabilities{
	CanView:       true,
	CanEdit:       true,
	CanComment:    true,
	CanReview:     true,
	CanGenerateAI: true,
}

// rolePermissions is the single source of truth for the role to capability
// mapping. No other layer may re-derive capabilities on its own.
var rolePermissions = map[entity.CollabRole]Capabilities{
	entity.CollabViewer:    {CanView: true},
	entity.CollabCommenter: {CanView: true, CanComment: true},
	entity.CollabEditor:    {CanView: true, CanEdit: true, CanComment: true},
	entity.CollabReviewer:  {CanView: true, CanEdit: true, CanComment: true, CanReview: true},
	entity.CollabContributor: {
		CanView: true, CanEdit: true, CanComment: true, CanReview: true, CanGenerateAI: true,
	},
}

// PermissionsFor is total: an unknown or empty role behaves as the most
// restrictive one, view-only.
func PermissionsFor(role entity.CollabRole) Capabilities {
	if caps, ok := rolePermissions[role]; ok {
		return caps
	}

	return rolePermissions[entity.CollabViewer]
}

// Caller identifies who is asking. Trusted marks an internal server-to-server
// call whose identity was stripped upstream; it must be constructed
// explicitly through TrustedCaller and never inferred from a missing user id.
type Caller struct {
	UserID  string
	Role    string
	Trusted bool
}

// CallerFromContext builds the caller from the authenticated request
// identity put into the context by the auth middleware.
func CallerFromContext(ctx context.Context) Caller {
	return Caller{
		UserID: xcontext.RequestUserID(ctx),
		Role:   xcontext.RequestUserRole(ctx),
	}
}

func TrustedCaller() Caller {
	return Caller{Trusted: true}
}

func (c Caller) isAdmin() bool {
	role := entity.GlobalRole(strings.ToLower(c.Role))
	return slices.Contains(entity.GlobalAdminRoles, role)
}

// Access is the resolved relationship between a caller and a proposal.
type Access struct {
	Proposal     *entity.Proposal
	IsAdmin      bool
	IsOwner      bool
	Capabilities Capabilities
}

// AccessResolver decides what a caller may do on a proposal. Every viewing
// or mutating operation authorizes through Resolve; nothing may infer access
// from any other signal.
type AccessResolver struct {
	proposalRepo      repository.ProposalRepository
	collaborationRepo repository.CollaborationRepository
}

func NewAccessResolver(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
) *AccessResolver {
	return &AccessResolver{
		proposalRepo:      proposalRepo,
		collaborationRepo: collaborationRepo,
	}
}

// Resolve computes the caller's access to the proposal, in priority order:
// trusted internal caller, global admin, owner, collaborator, none. A
// missing proposal is NotFound before any permission decision, so clients
// can distinguish "does not exist" from "no access".
func (r *AccessResolver) Resolve(
	ctx context.Context, proposalID string, caller Caller,
) (*Access, error) {
	proposal, err := r.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found proposal")
		}

		xcontext.Logger(ctx).Errorf("Cannot get proposal: %v", err)
		return nil, errorx.Unknown
	}

	if caller.Trusted {
		return &Access{
			Proposal:     proposal,
			IsAdmin:      true,
			IsOwner:      true,
			Capabilities: FullCapabilities,
		}, nil
	}

	if caller.isAdmin() {
		return &Access{
			Proposal:     proposal,
			IsAdmin:      true,
			Capabilities: FullCapabilities,
		}, nil
	}

	if caller.UserID != "" && proposal.CreatedBy == caller.UserID {
		return &Access{
			Proposal:     proposal,
			IsOwner:      true,
			Capabilities: FullCapabilities,
		}, nil
	}

	collab, err := r.collaborationRepo.Get(ctx, proposalID, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Access{Proposal: proposal}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaboration: %v", err)
		return nil, errorx.Unknown
	}

	return &Access{
		Proposal:     proposal,
		Capabilities: PermissionsFor(collab.Role),
	}, nil
}
