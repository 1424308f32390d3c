package common

import (
	"testing"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_PermissionsFor(t *testing.T) {
	tests := []struct {
		name string
		role entity.CollabRole
		want Capabilities
	}{
		{
			name: "viewer",
			role: entity.CollabViewer,
			want: Capabilities{CanView: true},
		},
		{
			name: "commenter",
			role: entity.CollabCommenter,
			want: Capabilities{CanView: true, CanComment: true},
		},
		{
			name: "editor",
			role: entity.CollabEditor,
			want: Capabilities{CanView: true, CanEdit: true, CanComment: true},
		},
		{
			name: "reviewer",
			role: entity.CollabReviewer,
			want: Capabilities{CanView: true, CanEdit: true, CanComment: true, CanReview: true},
		},
		{
			name: "contributor",
			role: entity.CollabContributor,
			want: FullCapabilities,
		},
		{
			name: "unknown role falls back to view only",
			role: entity.CollabRole("made-up"),
			want: Capabilities{CanView: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PermissionsFor(tt.role))
		})
	}
}

func Test_AccessResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		caller     Caller
		proposalID string
		want       *Access
		wantErr    error
	}{
		{
			name:       "owner gets full capabilities",
			caller:     Caller{UserID: testutil.User1.ID},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{IsOwner: true, Capabilities: FullCapabilities},
		},
		{
			name:       "global admin overrides without a collaboration",
			caller:     Caller{UserID: testutil.Admin.ID, Role: string(entity.RoleAdmin)},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{IsAdmin: true, Capabilities: FullCapabilities},
		},
		{
			name:       "super admin overrides without a collaboration",
			caller:     Caller{UserID: testutil.Admin.ID, Role: string(entity.RoleSuperAdmin)},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{IsAdmin: true, Capabilities: FullCapabilities},
		},
		{
			name:       "admin role matches case insensitively",
			caller:     Caller{UserID: testutil.Admin.ID, Role: "ADMIN"},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{IsAdmin: true, Capabilities: FullCapabilities},
		},
		{
			name:       "trusted internal caller",
			caller:     TrustedCaller(),
			proposalID: testutil.Proposal1.ID,
			want:       &Access{IsAdmin: true, IsOwner: true, Capabilities: FullCapabilities},
		},
		{
			name:       "reviewer collaborator",
			caller:     Caller{UserID: testutil.User2.ID},
			proposalID: testutil.Proposal1.ID,
			want: &Access{
				Capabilities: Capabilities{
					CanView: true, CanEdit: true, CanComment: true, CanReview: true,
				},
			},
		},
		{
			name:       "stranger gets zero capabilities",
			caller:     Caller{UserID: testutil.User4.ID},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{},
		},
		{
			name:       "anonymous caller gets zero capabilities",
			caller:     Caller{},
			proposalID: testutil.Proposal1.ID,
			want:       &Access{},
		},
		{
			name:       "missing proposal is not found before any permission decision",
			caller:     Caller{UserID: testutil.User1.ID},
			proposalID: "invalid-proposal-id",
			wantErr:    errorx.New(errorx.NotFound, "Not found proposal"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			testutil.CreateFixtureDb(ctx)
			resolver := NewAccessResolver(
				repository.NewProposalRepository(),
				repository.NewCollaborationRepository(),
			)

			got, err := resolver.Resolve(ctx, tt.proposalID, tt.caller)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.proposalID, got.Proposal.ID)
			require.Equal(t, tt.want.IsAdmin, got.IsAdmin)
			require.Equal(t, tt.want.IsOwner, got.IsOwner)
			require.Equal(t, tt.want.Capabilities, got.Capabilities)
		})
	}
}
