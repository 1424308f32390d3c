package domain

import (
	"context"
	"testing"

	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/testutil"
	"github.com/rfphub/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestCollaborationDomain() *collaborationDomain {
	collaborationRepo := repository.NewCollaborationRepository()
	proposalRepo := repository.NewProposalRepository()
	return &collaborationDomain{
		collaborationRepo: collaborationRepo,
		userRepo:          repository.NewUserRepository(),
		accessResolver:    common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func Test_collaborationDomain_Create(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.CreateCollaborationRequest
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "happy case",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User4.ID,
					Role:       string(entity.CollabEditor),
				},
			},
		},
		{
			name: "admin can manage someone else's proposal",
			args: args{
				ctx: testutil.MockContextWithUserRole(testutil.Admin.ID, entity.RoleAdmin),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User4.ID,
					Role:       string(entity.CollabViewer),
				},
			},
		},
		{
			name: "wrong collaborator role",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User4.ID,
					Role:       "wrong-role",
				},
			},
			wantErr: errorx.New(errorx.BadRequest, "Invalid role"),
		},
		{
			name: "cannot invite the owner",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User1.ID,
					Role:       string(entity.CollabEditor),
				},
			},
			wantErr: errorx.New(errorx.BadRequest, "Cannot invite the owner as a collaborator"),
		},
		{
			name: "invalid user",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     "invalid-user",
					Role:       string(entity.CollabEditor),
				},
			},
			wantErr: errorx.New(errorx.NotFound, "Not found user"),
		},
		{
			name: "invalid proposal",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: "invalid-proposal-id",
					UserID:     testutil.User4.ID,
					Role:       string(entity.CollabEditor),
				},
			},
			wantErr: errorx.New(errorx.NotFound, "Not found proposal"),
		},
		{
			name: "duplicate collaborator",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User1.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User2.ID,
					Role:       string(entity.CollabEditor),
				},
			},
			wantErr: errorx.New(errorx.AlreadyExists, "User is already a collaborator"),
		},
		{
			name: "collaborator cannot manage the list",
			args: args{
				ctx: testutil.MockContextWithUserID(testutil.User2.ID),
				req: &model.CreateCollaborationRequest{
					ProposalID: testutil.Proposal1.ID,
					UserID:     testutil.User4.ID,
					Role:       string(entity.CollabEditor),
				},
			},
			wantErr: errorx.New(errorx.PermissionDenied, "Permission denied"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.CreateFixtureDb(tt.args.ctx)
			d := newTestCollaborationDomain()

			got, err := d.Create(tt.args.ctx, tt.args.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tt.args.req.UserID, got.Collaboration.UserID)
				require.Equal(t, tt.args.req.Role, got.Collaboration.Role)
			} else {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
			}
		})
	}
}

func Test_collaborationDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestCollaborationDomain()

	got, err := d.GetList(ctx, &model.GetCollaborationsRequest{
		ProposalID: testutil.Proposal1.ID,
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, got.Collaborations, 2)

	byUser := map[string]model.Collaboration{}
	for _, c := range got.Collaborations {
		byUser[c.UserID] = c
	}

	require.Equal(t, string(entity.CollabReviewer), byUser[testutil.User2.ID].Role)
	require.True(t, byUser[testutil.User2.ID].Capabilities.CanReview)
	require.Equal(t, string(entity.CollabCommenter), byUser[testutil.User3.ID].Role)
	require.False(t, byUser[testutil.User3.ID].Capabilities.CanEdit)
}

func Test_collaborationDomain_GetList_permissionDenied(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User4.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestCollaborationDomain()

	_, err := d.GetList(ctx, &model.GetCollaborationsRequest{
		ProposalID: testutil.Proposal1.ID,
		Limit:      10,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied").Error(), err.Error())
}

func Test_collaborationDomain_UpdateRole(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestCollaborationDomain()

	_, err := d.UpdateRole(ctx, &model.UpdateCollaborationRoleRequest{
		ProposalID: testutil.Proposal1.ID,
		UserID:     testutil.User3.ID,
		Role:       string(entity.CollabReviewer),
	})
	require.NoError(t, err)

	collab, err := repository.NewCollaborationRepository().
		Get(ctx, testutil.Proposal1.ID, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CollabReviewer, collab.Role)
}

func Test_collaborationDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestCollaborationDomain()

	_, err := d.Delete(ctx, &model.DeleteCollaborationRequest{
		ProposalID: testutil.Proposal1.ID,
		UserID:     testutil.User2.ID,
	})
	require.NoError(t, err)

	// The removed collaborator drops to zero capabilities.
	asUser2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = d.GetList(asUser2, &model.GetCollaborationsRequest{
		ProposalID: testutil.Proposal1.ID,
		Limit:      10,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied").Error(), err.Error())
}
