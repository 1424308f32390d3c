package domain

import (
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

func newTestProposalDomain() *proposalDomain {
	proposalRepo := repository.NewProposalRepository()
	return &proposalDomain{
		proposalRepo:   proposalRepo,
		accessResolver: common.NewAccessResolver(proposalRepo, repository.NewCollaborationRepository()),
	}
}

func Test_proposalDomain_CreateAndGet(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestProposalDomain()

	created, err := d.Create(ctx, &model.CreateProposalRequest{
		Title:       "Municipal network rollout",
		Description: "Fiber for the north district",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := d.Get(ctx, &model.GetProposalRequest{ProposalID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "Municipal network rollout", got.Proposal.Title)
	require.Equal(t, string(entity.ProposalDraft), got.Proposal.Status)
	require.True(t, got.IsOwner)
	require.True(t, got.Capabilities.CanReview)

	_, err = d.Create(ctx, &model.CreateProposalRequest{})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty title").Error(), err.Error())
}

func Test_proposalDomain_Get_access(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestProposalDomain()

	// A commenter can view but holds no edit or review capability.
	got, err := d.Get(ctx, &model.GetProposalRequest{ProposalID: testutil.Proposal1.ID})
	require.NoError(t, err)
	require.False(t, got.IsOwner)
	require.True(t, got.Capabilities.CanComment)
	require.False(t, got.Capabilities.CanEdit)

	strangerCtx := xcontext.WithRequestUserID(ctx, testutil.User4.ID)
	_, err = d.Get(strangerCtx, &model.GetProposalRequest{ProposalID: testutil.Proposal1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied").Error(), err.Error())

	_, err = d.Get(ctx, &model.GetProposalRequest{ProposalID: "invalid-proposal-id"})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found proposal").Error(), err.Error())
}

func Test_proposalDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestProposalDomain()

	_, err := d.Update(ctx, &model.UpdateProposalRequest{
		ProposalID: testutil.Proposal1.ID,
		Title:      "User1 Proposal1 v2",
		Status:     string(entity.ProposalInProgress),
	})
	require.NoError(t, err)

	got, err := d.Get(ctx, &model.GetProposalRequest{ProposalID: testutil.Proposal1.ID})
	require.NoError(t, err)
	require.Equal(t, "User1 Proposal1 v2", got.Proposal.Title)
	require.Equal(t, string(entity.ProposalInProgress), got.Proposal.Status)

	_, err = d.Update(ctx, &model.UpdateProposalRequest{
		ProposalID: testutil.Proposal1.ID,
		Status:     "wrong-status",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid status").Error(), err.Error())

	// A commenter cannot edit the proposal.
	commenterCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Update(commenterCtx, &model.UpdateProposalRequest{
		ProposalID: testutil.Proposal1.ID,
		Title:      "Hijacked",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied").Error(), err.Error())
}

func Test_proposalDomain_GetMyList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestProposalDomain()

	got, err := d.GetMyList(ctx, &model.GetMyProposalsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got.Proposals, 1)
	require.Equal(t, testutil.Proposal1.ID, got.Proposals[0].ID)

	_, err = d.GetMyList(ctx, &model.GetMyProposalsRequest{Limit: 100})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of 50").Error(), err.Error())
}
