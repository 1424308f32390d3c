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

func newTestQuestionDomain() *questionDomain {
	collaborationRepo := repository.NewCollaborationRepository()
	proposalRepo := repository.NewProposalRepository()
	return &questionDomain{
		questionRepo:   repository.NewQuestionRepository(),
		answerRepo:     repository.NewAnswerRepository(),
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func Test_questionDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestQuestionDomain()

	created, err := d.Create(ctx, &model.CreateQuestionRequest{
		ProposalID: testutil.Proposal1.ID,
		Text:       "Who signs off on delivery?",
		Position:   3,
		Source:     string(entity.QuestionFromAI),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = d.Create(ctx, &model.CreateQuestionRequest{
		ProposalID: testutil.Proposal1.ID,
		Source:     "wrong-source",
	})
	require.Error(t, err)

	commenterCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Create(commenterCtx, &model.CreateQuestionRequest{
		ProposalID: testutil.Proposal1.ID,
		Text:       "Who pays?",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied").Error(), err.Error())
}

func Test_questionDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestQuestionDomain()

	got, err := d.GetList(ctx, &model.GetQuestionsRequest{ProposalID: testutil.Proposal1.ID})
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)

	// Ordered by position.
	require.Equal(t, testutil.Question1.ID, got.Questions[0].ID)
	require.Equal(t, testutil.Question2.ID, got.Questions[1].ID)
}

func Test_questionDomain_Delete_cascadesToAnswer(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	answers := newTestAnswerDomain()
	_, err := answers.Save(ctx, &model.SaveAnswerRequest{
		ProposalID: testutil.Proposal1.ID,
		QuestionID: testutil.Question1.ID,
		Text:       "Six months.",
	})
	require.NoError(t, err)

	d := newTestQuestionDomain()
	_, err = d.Delete(ctx, &model.DeleteQuestionRequest{
		ProposalID: testutil.Proposal1.ID,
		QuestionID: testutil.Question1.ID,
	})
	require.NoError(t, err)

	_, err = repository.NewAnswerRepository().GetByQuestionID(ctx, testutil.Question1.ID)
	require.Error(t, err)

	got, err := d.GetList(ctx, &model.GetQuestionsRequest{ProposalID: testutil.Proposal1.ID})
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
}
