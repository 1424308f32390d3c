package domain

import (
	"testing"

	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/testutil"
	"github.com/rfphub/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestCommentDomain() *commentDomain {
	collaborationRepo := repository.NewCollaborationRepository()
	proposalRepo := repository.NewProposalRepository()
	return &commentDomain{
		commentRepo:    repository.NewCommentRepository(),
		answerRepo:     repository.NewAnswerRepository(),
		userRepo:       repository.NewUserRepository(),
		notifier:       NewNotifier(repository.NewNotificationRepository(), testutil.NewMockRedisClient()),
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func Test_commentDomain_Add(t *testing.T) {
	ownerCtx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ownerCtx)
	answers := newTestAnswerDomain()
	_, err := answers.Save(ownerCtx, &model.SaveAnswerRequest{
		ProposalID: testutil.Proposal1.ID,
		QuestionID: testutil.Question1.ID,
		Text:       "Six months.",
	})
	require.NoError(t, err)

	d := newTestCommentDomain()
	commenterCtx := xcontext.WithRequestUserID(ownerCtx, testutil.User3.ID)

	root, err := d.Add(commenterCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "Is the timeline realistic?",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.ID, root.Comment.AuthorID)
	require.Equal(t, testutil.User3.Name, root.Comment.AuthorName)
	require.Empty(t, root.Comment.ParentID)

	// The proposal owner is notified about the comment.
	notifications, err := repository.NewNotificationRepository().
		GetListByUserID(ownerCtx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	reply, err := d.Add(ownerCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "Yes, we have done it before.",
		ParentID:   root.Comment.ID,
	})
	require.NoError(t, err)
	require.Equal(t, root.Comment.ID, reply.Comment.ParentID)

	// The owner commenting on their own proposal creates no notification.
	notifications, err = repository.NewNotificationRepository().
		GetListByUserID(ownerCtx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	// Threads are one level deep.
	_, err = d.Add(commenterCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "Good to know.",
		ParentID:   reply.Comment.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Cannot reply to a reply").Error(), err.Error())
}

func Test_commentDomain_Add_validation(t *testing.T) {
	ownerCtx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ownerCtx)
	answers := newTestAnswerDomain()
	_, err := answers.Save(ownerCtx, &model.SaveAnswerRequest{
		ProposalID: testutil.Proposal1.ID,
		QuestionID: testutil.Question1.ID,
		Text:       "Six months.",
	})
	require.NoError(t, err)

	d := newTestCommentDomain()

	tests := []struct {
		name    string
		userID  string
		req     *model.AddCommentRequest
		wantErr error
	}{
		{
			name:   "empty text",
			userID: testutil.User3.ID,
			req: &model.AddCommentRequest{
				ProposalID: testutil.Proposal1.ID,
				AnswerID:   testutil.Question1.ID,
			},
			wantErr: errorx.New(errorx.BadRequest, "Not allow an empty comment"),
		},
		{
			name:   "no answer yet",
			userID: testutil.User3.ID,
			req: &model.AddCommentRequest{
				ProposalID: testutil.Proposal1.ID,
				AnswerID:   testutil.Question2.ID,
				Text:       "Any progress here?",
			},
			wantErr: errorx.New(errorx.NotFound, "Not found answer"),
		},
		{
			name:   "invalid parent",
			userID: testutil.User3.ID,
			req: &model.AddCommentRequest{
				ProposalID: testutil.Proposal1.ID,
				AnswerID:   testutil.Question1.ID,
				Text:       "A reply",
				ParentID:   "invalid-comment-id",
			},
			wantErr: errorx.New(errorx.NotFound, "Not found parent comment"),
		},
		{
			name:   "stranger cannot comment",
			userID: testutil.User4.ID,
			req: &model.AddCommentRequest{
				ProposalID: testutil.Proposal1.ID,
				AnswerID:   testutil.Question1.ID,
				Text:       "Hello",
			},
			wantErr: errorx.New(errorx.PermissionDenied, "Permission denied"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := xcontext.WithRequestUserID(ownerCtx, tt.userID)
			_, err := d.Add(ctx, tt.req)
			require.Error(t, err)
			require.Equal(t, tt.wantErr.Error(), err.Error())
		})
	}
}

func Test_commentDomain_GetList_threading(t *testing.T) {
	ownerCtx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ownerCtx)
	answers := newTestAnswerDomain()
	_, err := answers.Save(ownerCtx, &model.SaveAnswerRequest{
		ProposalID: testutil.Proposal1.ID,
		QuestionID: testutil.Question1.ID,
		Text:       "Six months.",
	})
	require.NoError(t, err)

	d := newTestCommentDomain()
	commenterCtx := xcontext.WithRequestUserID(ownerCtx, testutil.User3.ID)

	first, err := d.Add(commenterCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "First thread.",
	})
	require.NoError(t, err)

	second, err := d.Add(ownerCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "Second thread.",
	})
	require.NoError(t, err)

	_, err = d.Add(ownerCtx, &model.AddCommentRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
		Text:       "Reply to first.",
		ParentID:   first.Comment.ID,
	})
	require.NoError(t, err)

	got, err := d.GetList(commenterCtx, &model.GetCommentsRequest{
		ProposalID: testutil.Proposal1.ID,
		AnswerID:   testutil.Question1.ID,
	})
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)

	// Roots are in creation order; replies hang under their root.
	require.Equal(t, first.Comment.ID, got.Comments[0].ID)
	require.Equal(t, second.Comment.ID, got.Comments[1].ID)
	require.Len(t, got.Comments[0].Replies, 1)
	require.Equal(t, "Reply to first.", got.Comments[0].Replies[0].Text)
	require.Empty(t, got.Comments[1].Replies)
}
