package domain

import (
	"context"
	"errors"

	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AnswerDomain interface {
	Save(context.Context, *model.SaveAnswerRequest) (*model.SaveAnswerResponse, error)
	BulkSave(context.Context, *model.BulkSaveAnswersRequest) (*model.BulkSaveAnswersResponse, error)
	GetList(context.Context, *model.GetAnswersRequest) (*model.GetAnswersResponse, error)
	Review(context.Context, *model.ReviewAnswerRequest) (*model.ReviewAnswerResponse, error)
	SetLock(context.Context, *model.SetAnswerLockRequest) (*model.SetAnswerLockResponse, error)
}

type answerDomain struct {
	questionRepo   repository.QuestionRepository
	answerRepo     repository.AnswerRepository
	accessResolver *common.AccessResolver
}

func NewAnswerDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) AnswerDomain {
	return &answerDomain{
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *answerDomain) Save(
	ctx context.Context, req *model.SaveAnswerRequest,
) (*model.SaveAnswerResponse, error) {
	if req.Text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty answer text")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanEdit {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	answer, err := d.saveOne(ctx, req.ProposalID, req.QuestionID, req.Text, req.BaseVersion)
	if err != nil {
		return nil, err
	}

	return &model.SaveAnswerResponse{Answer: convertAnswer(answer)}, nil
}

func (d *answerDomain) BulkSave(
	ctx context.Context, req *model.BulkSaveAnswersRequest,
) (*model.BulkSaveAnswersResponse, error) {
	if len(req.Answers) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty answer list")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanEdit {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	answers := []model.Answer{}
	for _, item := range req.Answers {
		if item.Text == "" {
			return nil, errorx.New(errorx.BadRequest, "Not allow an empty answer text")
		}

		// Bulk saves are last-write-wins; the optimistic token applies to
		// single saves only.
		answer, err := d.saveOne(ctx, req.ProposalID, item.QuestionID, item.Text, 0)
		if err != nil {
			return nil, err
		}

		answers = append(answers, convertAnswer(answer))
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.BulkSaveAnswersResponse{Answers: answers}, nil
}

// saveOne upserts the answer of one question. Authorization has already been
// checked by the caller.
func (d *answerDomain) saveOne(
	ctx context.Context, proposalID, questionID, text string, baseVersion int,
) (*entity.Answer, error) {
	question, err := d.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Invalid question id")
		}

		xcontext.Logger(ctx).Errorf("Cannot get question: %v", err)
		return nil, errorx.Unknown
	}

	if question.ProposalID != proposalID {
		return nil, errorx.New(errorx.BadRequest, "Question does not belong to this proposal")
	}

	answer, err := d.answerRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get answer: %v", err)
			return nil, errorx.Unknown
		}

		// First save creates the row; the answer leaves draft and enters
		// review as submitted.
		answer = &entity.Answer{
			QuestionID: questionID,
			ProposalID: proposalID,
			Text:       text,
			Status:     entity.AnswerSubmitted,
			Version:    1,
		}

		if err := d.answerRepo.Create(ctx, answer); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create answer: %v", err)
			return nil, errorx.Unknown
		}

		return answer, nil
	}

	if answer.Locked {
		return nil, errorx.New(errorx.Unavailable, "Answer is locked")
	}

	if baseVersion != 0 && baseVersion != answer.Version {
		return nil, errorx.New(errorx.Conflict,
			"Answer was modified by someone else, please refresh and retry")
	}

	answer.Text = text
	answer.Version++
	if err := d.answerRepo.Update(ctx, answer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update answer: %v", err)
		return nil, errorx.Unknown
	}

	return answer, nil
}

func (d *answerDomain) GetList(
	ctx context.Context, req *model.GetAnswersRequest,
) (*model.GetAnswersResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	questions, err := d.questionRepo.GetListByProposalID(ctx, req.ProposalID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get questions: %v", err)
		return nil, errorx.Unknown
	}

	entities, err := d.answerRepo.GetListByProposalID(ctx, req.ProposalID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get answers: %v", err)
		return nil, errorx.Unknown
	}

	byQuestion := map[string]*entity.Answer{}
	for i := range entities {
		byQuestion[entities[i].QuestionID] = &entities[i]
	}

	// Questions with no answer row appear as virtual drafts.
	answers := []model.Answer{}
	for _, question := range questions {
		if answer, ok := byQuestion[question.ID]; ok {
			answers = append(answers, convertAnswer(answer))
		} else {
			answers = append(answers, model.Answer{
				QuestionID: question.ID,
				ProposalID: req.ProposalID,
				Status:     string(entity.AnswerDraft),
			})
		}
	}

	return &model.GetAnswersResponse{Answers: answers}, nil
}

func (d *answerDomain) Review(
	ctx context.Context, req *model.ReviewAnswerRequest,
) (*model.ReviewAnswerResponse, error) {
	if req.Status != string(entity.AnswerApproved) && req.Status != string(entity.AnswerRejected) {
		return nil, errorx.New(errorx.BadRequest, "Invalid review status %s", req.Status)
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanReview {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	answer, err := d.getExistingAnswer(ctx, req.ProposalID, req.QuestionID)
	if err != nil {
		return nil, err
	}

	if answer.Locked {
		return nil, errorx.New(errorx.Unavailable, "Answer is locked")
	}

	answer.Status = entity.AnswerStatus(req.Status)
	if err := d.answerRepo.Update(ctx, answer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update answer status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReviewAnswerResponse{Answer: convertAnswer(answer)}, nil
}

func (d *answerDomain) SetLock(
	ctx context.Context, req *model.SetAnswerLockRequest,
) (*model.SetAnswerLockResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanReview {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	answer, err := d.getExistingAnswer(ctx, req.ProposalID, req.QuestionID)
	if err != nil {
		return nil, err
	}

	answer.Locked = req.Locked
	if err := d.answerRepo.Update(ctx, answer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update answer lock: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetAnswerLockResponse{Answer: convertAnswer(answer)}, nil
}

// getExistingAnswer loads the answer row for a review action. Reviewing an
// answer that has never been saved is an invalid state, not a not-found: the
// question exists, its answer simply has not been submitted.
func (d *answerDomain) getExistingAnswer(
	ctx context.Context, proposalID, questionID string,
) (*entity.Answer, error) {
	answer, err := d.answerRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "Answer has not been submitted yet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get answer: %v", err)
		return nil, errorx.Unknown
	}

	if answer.ProposalID != proposalID {
		return nil, errorx.New(errorx.BadRequest, "Answer does not belong to this proposal")
	}

	return answer, nil
}
