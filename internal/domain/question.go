package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/enum"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestionDomain interface {
	Create(context.Context, *model.CreateQuestionRequest) (*model.CreateQuestionResponse, error)
	GetList(context.Context, *model.GetQuestionsRequest) (*model.GetQuestionsResponse, error)
	Delete(context.Context, *model.DeleteQuestionRequest) (*model.DeleteQuestionResponse, error)
}

type questionDomain struct {
	questionRepo   repository.QuestionRepository
	answerRepo     repository.AnswerRepository
	accessResolver *common.AccessResolver
}

func NewQuestionDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) QuestionDomain {
	return &questionDomain{
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *questionDomain) Create(
	ctx context.Context, req *model.CreateQuestionRequest,
) (*model.CreateQuestionResponse, error) {
	if req.Text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty question text")
	}

	source := entity.QuestionFromUser
	if req.Source != "" {
		var err error
		source, err = enum.ToEnum[entity.QuestionSource](req.Source)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid question source %s: %v", req.Source, err)
			return nil, errorx.New(errorx.BadRequest, "Invalid source")
		}
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanEdit {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	question := &entity.Question{
		Base:       entity.Base{ID: uuid.NewString()},
		ProposalID: req.ProposalID,
		Text:       req.Text,
		Position:   req.Position,
		Source:     source,
	}

	if err := d.questionRepo.Create(ctx, question); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create question: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateQuestionResponse{ID: question.ID}, nil
}

func (d *questionDomain) GetList(
	ctx context.Context, req *model.GetQuestionsRequest,
) (*model.GetQuestionsResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	entities, err := d.questionRepo.GetListByProposalID(ctx, req.ProposalID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get questions: %v", err)
		return nil, errorx.Unknown
	}

	questions := []model.Question{}
	for i := range entities {
		questions = append(questions, convertQuestion(&entities[i]))
	}

	return &model.GetQuestionsResponse{Questions: questions}, nil
}

func (d *questionDomain) Delete(
	ctx context.Context, req *model.DeleteQuestionRequest,
) (*model.DeleteQuestionResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanEdit {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	question, err := d.questionRepo.GetByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found question")
		}

		xcontext.Logger(ctx).Errorf("Cannot get question: %v", err)
		return nil, errorx.Unknown
	}

	if question.ProposalID != req.ProposalID {
		return nil, errorx.New(errorx.BadRequest, "Question does not belong to this proposal")
	}

	// Deleting a question cascades to its answer.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.questionRepo.DeleteByID(ctx, req.QuestionID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete question: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.answerRepo.DeleteByQuestionID(ctx, req.QuestionID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete answer of question: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteQuestionResponse{}, nil
}
