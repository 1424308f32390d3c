package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SuggestionDomain interface {
	Propose(context.Context, *model.ProposeSuggestionRequest) (*model.ProposeSuggestionResponse, error)
	GetList(context.Context, *model.GetSuggestionsRequest) (*model.GetSuggestionsResponse, error)
	Resolve(context.Context, *model.ResolveSuggestionRequest) (*model.ResolveSuggestionResponse, error)
	Apply(context.Context, *model.ApplySuggestionRequest) (*model.ApplySuggestionResponse, error)
}

type suggestionDomain struct {
	suggestionRepo repository.SuggestionRepository
	answerRepo     repository.AnswerRepository
	userRepo       repository.UserRepository
	notifier       *Notifier
	accessResolver *common.AccessResolver
}

func NewSuggestionDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
	answerRepo repository.AnswerRepository,
	suggestionRepo repository.SuggestionRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) SuggestionDomain {
	return &suggestionDomain{
		suggestionRepo: suggestionRepo,
		answerRepo:     answerRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *suggestionDomain) Propose(
	ctx context.Context, req *model.ProposeSuggestionRequest,
) (*model.ProposeSuggestionResponse, error) {
	if req.SuggestedText == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty suggestion")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	// Proposing needs only comment-level access: the whole point of a
	// suggestion is to let non-editors influence the text.
	if !access.Capabilities.CanComment {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	answer, err := d.answerRepo.GetByQuestionID(ctx, req.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found answer")
		}

		xcontext.Logger(ctx).Errorf("Cannot get answer: %v", err)
		return nil, errorx.Unknown
	}

	if answer.ProposalID != req.ProposalID {
		return nil, errorx.New(errorx.BadRequest, "Answer does not belong to this proposal")
	}

	proposerID := xcontext.RequestUserID(ctx)
	proposer, err := d.userRepo.GetByID(ctx, proposerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get proposer: %v", err)
		return nil, errorx.Unknown
	}

	suggestion := &entity.Suggestion{
		Base:          entity.Base{ID: uuid.NewString()},
		ProposalID:    req.ProposalID,
		AnswerID:      req.AnswerID,
		ProposerID:    proposerID,
		ProposerName:  proposer.Name,
		SuggestedText: req.SuggestedText,
		Note:          req.Note,
		Status:        entity.SuggestionPending,
	}

	if err := d.suggestionRepo.Create(ctx, suggestion); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create suggestion: %v", err)
		return nil, errorx.Unknown
	}

	// Owners act on answers directly, so an owner-authored suggestion never
	// notifies anyone.
	if proposerID != access.Proposal.CreatedBy {
		err := d.notifier.Notify(ctx,
			access.Proposal.CreatedBy,
			"New suggestion",
			fmt.Sprintf("%s suggested an edit on an answer of %q", proposer.Name, access.Proposal.Title),
			entity.NotificationSuggestion,
			fmt.Sprintf("/proposals/%s/answers/%s", req.ProposalID, req.AnswerID),
		)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot notify the proposal owner: %v", err)
		}
	}

	return &model.ProposeSuggestionResponse{Suggestion: convertSuggestion(suggestion)}, nil
}

func (d *suggestionDomain) GetList(
	ctx context.Context, req *model.GetSuggestionsRequest,
) (*model.GetSuggestionsResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	entities, err := d.suggestionRepo.GetListByAnswerID(ctx, req.AnswerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get suggestions: %v", err)
		return nil, errorx.Unknown
	}

	suggestions := []model.Suggestion{}
	for i := range entities {
		suggestions = append(suggestions, convertSuggestion(&entities[i]))
	}

	return &model.GetSuggestionsResponse{Suggestions: suggestions}, nil
}

func (d *suggestionDomain) Resolve(
	ctx context.Context, req *model.ResolveSuggestionRequest,
) (*model.ResolveSuggestionResponse, error) {
	if req.Status != string(entity.SuggestionAccepted) && req.Status != string(entity.SuggestionRejected) {
		return nil, errorx.New(errorx.BadRequest, "Invalid resolution status %s", req.Status)
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	// Only the owner adjudicates suggestions, regardless of collaborator
	// role or admin override.
	if !access.IsOwner {
		return nil, errorx.New(errorx.PermissionDenied, "Only the proposal owner can resolve suggestions")
	}

	suggestion, err := d.getSuggestion(ctx, req.ProposalID, req.SuggestionID)
	if err != nil {
		return nil, err
	}

	if suggestion.Status != entity.SuggestionPending {
		return nil, errorx.New(errorx.Unavailable, "Suggestion is already resolved")
	}

	status := entity.SuggestionStatus(req.Status)
	if err := d.suggestionRepo.UpdateStatus(ctx, suggestion.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update suggestion status: %v", err)
		return nil, errorx.Unknown
	}
	suggestion.Status = status

	// The proposer hears about the first resolution only; the resolver
	// never notifies themselves.
	if suggestion.ProposerID != xcontext.RequestUserID(ctx) {
		notificationType := entity.NotificationSuggestionRejected
		if status == entity.SuggestionAccepted {
			notificationType = entity.NotificationSuggestionAccepted
		}

		err := d.notifier.Notify(ctx,
			suggestion.ProposerID,
			"Suggestion "+string(status),
			fmt.Sprintf("Your suggestion on %q was %s", access.Proposal.Title, status),
			notificationType,
			fmt.Sprintf("/proposals/%s/answers/%s", req.ProposalID, suggestion.AnswerID),
		)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot notify the proposer: %v", err)
		}
	}

	return &model.ResolveSuggestionResponse{Suggestion: convertSuggestion(suggestion)}, nil
}

// Apply copies an accepted suggestion's text into the answer. It is a
// separate, auditable action: accepting a suggestion never rewrites the
// answer by itself.
func (d *suggestionDomain) Apply(
	ctx context.Context, req *model.ApplySuggestionRequest,
) (*model.ApplySuggestionResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.IsOwner {
		return nil, errorx.New(errorx.PermissionDenied, "Only the proposal owner can apply suggestions")
	}

	suggestion, err := d.getSuggestion(ctx, req.ProposalID, req.SuggestionID)
	if err != nil {
		return nil, err
	}

	if suggestion.Status != entity.SuggestionAccepted {
		return nil, errorx.New(errorx.Unavailable, "Only accepted suggestions can be applied")
	}

	answer, err := d.answerRepo.GetByQuestionID(ctx, suggestion.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found answer")
		}

		xcontext.Logger(ctx).Errorf("Cannot get answer: %v", err)
		return nil, errorx.Unknown
	}

	if answer.Locked {
		return nil, errorx.New(errorx.Unavailable, "Answer is locked")
	}

	answer.Text = suggestion.SuggestedText
	answer.Version++
	if err := d.answerRepo.Update(ctx, answer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot apply suggestion to answer: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApplySuggestionResponse{Answer: convertAnswer(answer)}, nil
}

func (d *suggestionDomain) getSuggestion(
	ctx context.Context, proposalID, suggestionID string,
) (*entity.Suggestion, error) {
	suggestion, err := d.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found suggestion")
		}

		xcontext.Logger(ctx).Errorf("Cannot get suggestion: %v", err)
		return nil, errorx.Unknown
	}

	if suggestion.ProposalID != proposalID {
		return nil, errorx.New(errorx.BadRequest, "Suggestion does not belong to this proposal")
	}

	return suggestion, nil
}
