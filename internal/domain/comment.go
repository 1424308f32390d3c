package domain

import (
	"context"
	"database/sql"
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

type CommentDomain interface {
	Add(context.Context, *model.AddCommentRequest) (*model.AddCommentResponse, error)
	GetList(context.Context, *model.GetCommentsRequest) (*model.GetCommentsResponse, error)
}

type commentDomain struct {
	commentRepo    repository.CommentRepository
	answerRepo     repository.AnswerRepository
	userRepo       repository.UserRepository
	notifier       *Notifier
	accessResolver *common.AccessResolver
}

func NewCommentDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
	answerRepo repository.AnswerRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) CommentDomain {
	return &commentDomain{
		commentRepo:    commentRepo,
		answerRepo:     answerRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *commentDomain) Add(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	if req.Text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty comment")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

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

	parentID := sql.NullString{}
	if req.ParentID != "" {
		parent, err := d.commentRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found parent comment")
			}

			xcontext.Logger(ctx).Errorf("Cannot get parent comment: %v", err)
			return nil, errorx.Unknown
		}

		if parent.AnswerID != req.AnswerID {
			return nil, errorx.New(errorx.BadRequest, "Parent comment belongs to another answer")
		}

		// Threads are exactly one level deep.
		if parent.ParentID.Valid {
			return nil, errorx.New(errorx.BadRequest, "Cannot reply to a reply")
		}

		parentID = sql.NullString{String: req.ParentID, Valid: true}
	}

	authorID := xcontext.RequestUserID(ctx)
	author, err := d.userRepo.GetByID(ctx, authorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment author: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:       entity.Base{ID: uuid.NewString()},
		ProposalID: req.ProposalID,
		AnswerID:   req.AnswerID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       req.Text,
		ParentID:   parentID,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	// The owner is told about every comment except their own.
	if authorID != access.Proposal.CreatedBy {
		err := d.notifier.Notify(ctx,
			access.Proposal.CreatedBy,
			"New comment",
			fmt.Sprintf("%s commented on an answer of %q", author.Name, access.Proposal.Title),
			entity.NotificationComment,
			fmt.Sprintf("/proposals/%s/answers/%s", req.ProposalID, req.AnswerID),
		)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot notify the proposal owner: %v", err)
		}
	}

	return &model.AddCommentResponse{Comment: convertComment(comment)}, nil
}

func (d *commentDomain) GetList(
	ctx context.Context, req *model.GetCommentsRequest,
) (*model.GetCommentsResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	entities, err := d.commentRepo.GetListByAnswerID(ctx, req.AnswerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	// The repository returns comments ascending by creation time, so roots
	// and each reply list come out already ordered.
	roots := []model.Comment{}
	rootIndex := map[string]int{}
	var replies []entity.Comment

	for i := range entities {
		e := &entities[i]
		if e.ParentID.Valid {
			replies = append(replies, *e)
			continue
		}

		rootIndex[e.ID] = len(roots)
		roots = append(roots, convertComment(e))
	}

	for i := range replies {
		e := &replies[i]
		if idx, ok := rootIndex[e.ParentID.String]; ok {
			roots[idx].Replies = append(roots[idx].Replies, convertComment(e))
		}
	}

	return &model.GetCommentsResponse{Comments: roots}, nil
}
