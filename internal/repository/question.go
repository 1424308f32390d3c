package repository

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id string) (*entity.Question, error)
	GetListByProposalID(ctx context.Context, proposalID string) ([]entity.Question, error)
	DeleteByID(ctx context.Context, id string) error
}

type questionRepository struct{}

func NewQuestionRepository() QuestionRepository {
	return &questionRepository{}
}

func (r *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	return xcontext.DB(ctx).Create(question).Error
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*entity.Question, error) {
	var result entity.Question
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *questionRepository) GetListByProposalID(
	ctx context.Context, proposalID string,
) ([]entity.Question, error) {
	var result []entity.Question
	err := xcontext.DB(ctx).
		Where("proposal_id=?", proposalID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questionRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Question{}, "id=?", id).Error
}
