package repository

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"
)

type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) error
	GetByID(ctx context.Context, id string) (*entity.Suggestion, error)
	GetListByAnswerID(ctx context.Context, answerID string) ([]entity.Suggestion, error)
	UpdateStatus(ctx context.Context, id string, status entity.SuggestionStatus) error
}

type suggestionRepository struct{}

func NewSuggestionRepository() SuggestionRepository {
	return &suggestionRepository{}
}

func (r *suggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	return xcontext.DB(ctx).Create(suggestion).Error
}

func (r *suggestionRepository) GetByID(ctx context.Context, id string) (*entity.Suggestion, error) {
	var result entity.Suggestion
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *suggestionRepository) GetListByAnswerID(
	ctx context.Context, answerID string,
) ([]entity.Suggestion, error) {
	var result []entity.Suggestion
	err := xcontext.DB(ctx).
		Where("answer_id=?", answerID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *suggestionRepository) UpdateStatus(
	ctx context.Context, id string, status entity.SuggestionStatus,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Suggestion{}).
		Where("id=?", id).
		Update("status", status).Error
}
