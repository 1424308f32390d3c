package repository

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	GetByQuestionID(ctx context.Context, questionID string) (*entity.Answer, error)
	GetListByProposalID(ctx context.Context, proposalID string) ([]entity.Answer, error)
	Update(ctx context.Context, answer *entity.Answer) error
	DeleteByQuestionID(ctx context.Context, questionID string) error
}

type answerRepository struct{}

func NewAnswerRepository() AnswerRepository {
	return &answerRepository{}
}

func (r *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	return xcontext.DB(ctx).Create(answer).Error
}

func (r *answerRepository) GetByQuestionID(
	ctx context.Context, questionID string,
) (*entity.Answer, error) {
	var result entity.Answer
	if err := xcontext.DB(ctx).Take(&result, "question_id=?", questionID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *answerRepository) GetListByProposalID(
	ctx context.Context, proposalID string,
) ([]entity.Answer, error) {
	var result []entity.Answer
	err := xcontext.DB(ctx).
		Where("proposal_id=?", proposalID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *entity.Answer) error {
	return xcontext.DB(ctx).
		Model(&entity.Answer{}).
		Where("question_id=?", answer.QuestionID).
		Updates(map[string]any{
			"text":    answer.Text,
			"status":  answer.Status,
			"locked":  answer.Locked,
			"version": answer.Version,
		}).Error
}

func (r *answerRepository) DeleteByQuestionID(ctx context.Context, questionID string) error {
	return xcontext.DB(ctx).Delete(&entity.Answer{}, "question_id=?", questionID).Error
}
