package repository

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"
)

type UpdateProposalFilter struct {
	Title       string
	Description string
	Status      entity.ProposalStatus
	Content     []byte
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	GetByID(ctx context.Context, id string) (*entity.Proposal, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.Proposal, error)
	UpdateByID(ctx context.Context, id string, filter UpdateProposalFilter) error
}

type proposalRepository struct{}

func NewProposalRepository() ProposalRepository {
	return &proposalRepository{}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	return xcontext.DB(ctx).Create(proposal).Error
}

func (r *proposalRepository) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	var result entity.Proposal
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *proposalRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Proposal, error) {
	var result []entity.Proposal
	err := xcontext.DB(ctx).
		Where("created_by=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *proposalRepository) UpdateByID(
	ctx context.Context, id string, filter UpdateProposalFilter,
) error {
	updates := map[string]any{}
	if filter.Title != "" {
		updates["title"] = filter.Title
	}
	if filter.Description != "" {
		updates["description"] = filter.Description
	}
	if filter.Status != "" {
		updates["status"] = filter.Status
	}
	if filter.Content != nil {
		updates["content"] = filter.Content
	}

	if len(updates) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Model(&entity.Proposal{}).
		Where("id=?", id).
		Updates(updates).Error
}
