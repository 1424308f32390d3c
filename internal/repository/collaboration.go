package repository

import (
	"context"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"
)

type CollaborationRepository interface {
	Create(ctx context.Context, collab *entity.Collaboration) error
	Get(ctx context.Context, proposalID, userID string) (*entity.Collaboration, error)
	GetListByProposalID(ctx context.Context, proposalID string, offset, limit int) ([]entity.Collaboration, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.Collaboration, error)
	UpdateRole(ctx context.Context, proposalID, userID string, role entity.CollabRole) error
	Delete(ctx context.Context, proposalID, userID string) error
}

type collaborationRepository struct{}

func NewCollaborationRepository() CollaborationRepository {
	return &collaborationRepository{}
}

func (r *collaborationRepository) Create(ctx context.Context, collab *entity.Collaboration) error {
	return xcontext.DB(ctx).Create(collab).Error
}

func (r *collaborationRepository) Get(
	ctx context.Context, proposalID, userID string,
) (*entity.Collaboration, error) {
	var result entity.Collaboration
	err := xcontext.DB(ctx).
		Take(&result, "proposal_id=? AND user_id=?", proposalID, userID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collaborationRepository) GetListByProposalID(
	ctx context.Context, proposalID string, offset, limit int,
) ([]entity.Collaboration, error) {
	var result []entity.Collaboration
	err := xcontext.DB(ctx).
		Preload("User").
		Where("proposal_id=?", proposalID).
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaborationRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Collaboration, error) {
	var result []entity.Collaboration
	err := xcontext.DB(ctx).
		Preload("Proposal").
		Where("user_id=?", userID).
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaborationRepository) UpdateRole(
	ctx context.Context, proposalID, userID string, role entity.CollabRole,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Collaboration{}).
		Where("proposal_id=? AND user_id=?", proposalID, userID).
		Update("role", role).Error
}

func (r *collaborationRepository) Delete(ctx context.Context, proposalID, userID string) error {
	return xcontext.DB(ctx).
		Where("proposal_id=? AND user_id=?", proposalID, userID).
		Delete(&entity.Collaboration{}).Error
}
