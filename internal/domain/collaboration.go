package domain

import (
	"context"
	"errors"

	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/enum"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CollaborationDomain interface {
	Create(context.Context, *model.CreateCollaborationRequest) (*model.CreateCollaborationResponse, error)
	GetList(context.Context, *model.GetCollaborationsRequest) (*model.GetCollaborationsResponse, error)
	GetMyList(context.Context, *model.GetMyCollaborationsRequest) (*model.GetMyCollaborationsResponse, error)
	UpdateRole(context.Context, *model.UpdateCollaborationRoleRequest) (*model.UpdateCollaborationRoleResponse, error)
	Delete(context.Context, *model.DeleteCollaborationRequest) (*model.DeleteCollaborationResponse, error)
}

type collaborationDomain struct {
	collaborationRepo repository.CollaborationRepository
	userRepo          repository.UserRepository
	accessResolver    *common.AccessResolver
}

func NewCollaborationDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
) CollaborationDomain {
	return &collaborationDomain{
		collaborationRepo: collaborationRepo,
		userRepo:          userRepo,
		accessResolver:    common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *collaborationDomain) Create(
	ctx context.Context, req *model.CreateCollaborationRequest,
) (*model.CreateCollaborationResponse, error) {
	role, err := enum.ToEnum[entity.CollabRole](req.Role)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid role %s: %v", req.Role, err)
		return nil, errorx.New(errorx.BadRequest, "Invalid role")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	// Only the owner or an admin manages the collaborator list.
	if !access.IsOwner && !access.IsAdmin {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.UserID == access.Proposal.CreatedBy {
		return nil, errorx.New(errorx.BadRequest, "Cannot invite the owner as a collaborator")
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	_, err = d.collaborationRepo.Get(ctx, req.ProposalID, req.UserID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "User is already a collaborator")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get collaboration: %v", err)
		return nil, errorx.Unknown
	}

	collab := &entity.Collaboration{
		ProposalID: req.ProposalID,
		UserID:     req.UserID,
		Role:       role,
		CreatedBy:  xcontext.RequestUserID(ctx),
	}

	if err := d.collaborationRepo.Create(ctx, collab); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create collaboration: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCollaborationResponse{
		Collaboration: model.Collaboration{
			ProposalID:   collab.ProposalID,
			UserID:       collab.UserID,
			User:         convertUser(user),
			Role:         string(collab.Role),
			CreatedBy:    collab.CreatedBy,
			Capabilities: convertCapabilities(common.PermissionsFor(collab.Role)),
		},
	}, nil
}

func (d *collaborationDomain) GetList(
	ctx context.Context, req *model.GetCollaborationsRequest,
) (*model.GetCollaborationsResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}
	if apiCfg.MaxLimit > 0 && req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d", apiCfg.MaxLimit)
	}

	entities, err := d.collaborationRepo.GetListByProposalID(
		ctx, req.ProposalID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaborations: %v", err)
		return nil, errorx.Unknown
	}

	collaborations := []model.Collaboration{}
	for i := range entities {
		e := entities[i]
		collaborations = append(collaborations, model.Collaboration{
			ProposalID:   e.ProposalID,
			UserID:       e.UserID,
			User:         convertUser(&e.User),
			Role:         string(e.Role),
			CreatedBy:    e.CreatedBy,
			Capabilities: convertCapabilities(common.PermissionsFor(e.Role)),
		})
	}

	return &model.GetCollaborationsResponse{Collaborations: collaborations}, nil
}

func (d *collaborationDomain) GetMyList(
	ctx context.Context, req *model.GetMyCollaborationsRequest,
) (*model.GetMyCollaborationsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}
	if apiCfg.MaxLimit > 0 && req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d", apiCfg.MaxLimit)
	}

	userID := xcontext.RequestUserID(ctx)
	entities, err := d.collaborationRepo.GetListByUserID(ctx, userID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaborations: %v", err)
		return nil, errorx.Unknown
	}

	collaborations := []model.Collaboration{}
	for i := range entities {
		e := entities[i]
		collaborations = append(collaborations, model.Collaboration{
			ProposalID:   e.ProposalID,
			Proposal:     convertProposal(&e.Proposal),
			UserID:       userID,
			Role:         string(e.Role),
			CreatedBy:    e.CreatedBy,
			Capabilities: convertCapabilities(common.PermissionsFor(e.Role)),
		})
	}

	return &model.GetMyCollaborationsResponse{Collaborations: collaborations}, nil
}

func (d *collaborationDomain) UpdateRole(
	ctx context.Context, req *model.UpdateCollaborationRoleRequest,
) (*model.UpdateCollaborationRoleResponse, error) {
	role, err := enum.ToEnum[entity.CollabRole](req.Role)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid role %s: %v", req.Role, err)
		return nil, errorx.New(errorx.BadRequest, "Invalid role")
	}

	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.IsOwner && !access.IsAdmin {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.collaborationRepo.Get(ctx, req.ProposalID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found collaboration")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaboration: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.collaborationRepo.UpdateRole(ctx, req.ProposalID, req.UserID, role); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update collaboration role: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCollaborationRoleResponse{}, nil
}

func (d *collaborationDomain) Delete(
	ctx context.Context, req *model.DeleteCollaborationRequest,
) (*model.DeleteCollaborationResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.IsOwner && !access.IsAdmin {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.collaborationRepo.Get(ctx, req.ProposalID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found collaboration")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaboration: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.collaborationRepo.Delete(ctx, req.ProposalID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete collaboration: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCollaborationResponse{}, nil
}
