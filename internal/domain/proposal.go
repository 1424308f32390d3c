package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/rfphub/backend/internal/common"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/enum"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
)

type ProposalDomain interface {
	Create(context.Context, *model.CreateProposalRequest) (*model.CreateProposalResponse, error)
	Get(context.Context, *model.GetProposalRequest) (*model.GetProposalResponse, error)
	Update(context.Context, *model.UpdateProposalRequest) (*model.UpdateProposalResponse, error)
	GetMyList(context.Context, *model.GetMyProposalsRequest) (*model.GetMyProposalsResponse, error)
}

type proposalDomain struct {
	proposalRepo   repository.ProposalRepository
	accessResolver *common.AccessResolver
}

func NewProposalDomain(
	proposalRepo repository.ProposalRepository,
	collaborationRepo repository.CollaborationRepository,
) ProposalDomain {
	return &proposalDomain{
		proposalRepo:   proposalRepo,
		accessResolver: common.NewAccessResolver(proposalRepo, collaborationRepo),
	}
}

func (d *proposalDomain) Create(
	ctx context.Context, req *model.CreateProposalRequest,
) (*model.CreateProposalResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	proposal := &entity.Proposal{
		Base:        entity.Base{ID: uuid.NewString()},
		CreatedBy:   xcontext.RequestUserID(ctx),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.ProposalDraft,
		Content:     []byte(req.Content),
	}

	if err := d.proposalRepo.Create(ctx, proposal); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create proposal: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateProposalResponse{ID: proposal.ID}, nil
}

func (d *proposalDomain) Get(
	ctx context.Context, req *model.GetProposalRequest,
) (*model.GetProposalResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanView {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return &model.GetProposalResponse{
		Proposal:     convertProposal(access.Proposal),
		IsOwner:      access.IsOwner,
		Capabilities: convertCapabilities(access.Capabilities),
	}, nil
}

func (d *proposalDomain) Update(
	ctx context.Context, req *model.UpdateProposalRequest,
) (*model.UpdateProposalResponse, error) {
	access, err := d.accessResolver.Resolve(ctx, req.ProposalID, common.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}

	if !access.Capabilities.CanEdit {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	filter := repository.UpdateProposalFilter{
		Title:       req.Title,
		Description: req.Description,
		Content:     []byte(req.Content),
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.ProposalStatus](req.Status)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid proposal status %s: %v", req.Status, err)
			return nil, errorx.New(errorx.BadRequest, "Invalid status")
		}
		filter.Status = status
	}

	if req.Content == "" {
		filter.Content = nil
	}

	if err := d.proposalRepo.UpdateByID(ctx, req.ProposalID, filter); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update proposal: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProposalResponse{}, nil
}

func (d *proposalDomain) GetMyList(
	ctx context.Context, req *model.GetMyProposalsRequest,
) (*model.GetMyProposalsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}
	if apiCfg.MaxLimit > 0 && req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d", apiCfg.MaxLimit)
	}

	entities, err := d.proposalRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get proposals: %v", err)
		return nil, errorx.Unknown
	}

	proposals := []model.Proposal{}
	for i := range entities {
		proposals = append(proposals, convertProposal(&entities[i]))
	}

	return &model.GetMyProposalsResponse{Proposals: proposals}, nil
}
