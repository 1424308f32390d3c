package model

type Capabilities struct {
	CanView       bool `json:"can_view"`
	CanEdit       bool `json:"can_edit"`
	CanComment    bool `json:"can_comment"`
	CanReview     bool `json:"can_review"`
	CanGenerateAI bool `json:"can_generate_ai"`
}

type Collaboration struct {
	ProposalID   string       `json:"proposal_id"`
	Proposal     Proposal     `json:"proposal,omitempty"`
	UserID       string       `json:"user_id"`
	User         User         `json:"user,omitempty"`
	Role         string       `json:"role"`
	CreatedBy    string       `json:"created_by"`
	Capabilities Capabilities `json:"capabilities"`
}

type CreateCollaborationRequest struct {
	ProposalID string `json:"proposal_id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
}

type CreateCollaborationResponse struct {
	Collaboration Collaboration `json:"collaboration"`
}

type GetCollaborationsRequest struct {
	ProposalID string `json:"proposal_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetCollaborationsResponse struct {
	Collaborations []Collaboration `json:"collaborations"`
}

type GetMyCollaborationsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyCollaborationsResponse struct {
	Collaborations []Collaboration `json:"collaborations"`
}

type UpdateCollaborationRoleRequest struct {
	ProposalID string `json:"proposal_id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
}

type UpdateCollaborationRoleResponse struct{}

type DeleteCollaborationRequest struct {
	ProposalID string `json:"proposal_id"`
	UserID     string `json:"user_id"`
}

type DeleteCollaborationResponse struct{}
