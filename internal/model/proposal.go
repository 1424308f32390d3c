package model

type Proposal struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	CreatedBy   string `json:"created_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Content     string `json:"content"`
}

type CreateProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type CreateProposalResponse struct {
	ID string `json:"id"`
}

type GetProposalRequest struct {
	ProposalID string `json:"proposal_id"`
}

type GetProposalResponse struct {
	Proposal Proposal `json:"proposal"`

	IsOwner      bool         `json:"is_owner"`
	Capabilities Capabilities `json:"capabilities"`
}

type UpdateProposalRequest struct {
	ProposalID  string `json:"proposal_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Content     string `json:"content"`
}

type UpdateProposalResponse struct{}

type GetMyProposalsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyProposalsResponse struct {
	Proposals []Proposal `json:"proposals"`
}
