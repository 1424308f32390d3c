package model

type Answer struct {
	QuestionID string `json:"question_id"`
	ProposalID string `json:"proposal_id"`
	Text       string `json:"text"`
	Status     string `json:"status"`
	Locked     bool   `json:"locked"`
	Version    int    `json:"version"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type SaveAnswerRequest struct {
	ProposalID string `json:"proposal_id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`

	// BaseVersion is the version the edit was based on. Zero skips the
	// optimistic check, for callers that accept last-write-wins.
	BaseVersion int `json:"base_version"`
}

type SaveAnswerResponse struct {
	Answer Answer `json:"answer"`
}

type BulkAnswerItem struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
}

type BulkSaveAnswersRequest struct {
	ProposalID string           `json:"proposal_id"`
	Answers    []BulkAnswerItem `json:"answers"`
}

type BulkSaveAnswersResponse struct {
	Answers []Answer `json:"answers"`
}

type GetAnswersRequest struct {
	ProposalID string `json:"proposal_id"`
}

type GetAnswersResponse struct {
	Answers []Answer `json:"answers"`
}

type ReviewAnswerRequest struct {
	ProposalID string `json:"proposal_id"`
	QuestionID string `json:"question_id"`
	Status     string `json:"status"` // approved or rejected
}

type ReviewAnswerResponse struct {
	Answer Answer `json:"answer"`
}

type SetAnswerLockRequest struct {
	ProposalID string `json:"proposal_id"`
	QuestionID string `json:"question_id"`
	Locked     bool   `json:"locked"`
}

type SetAnswerLockResponse struct {
	Answer Answer `json:"answer"`
}
