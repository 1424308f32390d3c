package model

type Question struct {
	ID         string `json:"id"`
	ProposalID string `json:"proposal_id"`
	Text       string `json:"text"`
	Position   int    `json:"position"`
	Source     string `json:"source"`
}

type CreateQuestionRequest struct {
	ProposalID string `json:"proposal_id"`
	Text       string `json:"text"`
	Position   int    `json:"position"`
	Source     string `json:"source"`
}

type CreateQuestionResponse struct {
	ID string `json:"id"`
}

type GetQuestionsRequest struct {
	ProposalID string `json:"proposal_id"`
}

type GetQuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type DeleteQuestionRequest struct {
	ProposalID string `json:"proposal_id"`
	QuestionID string `json:"question_id"`
}

type DeleteQuestionResponse struct{}
