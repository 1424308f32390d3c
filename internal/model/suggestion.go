package model

type Suggestion struct {
	ID            string `json:"id"`
	ProposalID    string `json:"proposal_id"`
	AnswerID      string `json:"answer_id"`
	ProposerID    string `json:"proposer_id"`
	ProposerName  string `json:"proposer_name"`
	SuggestedText string `json:"suggested_text"`
	Note          string `json:"note,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type ProposeSuggestionRequest struct {
	ProposalID    string `json:"proposal_id"`
	AnswerID      string `json:"answer_id"`
	SuggestedText string `json:"suggested_text"`
	Note          string `json:"note"`
}

type ProposeSuggestionResponse struct {
	Suggestion Suggestion `json:"suggestion"`
}

type GetSuggestionsRequest struct {
	ProposalID string `json:"proposal_id"`
	AnswerID   string `json:"answer_id"`
}

type GetSuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type ResolveSuggestionRequest struct {
	ProposalID   string `json:"proposal_id"`
	SuggestionID string `json:"suggestion_id"`
	Status       string `json:"status"` // accepted or rejected
}

type ResolveSuggestionResponse struct {
	Suggestion Suggestion `json:"suggestion"`
}

type ApplySuggestionRequest struct {
	ProposalID   string `json:"proposal_id"`
	SuggestionID string `json:"suggestion_id"`
}

type ApplySuggestionResponse struct {
	Answer Answer `json:"answer"`
}
