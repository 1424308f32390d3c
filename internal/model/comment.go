package model

type Comment struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposal_id"`
	AnswerID   string    `json:"answer_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	ParentID   string    `json:"parent_id,omitempty"`
	CreatedAt  string    `json:"created_at"`
	Replies    []Comment `json:"replies,omitempty"`
}

type AddCommentRequest struct {
	ProposalID string `json:"proposal_id"`
	AnswerID   string `json:"answer_id"`
	Text       string `json:"text"`
	ParentID   string `json:"parent_id"`
}

type AddCommentResponse struct {
	Comment Comment `json:"comment"`
}

type GetCommentsRequest struct {
	ProposalID string `json:"proposal_id"`
	AnswerID   string `json:"answer_id"`
}

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}
