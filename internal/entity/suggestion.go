package entity

import "github.com/rfphub/backend/pkg/enum"

type SuggestionStatus string

var (
	SuggestionPending  = enum.New(SuggestionStatus("pending"))
	SuggestionAccepted = enum.New(SuggestionStatus("accepted"))
	SuggestionRejected = enum.New(SuggestionStatus("rejected"))
)

// Suggestion is a proposed replacement for an answer's text, submitted by a
// non-owner and adjudicated by the proposal owner. Once resolved it is
// terminal; re-submitting means creating a new record.
type Suggestion struct {
	Base
	ProposalID    string `gorm:"not null;index"`
	AnswerID      string `gorm:"not null;index"`
	ProposerID    string
	Proposer      User `gorm:"foreignKey:ProposerID"`
	ProposerName  string
	SuggestedText string `gorm:"type:longtext"`
	Note          string
	Status        SuggestionStatus
}

func (s *Suggestion) TableName() string {
	return "suggestions"
}
