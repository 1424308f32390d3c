package entity

import "github.com/rfphub/backend/pkg/enum"

type QuestionSource string

var (
	QuestionFromUser     = enum.New(QuestionSource("user"))
	QuestionFromAI       = enum.New(QuestionSource("ai"))
	QuestionFromTemplate = enum.New(QuestionSource("template"))
)

type Question struct {
	Base
	ProposalID string   `gorm:"not null;index"`
	Proposal   Proposal `gorm:"foreignKey:ProposalID"`
	Text       string
	Position   int // display order within the proposal
	Source     QuestionSource
}

func (q *Question) TableName() string {
	return "questions"
}
