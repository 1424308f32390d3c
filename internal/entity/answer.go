package entity

import (
	"time"

	"github.com/rfphub/backend/pkg/enum"
	"gorm.io/gorm"
)

type AnswerStatus string

var (
	// AnswerDraft is never stored; a question with no answer row is in
	// draft. It exists so list responses can report a uniform status.
	AnswerDraft = enum.New(AnswerStatus("draft"))

	AnswerSubmitted = enum.New(AnswerStatus("submitted"))
	AnswerApproved  = enum.New(AnswerStatus("approved"))
	AnswerRejected  = enum.New(AnswerStatus("rejected"))
)

// Answer is keyed by its question: one answer per question at most.
type Answer struct {
	QuestionID string   `gorm:"primaryKey"`
	Question   Question `gorm:"foreignKey:QuestionID"`
	ProposalID string   `gorm:"not null;index"`
	Text       string   `gorm:"type:longtext"`
	Status     AnswerStatus

	// Locked freezes edits and review transitions until unlocked. It is a
	// modifier on top of the status, not a status of its own.
	Locked bool

	// Version is the optimistic concurrency token; edits carrying a stale
	// base version are rejected.
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (a *Answer) TableName() string {
	return "answers"
}
