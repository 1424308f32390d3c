package entity

import "database/sql"

// Comment is append-only. A null ParentID marks a root comment; a non-null
// ParentID marks a reply, and replies are exactly one level deep.
type Comment struct {
	Base
	ProposalID string `gorm:"not null;index"`
	AnswerID   string `gorm:"not null;index"`
	AuthorID   string
	Author     User `gorm:"foreignKey:AuthorID"`
	AuthorName string
	Text       string
	ParentID   sql.NullString `gorm:"index"`
}

func (c *Comment) TableName() string {
	return "comments"
}
