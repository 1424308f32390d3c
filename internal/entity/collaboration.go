package entity

import "github.com/rfphub/backend/pkg/enum"

type CollabRole string

var (
	CollabViewer      = enum.New(CollabRole("viewer"))
	CollabCommenter   = enum.New(CollabRole("commenter"))
	CollabEditor      = enum.New(CollabRole("editor"))
	CollabReviewer    = enum.New(CollabRole("reviewer"))
	CollabContributor = enum.New(CollabRole("contributor"))
)

// Collaboration grants one user one role on one proposal. The composite
// primary key keeps at most one row per (proposal, user) pair.
type Collaboration struct {
	ProposalID string   `gorm:"primaryKey"`
	Proposal   Proposal `gorm:"foreignKey:ProposalID"`
	UserID     string   `gorm:"primaryKey"`
	User       User     `gorm:"foreignKey:UserID"`
	Role       CollabRole
	CreatedBy  string
}

func (c *Collaboration) TableName() string {
	return "collaborations"
}
