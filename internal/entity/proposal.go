package entity

import "github.com/rfphub/backend/pkg/enum"

type ProposalStatus string

var (
	ProposalDraft      = enum.New(ProposalStatus("draft"))
	ProposalInProgress = enum.New(ProposalStatus("in_progress"))
	ProposalCompleted  = enum.New(ProposalStatus("completed"))
)

type Proposal struct {
	Base
	CreatedBy   string `gorm:"not null"` // owning user id
	Owner       User   `gorm:"foreignKey:CreatedBy"`
	Title       string
	Description string
	Status      ProposalStatus
	Content     []byte `gorm:"type:longtext"`
}

func (p *Proposal) TableName() string {
	return "proposals"
}
