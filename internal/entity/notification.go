package entity

import "github.com/rfphub/backend/pkg/enum"

type NotificationType string

var (
	NotificationComment            = enum.New(NotificationType("comment"))
	NotificationSuggestion         = enum.New(NotificationType("suggestion"))
	NotificationSuggestionAccepted = enum.New(NotificationType("suggestion_accepted"))
	NotificationSuggestionRejected = enum.New(NotificationType("suggestion_rejected"))
)

type Notification struct {
	Base
	UserID  string `gorm:"not null;index"` // recipient
	User    User   `gorm:"foreignKey:UserID"`
	Title   string
	Message string
	Type    NotificationType
	Link    string
	IsRead  bool
}

func (n *Notification) TableName() string {
	return "notifications"
}
