package entity

import (
	"context"

	"github.com/rfphub/backend/pkg/xcontext"
)

// MigrateTable creates or updates every table of the data model.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Proposal{},
		&Collaboration{},
		&Question{},
		&Answer{},
		&Comment{},
		&Suggestion{},
		&Notification{},
	)
}
