package testutil

import (
	"testing"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func Test_MockContext(t *testing.T) {
	ctx := MockContext()

	cfg := xcontext.Configs(ctx)
	require.Equal(t, 50, cfg.ApiServer.MaxLimit)
	require.Equal(t, 10, cfg.ApiServer.DefaultLimit)
	require.NotNil(t, xcontext.DB(ctx))
	require.NotNil(t, xcontext.Logger(ctx))
	require.NotNil(t, xcontext.TokenEngine(ctx))

	// Tables must be migrated before fixtures can be seeded.
	CreateFixtureDb(ctx)

	var found entity.User
	err := xcontext.DB(ctx).Take(&found, "id=?", User1.ID).Error
	require.NoError(t, err)
	require.Equal(t, User1.Name, found.Name)
}

func Test_MockContextWithUserRole(t *testing.T) {
	ctx := MockContextWithUserRole(User1.ID, entity.RoleAdmin)

	require.Equal(t, User1.ID, xcontext.RequestUserID(ctx))
	require.Equal(t, string(entity.RoleAdmin), xcontext.RequestUserRole(ctx))
}
