package domain

import (
	"testing"

	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_notificationDomain(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	redisClient := testutil.NewMockRedisClient()
	notificationRepo := repository.NewNotificationRepository()
	notifier := NewNotifier(notificationRepo, redisClient)
	d := NewNotificationDomain(notificationRepo, redisClient)

	for i := 0; i < 3; i++ {
		err := notifier.Notify(ctx, testutil.User2.ID,
			"New comment", "Someone commented", entity.NotificationComment, "/proposals/p1")
		require.NoError(t, err)
	}

	got, err := d.GetList(ctx, &model.GetNotificationsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got.Notifications, 3)
	require.EqualValues(t, 3, got.UnreadCount)

	// Marking one read drops the cached counter; the recount comes from the
	// database.
	_, err = d.MarkRead(ctx, &model.MarkNotificationReadRequest{ID: got.Notifications[0].ID})
	require.NoError(t, err)

	got, err = d.GetList(ctx, &model.GetNotificationsRequest{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, got.UnreadCount)

	_, err = d.MarkAllRead(ctx, &model.MarkAllNotificationsReadRequest{})
	require.NoError(t, err)

	got, err = d.GetList(ctx, &model.GetNotificationsRequest{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 0, got.UnreadCount)

	_, err = d.Dismiss(ctx, &model.DismissNotificationRequest{ID: got.Notifications[0].ID})
	require.NoError(t, err)

	got, err = d.GetList(ctx, &model.GetNotificationsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got.Notifications, 2)
}

func Test_notifier_emptyTarget(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	notificationRepo := repository.NewNotificationRepository()
	notifier := NewNotifier(notificationRepo, testutil.NewMockRedisClient())

	err := notifier.Notify(ctx, "", "Title", "Message", entity.NotificationComment, "")
	require.NoError(t, err)

	count, err := notificationRepo.CountUnread(ctx, "")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
