package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rfphub/backend/internal/entity"
	"github.com/rfphub/backend/internal/model"
	"github.com/rfphub/backend/internal/repository"
	"github.com/rfphub/backend/pkg/errorx"
	"github.com/rfphub/backend/pkg/xcontext"
	"github.com/rfphub/backend/pkg/xredis"
)

const unreadCountTTL = time.Hour

func unreadCountKey(userID string) string {
	return fmt.Sprintf("notification:unread:%s", userID)
}

// Notifier appends notifications to a user's inbox. It is shared by the
// comment and suggestion domains; every call site is responsible for
// suppressing self-notification before calling Notify.
type Notifier struct {
	notificationRepo repository.NotificationRepository
	redisClient      xredis.Client
}

func NewNotifier(
	notificationRepo repository.NotificationRepository,
	redisClient xredis.Client,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
	}
}

// Notify is a no-op when the target is empty. A failure is returned to the
// caller, which treats it as non-fatal: the triggering mutation has already
// been committed.
func (n *Notifier) Notify(
	ctx context.Context,
	targetUserID, title, message string,
	notificationType entity.NotificationType,
	link string,
) error {
	if targetUserID == "" {
		return nil
	}

	err := n.notificationRepo.Create(ctx, &entity.Notification{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  targetUserID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Link:    link,
	})
	if err != nil {
		return err
	}

	if n.redisClient != nil {
		if _, err := n.redisClient.IncrBy(ctx, unreadCountKey(targetUserID), 1); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot bump unread counter: %v", err)
		}
	}

	return nil
}

type NotificationDomain interface {
	GetList(context.Context, *model.GetNotificationsRequest) (*model.GetNotificationsResponse, error)
	MarkRead(context.Context, *model.MarkNotificationReadRequest) (*model.MarkNotificationReadResponse, error)
	MarkAllRead(context.Context, *model.MarkAllNotificationsReadRequest) (*model.MarkAllNotificationsReadResponse, error)
	Dismiss(context.Context, *model.DismissNotificationRequest) (*model.DismissNotificationResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
	redisClient      xredis.Client
}

func NewNotificationDomain(
	notificationRepo repository.NotificationRepository,
	redisClient xredis.Client,
) NotificationDomain {
	return &notificationDomain{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
	}
}

func (d *notificationDomain) GetList(
	ctx context.Context, req *model.GetNotificationsRequest,
) (*model.GetNotificationsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}
	if apiCfg.MaxLimit > 0 && req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d", apiCfg.MaxLimit)
	}

	entities, err := d.notificationRepo.GetListByUserID(ctx, userID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
		return nil, errorx.Unknown
	}

	unread, err := d.unreadCount(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count unread notifications: %v", err)
		return nil, errorx.Unknown
	}

	notifications := []model.Notification{}
	for i := range entities {
		notifications = append(notifications, convertNotification(&entities[i]))
	}

	return &model.GetNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// unreadCount serves the counter from redis and falls back to a database
// count on cache miss or when redis is not configured.
func (d *notificationDomain) unreadCount(ctx context.Context, userID string) (int64, error) {
	if d.redisClient != nil {
		n, ok, err := d.redisClient.GetInt(ctx, unreadCountKey(userID))
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get unread counter: %v", err)
		} else if ok {
			return n, nil
		}
	}

	n, err := d.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if d.redisClient != nil {
		if err := d.redisClient.SetInt(ctx, unreadCountKey(userID), n, unreadCountTTL); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot refill unread counter: %v", err)
		}
	}

	return n, nil
}

func (d *notificationDomain) MarkRead(
	ctx context.Context, req *model.MarkNotificationReadRequest,
) (*model.MarkNotificationReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if err := d.notificationRepo.MarkRead(ctx, req.ID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notification as read: %v", err)
		return nil, errorx.Unknown
	}

	d.invalidateUnreadCount(ctx, userID)
	return &model.MarkNotificationReadResponse{}, nil
}

func (d *notificationDomain) MarkAllRead(
	ctx context.Context, req *model.MarkAllNotificationsReadRequest,
) (*model.MarkAllNotificationsReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if err := d.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notifications as read: %v", err)
		return nil, errorx.Unknown
	}

	d.invalidateUnreadCount(ctx, userID)
	return &model.MarkAllNotificationsReadResponse{}, nil
}

func (d *notificationDomain) Dismiss(
	ctx context.Context, req *model.DismissNotificationRequest,
) (*model.DismissNotificationResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if err := d.notificationRepo.Delete(ctx, req.ID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot dismiss notification: %v", err)
		return nil, errorx.Unknown
	}

	d.invalidateUnreadCount(ctx, userID)
	return &model.DismissNotificationResponse{}, nil
}

func (d *notificationDomain) invalidateUnreadCount(ctx context.Context, userID string) {
	if d.redisClient == nil {
		return
	}

	if err := d.redisClient.Del(ctx, unreadCountKey(userID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate unread counter: %v", err)
	}
}
