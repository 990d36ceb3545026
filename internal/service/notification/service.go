package notification

import (
	"context"
	"strconv"
	"time"

	"github.com/velora-app/velora-server/internal/app"
	"github.com/velora-app/velora-server/internal/db"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	pb "github.com/velora-app/velora-server/internal/proto/notification"
	"github.com/velora-app/velora-server/internal/repository"
)

const defaultFeedSize = 50
const maxFeedSize = 200

// Service implements the Notification gRPC API: the read side of the
// append-only fan-out. Rows are written by the interaction and chat
// flows; this surface only lists, groups and flips read flags.
type Service struct {
	appCtx        *app.AppContext
	notifications *repository.NotificationRepository

	pb.UnimplementedNotificationServiceServer
}

// NewNotificationService creates the service with dependencies from
// AppContext.
func NewNotificationService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:        appCtx,
		notifications: repository.NewNotificationRepository(appCtx.DB),
	}
}

// ListNotifications returns the user's feed in default order (unread
// first, then priority, then recency), optionally grouped by type,
// priority or day bucket. Grouping never mutates storage.
func (s *Service) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	s.appCtx.Logger.Debug("ListNotifications called", "user", req.GetUserId(), "group_by", req.GetGroupBy())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultFeedSize
	}
	if limit > maxFeedSize {
		limit = maxFeedSize
	}

	rows, err := s.notifications.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListNotificationsResponse{}
	if req.GetGroupBy() == pb.GroupBy_GROUP_BY_NONE {
		for _, n := range rows {
			resp.Notifications = append(resp.Notifications, toProto(n))
		}
		return resp, nil
	}

	for _, g := range groupFeed(rows, req.GetGroupBy(), time.Now()) {
		pg := &pb.NotificationGroup{Key: g.key}
		for _, n := range g.rows {
			pg.Notifications = append(pg.Notifications, toProto(n))
		}
		resp.Groups = append(resp.Groups, pg)
	}
	return resp, nil
}

// MarkNotificationRead flips one notification's read flag. A repeat
// call reports updated=false.
func (s *Service) MarkNotificationRead(ctx context.Context, req *pb.MarkNotificationReadRequest) (*pb.MarkNotificationReadResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	if req.GetNotificationId() == 0 {
		return nil, svcErr.InvalidArgument("notification_id must be set")
	}

	updated, err := s.notifications.MarkRead(ctx, req.GetNotificationId(), userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if updated {
		_ = s.appCtx.RedisCache.InvalidateUnreadNotificationCount(ctx, userID)
	}
	return &pb.MarkNotificationReadResponse{Updated: updated}, nil
}

// CountUnread returns the user's unread notification count.
// Cache-first strategy:
//  1. Attempts to read from Redis (notifications:unread:userID).
//  2. On cache miss, falls back to the DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountUnread(ctx context.Context, req *pb.CountUnreadRequest) (*pb.CountUnreadResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	if n, ok, _ := s.appCtx.RedisCache.GetUnreadNotificationCount(ctx, userID); ok {
		return &pb.CountUnreadResponse{Count: n}, nil
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.SetUnreadNotificationCount(ctx, userID, count)

	return &pb.CountUnreadResponse{Count: count}, nil
}

func toProto(n db.Notification) *pb.Notification {
	return &pb.Notification{
		Id:            n.ID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		Priority:      n.Priority,
		IsRead:        n.IsRead,
		Metadata:      n.Metadata,
		UnixTimestamp: uint64(n.CreatedAt.UnixMilli()),
	}
}
