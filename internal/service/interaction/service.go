package interaction

import (
	"context"
	"database/sql"
	"strconv"

	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/app"
	"github.com/velora-app/velora-server/internal/db"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	"github.com/velora-app/velora-server/internal/notify"
	pb "github.com/velora-app/velora-server/internal/proto/interaction"
	"github.com/velora-app/velora-server/internal/repository"
)

const defaultListLimit = 20
const maxListLimit = 100

// Service implements the Interaction gRPC API: likes, skips and the
// reciprocal-match promotion. Each method corresponds to a gRPC
// endpoint defined in interaction.proto.
type Service struct {
	appCtx        *app.AppContext
	interactions  *repository.InteractionRepository
	points        *repository.PointsRepository
	notifications *repository.NotificationRepository
	dispatcher    *notify.Dispatcher

	pb.UnimplementedInteractionServiceServer
}

// NewInteractionService creates the service with dependencies from
// AppContext.
func NewInteractionService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:        appCtx,
		interactions:  repository.NewInteractionRepository(appCtx.DB),
		points:        repository.NewPointsRepository(appCtx.DB, appCtx.Cfg.Points.StarterBalance),
		notifications: repository.NewNotificationRepository(appCtx.DB),
		dispatcher:    notify.NewDispatcher(appCtx.RedisCache, appCtx.Logger),
	}
}

// SendLike records a like from actor to target and promotes the pair to
// a match when the reverse edge already exists.
//
// The whole flow (edge insert, point charge, reciprocity check, match
// creation, bonus credit, notification rows) runs in one serializable
// transaction. A failed point charge aborts the transaction, so a like
// never persists unpaid; two users liking each other at the same
// instant cannot produce duplicate match rows.
//
// Repeating a like is an idempotent no-op: success, is_match=false, no
// second charge.
func (s *Service) SendLike(ctx context.Context, req *pb.SendLikeRequest) (*pb.SendLikeResponse, error) {
	s.appCtx.Logger.Debug(
		"SendLike called",
		"actor", req.GetActorUserId(),
		"target", req.GetTargetUserId(),
		"premium", req.GetIsPremium(),
	)

	actorID, targetID, err := parsePair(req.GetActorUserId(), req.GetTargetUserId())
	if err != nil {
		return nil, err
	}
	if actorID == targetID {
		return nil, svcErr.InvalidArgument("cannot like yourself")
	}

	var (
		resp    = &pb.SendLikeResponse{}
		pending []db.Notification
	)

	txErr := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		interactions := s.interactions.WithTx(tx)
		points := s.points.WithTx(tx)
		notifications := s.notifications.WithTx(tx)

		created, err := interactions.CreateLike(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		if !created {
			// repeat like: nothing to charge, nothing to notify
			return nil
		}

		if repository.NeedsPointConsumption(req.GetIsPremium()) {
			cost := s.appCtx.Cfg.Points.LikeCost
			if err := points.Consume(ctx, actorID, cost, db.TxTypeLike, req.GetTargetUserId()); err != nil {
				// rolls back the edge inserted above
				return err
			}
		}

		reciprocal, err := interactions.HasLiked(ctx, targetID, actorID)
		if err != nil {
			return err
		}

		if !reciprocal {
			n := notify.NewLikeNotification(targetID, actorID)
			if err := notifications.Create(ctx, &n); err != nil {
				return err
			}
			pending = append(pending, n)
			return nil
		}

		match, createdMatch, err := interactions.CreateMatch(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		resp.IsMatch = true
		resp.MatchId = match.ID

		if createdMatch {
			// symmetric bonus, never point-gated
			bonus := s.appCtx.Cfg.Points.MatchBonus
			ref := strconv.FormatUint(match.ID, 10)
			if err := points.Add(ctx, actorID, bonus, db.TxTypeMatchBonus, ref, "match bonus"); err != nil {
				return err
			}
			if err := points.Add(ctx, targetID, bonus, db.TxTypeMatchBonus, ref, "match bonus"); err != nil {
				return err
			}

			for _, pair := range [][2]uint64{{actorID, targetID}, {targetID, actorID}} {
				n := notify.NewMatchNotification(pair[0], pair[1], match.ID)
				if err := notifications.Create(ctx, &n); err != nil {
					return err
				}
				pending = append(pending, n)
			}
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		if !svcErr.IsInsufficientPoints(txErr) {
			s.appCtx.Logger.Error("SendLike failed", "actor", actorID, "target", targetID, "err", txErr)
		}
		return nil, svcErr.Map(txErr)
	}

	// fan out only after the rows are committed
	for _, n := range pending {
		s.dispatcher.PublishNotification(ctx, n)
	}

	return resp, nil
}

// SkipUser records a directional skip. Idempotent: repeating the skip
// succeeds without a second write.
func (s *Service) SkipUser(ctx context.Context, req *pb.SkipUserRequest) (*pb.SkipUserResponse, error) {
	actorID, targetID, err := parsePair(req.GetActorUserId(), req.GetTargetUserId())
	if err != nil {
		return nil, err
	}
	if actorID == targetID {
		return nil, svcErr.InvalidArgument("cannot skip yourself")
	}

	if _, err := s.interactions.CreateSkip(ctx, actorID, targetID); err != nil {
		s.appCtx.Logger.Error("SkipUser failed", "actor", actorID, "target", targetID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SkipUserResponse{}, nil
}

// UndoSkip removes a directional skip. Idempotent.
func (s *Service) UndoSkip(ctx context.Context, req *pb.UndoSkipRequest) (*pb.UndoSkipResponse, error) {
	actorID, targetID, err := parsePair(req.GetActorUserId(), req.GetTargetUserId())
	if err != nil {
		return nil, err
	}

	if _, err := s.interactions.DeleteSkip(ctx, actorID, targetID); err != nil {
		s.appCtx.Logger.Error("UndoSkip failed", "actor", actorID, "target", targetID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.UndoSkipResponse{}, nil
}

// ListSkippedUsers returns profile-enriched skip entries, most recent
// first. Strictly directional.
func (s *Service) ListSkippedUsers(ctx context.Context, req *pb.ListSkippedUsersRequest) (*pb.ListSkippedUsersResponse, error) {
	actorID, err := parseUserID(req.GetActorUserId(), "actor_user_id")
	if err != nil {
		return nil, err
	}

	skipped, err := s.interactions.ListSkips(ctx, actorID, clampLimit(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListSkippedUsersResponse{}
	for _, u := range skipped {
		resp.SkippedUsers = append(resp.SkippedUsers, &pb.ListSkippedUsersResponse_SkippedUser{
			UserId:        strconv.FormatUint(u.UserID, 10),
			Username:      u.Username,
			Gender:        u.Gender,
			UnixTimestamp: uint64(u.SkippedAt.UnixMilli()),
		})
	}
	return resp, nil
}

// ListMatches returns the user's matches, newest first, with the other
// party's profile.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	userID, err := parseUserID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	matches, err := s.interactions.ListMatches(ctx, userID, clampLimit(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, &pb.ListMatchesResponse_Match{
			MatchId:       m.MatchID,
			OtherUserId:   strconv.FormatUint(m.OtherUserID, 10),
			Username:      m.Username,
			Gender:        m.Gender,
			UnixTimestamp: uint64(m.MatchedAt.UnixMilli()),
		})
	}
	return resp, nil
}

func parseUserID(raw, field string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}

func parsePair(actor, target string) (uint64, uint64, error) {
	actorID, err := parseUserID(actor, "actor_user_id")
	if err != nil {
		return 0, 0, err
	}
	targetID, err := parseUserID(target, "target_user_id")
	if err != nil {
		return 0, 0, err
	}
	return actorID, targetID, nil
}

func clampLimit(limit int32) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return int(limit)
}
