package chat

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/app"
	"github.com/velora-app/velora-server/internal/db"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	"github.com/velora-app/velora-server/internal/notify"
	pb "github.com/velora-app/velora-server/internal/proto/chat"
	"github.com/velora-app/velora-server/internal/repository"
)

const defaultPageSize = 50
const maxPageSize = 200

// Service implements the Chat gRPC API: conversation threads,
// point-gated message sends and read receipts. Each method corresponds
// to a gRPC endpoint defined in chat.proto.
type Service struct {
	appCtx        *app.AppContext
	chats         *repository.ChatRepository
	points        *repository.PointsRepository
	notifications *repository.NotificationRepository
	dispatcher    *notify.Dispatcher

	pb.UnimplementedChatServiceServer
}

// NewChatService creates the service with dependencies from AppContext.
func NewChatService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:        appCtx,
		chats:         repository.NewChatRepository(appCtx.DB),
		points:        repository.NewPointsRepository(appCtx.DB, appCtx.Cfg.Points.StarterBalance),
		notifications: repository.NewNotificationRepository(appCtx.DB),
		dispatcher:    notify.NewDispatcher(appCtx.RedisCache, appCtx.Logger),
	}
}

// GetOrCreateConversation resolves a conversation either directly by id
// or by the unordered user pair, creating the thread on first contact.
// Opening resets the opener's own unread counter.
func (s *Service) GetOrCreateConversation(ctx context.Context, req *pb.GetOrCreateConversationRequest) (*pb.ConversationResponse, error) {
	s.appCtx.Logger.Debug(
		"GetOrCreateConversation called",
		"user", req.GetUserId(),
		"other", req.GetOtherUserId(),
		"conversation", req.GetConversationId(),
	)

	userID, err := parseUserID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	var conv db.Conversation
	if req.GetConversationId() > 0 {
		conv, err = s.chats.GetConversation(ctx, req.GetConversationId())
		if err != nil {
			return nil, svcErr.Map(err)
		}
		if !repository.IsParticipant(conv, userID) {
			return nil, svcErr.Map(svcErr.ErrNotFound)
		}
	} else {
		otherID, err := parseUserID(req.GetOtherUserId(), "other_user_id")
		if err != nil {
			return nil, err
		}
		if otherID == userID {
			return nil, svcErr.InvalidArgument("cannot open a conversation with yourself")
		}
		conv, _, err = s.chats.GetOrCreateConversation(ctx, userID, otherID)
		if err != nil {
			return nil, svcErr.Map(err)
		}
	}

	if err := s.chats.ResetUnread(ctx, conv, userID); err != nil {
		return nil, svcErr.Map(err)
	}

	return conversationResponse(conv, userID, 0), nil
}

// SendMessage stores a message gated by the sender's point balance.
//
// Insert, conversation update, unread increment and point charge run in
// one serializable transaction; an InsufficientPoints failure therefore
// leaves no message row behind. The dedup token absorbs client retries:
// a replayed send returns the stored row without charging again.
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug(
		"SendMessage called",
		"sender", req.GetSenderUserId(),
		"receiver", req.GetReceiverUserId(),
		"conversation", req.GetConversationId(),
		"highlighted", req.GetIsHighlighted(),
	)

	senderID, err := parseUserID(req.GetSenderUserId(), "sender_user_id")
	if err != nil {
		return nil, err
	}
	receiverID, err := parseUserID(req.GetReceiverUserId(), "receiver_user_id")
	if err != nil {
		return nil, err
	}
	if senderID == receiverID {
		return nil, svcErr.InvalidArgument("cannot message yourself")
	}

	content := strings.TrimSpace(req.GetContent())
	if content == "" {
		return nil, svcErr.InvalidArgument("message content must not be empty")
	}

	cost := s.appCtx.Cfg.Points.MessageCost
	if req.GetIsHighlighted() {
		cost = s.appCtx.Cfg.Points.HighlightCost
	}

	token := req.GetDedupToken()
	if token == "" {
		token = uuid.NewString()
	}

	var (
		msg     db.Message
		created bool
		pending []db.Notification
	)

	txErr := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		chats := s.chats.WithTx(tx)
		points := s.points.WithTx(tx)
		notifications := s.notifications.WithTx(tx)

		conv, err := chats.GetConversation(ctx, req.GetConversationId())
		if err != nil {
			return err
		}
		if !repository.IsParticipant(conv, senderID) || !repository.IsParticipant(conv, receiverID) {
			return svcErr.ErrNotFound
		}

		msg = db.Message{
			ConversationID: conv.ID,
			SenderID:       senderID,
			ReceiverID:     receiverID,
			Content:        content,
			IsHighlighted:  req.GetIsHighlighted(),
			DedupToken:     token,
		}
		created, err = chats.CreateMessage(ctx, &msg)
		if err != nil {
			return err
		}
		if !created {
			// retry of an already-stored send: no counters, no charge
			return nil
		}

		if err := chats.RecordIncomingMessage(ctx, conv, receiverID, msg.CreatedAt); err != nil {
			return err
		}

		if repository.NeedsPointConsumption(req.GetIsPremium()) {
			ref := strconv.FormatUint(msg.ID, 10)
			if err := points.Consume(ctx, senderID, cost, db.TxTypeMessage, ref); err != nil {
				// rolls back the message row and counter bump
				return err
			}
		}

		n := notify.NewMessageNotification(receiverID, senderID, conv.ID, req.GetIsHighlighted())
		if err := notifications.Create(ctx, &n); err != nil {
			return err
		}
		pending = append(pending, n)
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		if !svcErr.IsInsufficientPoints(txErr) {
			s.appCtx.Logger.Error("SendMessage failed", "sender", senderID, "conversation", req.GetConversationId(), "err", txErr)
		}
		return nil, svcErr.Map(txErr)
	}

	if created {
		s.dispatcher.PublishMessage(ctx, msg)
		for _, n := range pending {
			s.dispatcher.PublishNotification(ctx, n)
		}
	}

	return &pb.SendMessageResponse{
		MessageId:      msg.ID,
		ConversationId: msg.ConversationID,
		Created:        created,
		UnixTimestamp:  uint64(msg.CreatedAt.UnixMilli()),
	}, nil
}

// MarkRead flips all of the reader's unread messages in the
// conversation and zeroes their unread counter. Idempotent.
func (s *Service) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	readerID, err := parseUserID(req.GetReaderUserId(), "reader_user_id")
	if err != nil {
		return nil, err
	}

	conv, err := s.chats.GetConversation(ctx, req.GetConversationId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !repository.IsParticipant(conv, readerID) {
		return nil, svcErr.Map(svcErr.ErrNotFound)
	}

	updated, err := s.chats.MarkMessagesRead(ctx, conv, readerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.MarkReadResponse{UpdatedCount: updated}, nil
}

// ListMessages returns one page of a conversation's history in
// insertion order, with cursor-based pagination.
func (s *Service) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	if req.GetConversationId() == 0 {
		return nil, svcErr.InvalidArgument("conversation_id must be set")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	messages, nextToken, err := s.chats.ListMessages(ctx, req.GetConversationId(), req.PaginationToken, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMessagesResponse{}
	// repo pages newest-first; flip to insertion order for display
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		resp.Messages = append(resp.Messages, &pb.ListMessagesResponse_Message{
			Id:             m.ID,
			SenderUserId:   strconv.FormatUint(m.SenderID, 10),
			ReceiverUserId: strconv.FormatUint(m.ReceiverID, 10),
			Content:        m.Content,
			IsHighlighted:  m.IsHighlighted,
			IsRead:         m.IsRead,
			UnixTimestamp:  uint64(m.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp, nil
}

// ListConversations returns the user's active threads, most recently
// active first, each with the caller's own unread count.
func (s *Service) ListConversations(ctx context.Context, req *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	userID, err := parseUserID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultPageSize
	}

	convs, err := s.chats.ListConversations(ctx, userID, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListConversationsResponse{}
	for _, conv := range convs {
		resp.Conversations = append(resp.Conversations, conversationResponse(conv, userID, repository.UnreadCountFor(conv, userID)))
	}
	return resp, nil
}

func conversationResponse(conv db.Conversation, userID uint64, unread int64) *pb.ConversationResponse {
	otherID := conv.User1ID
	if otherID == userID {
		otherID = conv.User2ID
	}
	resp := &pb.ConversationResponse{
		ConversationId: conv.ID,
		OtherUserId:    strconv.FormatUint(otherID, 10),
		UnreadCount:    unread,
		IsActive:       conv.IsActive,
	}
	if conv.LastMessageTime != nil {
		resp.LastMessageUnix = uint64(conv.LastMessageTime.UnixMilli())
	}
	return resp
}

func parseUserID(raw, field string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}
