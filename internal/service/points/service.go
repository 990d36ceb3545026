package points

import (
	"context"
	"strconv"

	"github.com/velora-app/velora-server/internal/app"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	pb "github.com/velora-app/velora-server/internal/proto/points"
	"github.com/velora-app/velora-server/internal/repository"
)

const defaultPageSize = 20

// Service implements the Points gRPC API: balance queries and the
// read-only ledger history. Mutations happen inside the like and
// message flows, never through this surface.
type Service struct {
	appCtx *app.AppContext
	points *repository.PointsRepository

	pb.UnimplementedPointsServiceServer
}

// NewPointsService creates the service with dependencies from AppContext.
func NewPointsService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		points: repository.NewPointsRepository(appCtx.DB, appCtx.Cfg.Points.StarterBalance),
	}
}

// GetBalance returns the user's account, creating it with the starter
// balance on first access.
func (s *Service) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	s.appCtx.Logger.Debug("GetBalance called", "user", req.GetUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	account, err := s.points.GetOrCreateAccount(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("GetOrCreateAccount failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	return &pb.GetBalanceResponse{
		Balance:        account.Balance,
		LifetimeEarned: account.LifetimeEarned,
	}, nil
}

// ListTransactions returns the user's ledger entries, newest first,
// with cursor-based pagination.
func (s *Service) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	s.appCtx.Logger.Debug("ListTransactions called", "user", req.GetUserId(), "token", req.GetPaginationToken())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	entries, nextToken, err := s.points.ListTransactions(ctx, userID, req.PaginationToken, defaultPageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListTransactionsResponse{}
	for _, e := range entries {
		resp.Transactions = append(resp.Transactions, &pb.ListTransactionsResponse_Transaction{
			Id:            e.ID,
			Amount:        e.Amount,
			Type:          e.Type,
			ReferenceId:   e.ReferenceID,
			Description:   e.Description,
			UnixTimestamp: uint64(e.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp, nil
}
