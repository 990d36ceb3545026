package chat

import (
	"google.golang.org/grpc"

	"github.com/velora-app/velora-server/internal/app"
	pb "github.com/velora-app/velora-server/internal/proto/chat"
)

// Registrar ties the Chat service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Chat service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Chat service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewChatService(r.appCtx)
	pb.RegisterChatServiceServer(s, service)
}
