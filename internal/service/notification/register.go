package notification

import (
	"google.golang.org/grpc"

	"github.com/velora-app/velora-server/internal/app"
	pb "github.com/velora-app/velora-server/internal/proto/notification"
)

// Registrar ties the Notification service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Notification service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Notification service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewNotificationService(r.appCtx)
	pb.RegisterNotificationServiceServer(s, service)
}
