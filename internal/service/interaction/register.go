package interaction

import (
	"google.golang.org/grpc"

	"github.com/velora-app/velora-server/internal/app"
	pb "github.com/velora-app/velora-server/internal/proto/interaction"
)

// Registrar ties the Interaction service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Interaction service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Interaction service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewInteractionService(r.appCtx)
	pb.RegisterInteractionServiceServer(s, service)
}
