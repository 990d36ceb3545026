package points

import (
	"google.golang.org/grpc"

	"github.com/velora-app/velora-server/internal/app"
	pb "github.com/velora-app/velora-server/internal/proto/points"
)

// Registrar ties the Points service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Points service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Points service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewPointsService(r.appCtx)
	pb.RegisterPointsServiceServer(s, service)
}
