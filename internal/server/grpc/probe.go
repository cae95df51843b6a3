package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/invtrack/internal/metrics"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const probeTimeout = 2 * time.Second

// probe pings the store once and publishes the result to the health service
// and the store_up gauge.
func (s *GRPCServer) probe(ctx context.Context) bool {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	up := true
	if err := s.store.Ping(pctx); err != nil {
		up = false
		s.logger.Warn(ctx, "store ping failed", "error", err)
	}

	st := healthpb.HealthCheckResponse_SERVING
	if !up {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
	metrics.SetStoreUp(up)

	return up
}

func (s *GRPCServer) watchStore(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}
