package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/aferraro/badge-scanner/internal/common"
)

// RequestIDUnaryInterceptor tags every RPC with a request ID and logs the
// outcome. Downstream code reads the ID with common.RequestIDFromContext.
func RequestIDUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		} else {
			logger.Debug("rpc handled",
				"method", info.FullMethod,
				"request_id", requestID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}
