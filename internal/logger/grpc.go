package logger

import (
	"go.uber.org/zap/zapgrpc"
	"google.golang.org/grpc/grpclog"
)

// RedirectGRPC makes gRPC write its library logs to the GRPC logger.
// It must be called before any other gRPC function, grpclog.SetLoggerV2 is not thread-safe.
func RedirectGRPC() {
	grpclog.SetLoggerV2(zapgrpc.NewLogger(GRPC().Zap()))
}
