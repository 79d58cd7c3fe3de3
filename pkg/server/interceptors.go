package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// unaryLogInterceptor logs one line per unary call: method, duration, code.
func unaryLogInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, time.Since(start), err)
		return resp, err
	}
}

func streamLogInterceptor(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, time.Since(start), err)
		return err
	}
}

func logCall(log *zap.Logger, method string, elapsed time.Duration, err error) {
	code := status.Code(err)
	fields := []zap.Field{
		zap.String("method", method),
		zap.Duration("elapsed", elapsed),
		zap.Stringer("code", code),
	}
	if err != nil {
		log.Warn("rpc failed", append(fields, zap.Error(err))...)
		return
	}
	log.Debug("rpc", fields...)
}

// unaryMonkitInterceptor scopes every unary call as a monkit task.
func unaryMonkitInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer mon.TaskNamed(info.FullMethod)(&ctx)(&err)
		return handler(ctx, req)
	}
}

// recovery interceptors turn handler panics into INTERNAL instead of
// killing the process.
func unaryRecoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in rpc handler",
					zap.String("method", info.FullMethod), zap.Any("panic", rec), zap.Stack("stack"))
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func streamRecoveryInterceptor(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in rpc handler",
					zap.String("method", info.FullMethod), zap.Any("panic", rec), zap.Stack("stack"))
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(srv, ss)
	}
}
