// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     grpc
// Description: Server interceptors that turn guard errors into gRPC statuses
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package grpc

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/msto63/throwif/foundation/core/capture"
	twerror "github.com/msto63/throwif/foundation/core/error"
	"github.com/msto63/throwif/pkg/core/logging"
)

// Context keys for request metadata
type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader string     = "x-request-id"
)

// ServerOptions returns the interceptor chain for servers whose handlers
// validate requests with throwif: recovery, request id, guard mapping for
// unary calls and request id, guard mapping for streams.
// A nil logger disables logging.
func ServerOptions(logger *zap.Logger) []grpc.ServerOption {
	if logger == nil {
		logger = zap.NewNop()
	}
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			RequestIDInterceptor(),
			GuardInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			StreamRequestIDInterceptor(),
			StreamGuardInterceptor(logger),
		),
	}
}

// RecoveryInterceptor recovers from panics in gRPC handlers
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("gRPC panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				err = status.Errorf(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

// RequestIDInterceptor adds a request ID to the context
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(withRequestID(ctx), req)
	}
}

// StreamRequestIDInterceptor adds a request ID to the stream context
func StreamRequestIDInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, &requestIDStream{ServerStream: ss, ctx: withRequestID(ss.Context())})
	}
}

// requestIDStream overrides the context of a server stream
type requestIDStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *requestIDStream) Context() context.Context {
	return s.ctx
}

// withRequestID stores the client's x-request-id, or a new uuid, in ctx
func withRequestID(ctx context.Context) context.Context {
	requestID := extractRequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GuardInterceptor converts guard errors returned by a handler into their
// gRPC status. Capture misuse and unsupported kinds are programming errors
// and become codes.Internal. Other errors pass through unchanged.
func GuardInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			err = guardStatus(ctx, logger, info.FullMethod, err)
		}
		return resp, err
	}
}

// StreamGuardInterceptor is GuardInterceptor for streaming handlers
func StreamGuardInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err != nil {
			err = guardStatus(ss.Context(), logger, info.FullMethod, err)
		}
		return err
	}
}

func guardStatus(ctx context.Context, logger *zap.Logger, method string, err error) error {
	fields := []zap.Field{
		zap.String("request_id", GetRequestID(ctx)),
		zap.String("method", method),
	}

	var guardErr *twerror.Error
	switch {
	case errors.As(err, &guardErr):
		logger.Info("guard violation", append(fields, logging.GuardError(guardErr)...)...)
		return guardErr.GRPCStatus().Err()
	case errors.Is(err, capture.ErrShape), errors.Is(err, twerror.ErrUnsupportedKind):
		logger.Error("guard misuse", append(fields, zap.Error(err))...)
		return status.Error(codes.Internal, "internal server error")
	default:
		return err
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return extractRequestID(ctx)
}

// extractRequestID extracts request ID from incoming metadata
func extractRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(RequestIDHeader)
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
