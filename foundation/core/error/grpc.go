// File: grpc.go
// Title: gRPC Status Mapping
// Description: Maps guard errors onto gRPC status codes so that handlers can
//              return them unchanged and clients receive InvalidArgument or
//              OutOfRange together with a BadRequest field violation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package error

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode returns the gRPC status code for the kind
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindArgumentNull, KindArgumentInvalid:
		return codes.InvalidArgument
	case KindArgumentOutOfRange:
		return codes.OutOfRange
	case KindGeneric:
		return codes.Unknown
	default:
		return codes.Internal
	}
}

// GRPCStatus implements the interface consulted by status.FromError.
// Argument kinds carry the parameter as an errdetails.BadRequest violation.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(e.kind.GRPCCode(), e.message)
	if e.kind == KindGeneric || e.paramName == "" {
		return st
	}

	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{
				Field:       e.paramName,
				Description: e.message,
			},
		},
	})
	if err != nil {
		return st
	}
	return detailed
}

// GRPCStatus reports an unsupported kind as an internal error.
func (e *UnsupportedKindError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}
