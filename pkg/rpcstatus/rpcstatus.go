// Package rpcstatus contains the status codes surfaced by the platform APIs.
package rpcstatus

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeebo/errs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCode is one of the error kinds a platform API may surface.
type StatusCode uint64

const (
	Unknown StatusCode = iota
	OK
	Canceled
	InvalidArgument
	NotFound
	AlreadyExists
	FailedPrecondition
	Unimplemented
	DataLoss
	Unavailable
	DeadlineExceeded
	PermissionDenied
	Unauthenticated
	Internal
)

// Code returns the status code associated with an error, or Unknown when the
// error carries no code. Context errors map to Canceled / DeadlineExceeded.
func Code(err error) StatusCode {
	if err == nil {
		return OK
	}
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded
	}
	var coded *codedErr
	if errors.As(err, &coded) {
		return coded.code
	}
	return Unknown
}

type codedErr struct {
	code StatusCode
	err  error
}

func (c *codedErr) Error() string { return c.err.Error() }
func (c *codedErr) Unwrap() error { return c.err }

// Error constructs an error with the given status code.
func Error(code StatusCode, msg string) error {
	return &codedErr{code: code, err: errs.New("%s", msg)}
}

// Errorf constructs an error with the given status code and format.
func Errorf(code StatusCode, format string, args ...interface{}) error {
	return &codedErr{code: code, err: errs.New(format, args...)}
}

// Wrap attaches a status code to an existing error. A nil error stays nil;
// an error that already carries a code keeps the original code.
func Wrap(code StatusCode, err error) error {
	if err == nil {
		return nil
	}
	if Code(err) != Unknown {
		return err
	}
	return &codedErr{code: code, err: err}
}

var toGrpc = map[StatusCode]codes.Code{
	Unknown:            codes.Internal,
	OK:                 codes.OK,
	Canceled:           codes.Canceled,
	InvalidArgument:    codes.InvalidArgument,
	NotFound:           codes.NotFound,
	AlreadyExists:      codes.AlreadyExists,
	FailedPrecondition: codes.FailedPrecondition,
	Unimplemented:      codes.Unimplemented,
	DataLoss:           codes.DataLoss,
	Unavailable:        codes.Unavailable,
	DeadlineExceeded:   codes.DeadlineExceeded,
	PermissionDenied:   codes.PermissionDenied,
	Unauthenticated:    codes.Unauthenticated,
	Internal:           codes.Internal,
}

// ToGrpc translates a platform error into a grpc status error. Backend
// specific error text is never forwarded for uncoded errors.
func ToGrpc(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == Unknown {
		return status.Error(codes.Internal, "internal server error")
	}
	return status.Error(toGrpc[code], err.Error())
}

// GrpcCode returns the grpc code for an error.
func GrpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return toGrpc[Code(err)]
}

// HTTPStatus maps a grpc code onto the HTTP status used by the gateway.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
