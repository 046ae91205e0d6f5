package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
)

// Kind classifies a failed request.
type Kind string

const (
	KindConnection Kind = "connection"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindUnknown    Kind = "unknown"
)

// Error is the error every fallible route returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus is 400 for request parameters the router itself rejected and
// 500 for everything else. Backend failures keep their Kind in the body but
// always answer 500, whatever the backend said.
func (e *Error) HTTPStatus() int {
	if e.Kind == KindValidation && e.Err == nil {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// NewValidationError reports a bad request parameter. It is the only error
// that answers 400.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Classify wraps err in an *Error of the matching Kind. An *Error anywhere in
// the chain is returned as is.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var routeErr *Error
	if errors.As(err, &routeErr) {
		return routeErr
	}

	return &Error{Kind: classifyKind(err), Message: err.Error(), Err: err}
}

func classifyKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindConnection
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.Unauthenticated:
			return KindConnection
		case codes.NotFound:
			return KindNotFound
		case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
			return KindValidation
		}
	}

	if redis.IsClosedError(err) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}

	return KindUnknown
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// errorHandler renders any error returned by a route as an ErrorResponse.
// Errors raised by fiber itself (unknown route, bad method) keep their code.
func errorHandler(c *fiber.Ctx, err error) error {
	code, body := renderError(err)
	return c.Status(code).JSON(body)
}

func renderError(err error) (int, ErrorResponse) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		kind := KindUnknown
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			kind = KindNotFound
		case fiberErr.Code >= 400 && fiberErr.Code < 500:
			kind = KindValidation
		}
		return fiberErr.Code, ErrorResponse{Status: statusError, Kind: kind, Message: fiberErr.Message}
	}

	e := Classify(err)
	return e.HTTPStatus(), ErrorResponse{Status: statusError, Kind: e.Kind, Message: e.Message}
}
