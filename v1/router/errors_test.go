package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", context.DeadlineExceeded, KindConnection},
		{"canceled", fmt.Errorf("ping: %w", context.Canceled), KindConnection},
		{"grpc unavailable", status.Error(codes.Unavailable, "connection refused"), KindConnection},
		{"grpc unauthenticated", status.Error(codes.Unauthenticated, "bad api key"), KindConnection},
		{"grpc not found", status.Error(codes.NotFound, "collection missing"), KindNotFound},
		{"grpc invalid argument", status.Error(codes.InvalidArgument, "bad dimension"), KindValidation},
		{"grpc internal", status.Error(codes.Internal, "storage error"), KindUnknown},
		{"redis closed", redis.ErrClosed, KindConnection},
		{"eof", io.EOF, KindConnection},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, KindConnection},
		{"plain", errors.New("something broke"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.err.Error(), got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyKeepsRouteErrors(t *testing.T) {
	assert.Nil(t, Classify(nil))

	v := NewValidationError("limit must be positive, got %d", -1)
	got := Classify(fmt.Errorf("search: %w", v))
	assert.Same(t, v, got)
	assert.Equal(t, "limit must be positive, got -1", got.Error())
}

func TestErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"route validation", NewValidationError("bad limit"), fiber.StatusBadRequest},
		{"backend invalid argument", Classify(status.Error(codes.InvalidArgument, "bad dimension")), fiber.StatusInternalServerError},
		{"backend not found", Classify(status.Error(codes.NotFound, "collection missing")), fiber.StatusInternalServerError},
		{"connection", Classify(context.DeadlineExceeded), fiber.StatusInternalServerError},
		{"unknown", Classify(errors.New("something broke")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())

			code, body := renderError(fmt.Errorf("wrapped: %w", tt.err))
			assert.Equal(t, tt.want, code)
			assert.Equal(t, tt.err.Kind, body.Kind)
		})
	}
}

func TestRenderFiberErrors(t *testing.T) {
	code, body := renderError(fiber.ErrMethodNotAllowed)
	assert.Equal(t, fiber.StatusMethodNotAllowed, code)
	assert.Equal(t, KindValidation, body.Kind)
	assert.Equal(t, "error", body.Status)

	code, body = renderError(fiber.ErrServiceUnavailable)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.Equal(t, KindUnknown, body.Kind)
}
