// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// Domain sentinels. Services return these (or wrap them) and the
// mapper translates them at the gRPC boundary, so business code never
// deals in status codes directly.
var (
	// ErrNotFound marks an unknown conversation, user or account.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a lost race on a contended row (balance,
	// unread counter, match creation). Safe to retry.
	ErrConflict = errors.New("concurrency conflict")

	// ErrInvalidAmount marks a non-positive ledger amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// InsufficientPointsError is a typed, non-exceptional failure: the
// caller shows the deficit and an upsell prompt rather than an error
// page.
type InsufficientPointsError struct {
	Required int64
	Balance  int64
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, have %d", e.Required, e.Balance)
}

// InsufficientPoints builds the typed failure for a rejected charge.
func InsufficientPoints(required, balance int64) error {
	return &InsufficientPointsError{Required: required, Balance: balance}
}

// IsInsufficientPoints reports whether err is a rejected point charge.
func IsInsufficientPoints(err error) bool {
	var ipe *InsufficientPointsError
	return errors.As(err, &ipe)
}

// Map converts repo/infra/domain errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}

	var ipe *InsufficientPointsError

	switch {
	case errors.As(err, &ipe):
		return status.Errorf(codes.FailedPrecondition,
			"insufficient points: need %d, have %d", ipe.Required, ipe.Balance)

	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, ErrConflict):
		return status.Error(codes.Aborted, "conflicting concurrent update, retry")

	case errors.Is(err, ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, "amount must be positive")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// anything unexpected surfaces as a retryable storage error
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}
