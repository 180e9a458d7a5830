package dashboard

import (
	"context"
	"io"
	"net"
	"strings"

	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorType groups dashboard failures by what the user can do about them.
type ErrorType string

const (
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeAuth    ErrorType = "auth"
	ErrorTypeData    ErrorType = "data"
)

const (
	pgInsufficientPrivilege = "42501"
	pgInvalidAuthClass      = "28"
)

var userMessages = map[ErrorType]string{
	ErrorTypeNetwork: "Unable to reach the server. Please check your connection and try again.",
	ErrorTypeAuth:    "Your session is not authorized to load this data. Please sign in again.",
	ErrorTypeData:    "Something went wrong while loading your dashboard data.",
}

// DashboardError is a classified failure recorded in the dashboard state.
type DashboardError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Operation string    `json:"operation"`
	Err       error     `json:"-"`
}

// Error implements the error interface
func (e *DashboardError) Error() string {
	if e.Err == nil {
		return e.Operation + ": " + e.Message
	}

	return e.Operation + ": " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// Classify maps a failure of operation to a DashboardError.
func Classify(operation string, err error) *DashboardError {
	if err == nil {
		return nil
	}

	if dErr, ok := errors.AsType[*DashboardError](err); ok {
		return dErr
	}

	errType := classifyType(err)

	return &DashboardError{
		Type:      errType,
		Message:   userMessages[errType],
		Operation: operation,
		Err:       err,
	}
}

func classifyType(err error) ErrorType {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		if pgErr.Code == pgInsufficientPrivilege || strings.HasPrefix(pgErr.Code, pgInvalidAuthClass) {
			return ErrorTypeAuth
		}
	}

	if _, ok := errors.AsType[net.Error](err); ok {
		return ErrorTypeNetwork
	}
	if errors.IsAny(err, context.DeadlineExceeded, io.ErrUnexpectedEOF) {
		return ErrorTypeNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "jwt"), strings.Contains(msg, "permission denied"):
		return ErrorTypeAuth
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "network"), strings.Contains(msg, "timeout"):
		return ErrorTypeNetwork
	default:
		return ErrorTypeData
	}
}

// isRetryable reports whether a query failure may succeed on another attempt.
func isRetryable(err error) bool {
	if errors.IsAny(err, context.Canceled, repository.ErrVendorProfileNotFound) {
		return false
	}

	return classifyType(err) != ErrorTypeAuth
}
