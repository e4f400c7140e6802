package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError  ErrorType = "VALIDATION_ERROR"
	NotFoundError    ErrorType = "NOT_FOUND"
	AuthError        ErrorType = "AUTHENTICATION_ERROR"
	ServerError      ErrorType = "SERVER_ERROR"
	ForbiddenError   ErrorType = "FORBIDDEN"
	TripNotFoundErr  ErrorType = "TRIP_NOT_FOUND"
	PlanUnavailable  ErrorType = "PLAN_UNAVAILABLE"
	PlannerUpstream  ErrorType = "PLANNER_UPSTREAM_ERROR"
	CacheUnavailable ErrorType = "CACHE_UNAVAILABLE"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status for the error, deriving one from
// the error type when unset.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func Forbidden(message string, details string) *AppError {
	return &AppError{
		Type:       ForbiddenError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusForbidden,
	}
}

func TripNotFound(groupCode string) *AppError {
	return &AppError{
		Type:       TripNotFoundErr,
		Message:    "Trip not found",
		Detail:     fmt.Sprintf("Group code: %s", groupCode),
		HTTPStatus: http.StatusNotFound,
	}
}

// PlanNotReady signals that a trip has no plan yet. This is a routine
// state for newly formed groups, not a failure.
func PlanNotReady(groupCode string) *AppError {
	return &AppError{
		Type:       PlanUnavailable,
		Message:    "No trip plan available yet",
		Detail:     fmt.Sprintf("Group code: %s", groupCode),
		HTTPStatus: http.StatusNotFound,
	}
}

// PlannerError wraps a failure reported by or while reaching the
// planning backend.
func PlannerError(err error) *AppError {
	return &AppError{
		Type:       PlannerUpstream,
		Message:    "Planning service request failed",
		Detail:     err.Error(),
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError, TripNotFoundErr, PlanUnavailable:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case PlannerUpstream:
		return http.StatusBadGateway
	case CacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
