package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-flow-nft/internal/domain"
)

// ErrorCode is the machine-readable part of an API error
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeInternalError    ErrorCode = "internal_error"
	ErrCodeServiceError     ErrorCode = "service_error" // RPC node or metadata host failed
)

// APIError is the JSON body of every failed request
type APIError struct {
	Status  int       `json:"-"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	body, _ := json.Marshal(e)
	return string(body)
}

func newError(status int, code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(http.StatusNotFound, ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed", details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeInternalError, message, details)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(http.StatusBadGateway, ErrCodeServiceError, message, details)
}

// FromDomainError maps a resolver or registry error to its API error.
// Anything unrecognised is treated as an upstream failure described by fallback.
func FromDomainError(err error, fallback string) *APIError {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		return NewBadRequestError("Invalid address", err.Error())
	case errors.Is(err, domain.ErrUnknownNetwork):
		return NewNotFoundError("Network not found", err.Error())
	case errors.Is(err, domain.ErrDeploymentNotFound):
		return NewNotFoundError("Collection not found", err.Error())
	case errors.Is(err, domain.ErrContractNotFound):
		return NewNotFoundError("Contract not found", err.Error())
	case errors.Is(err, domain.ErrChainMismatch):
		return NewServiceError("RPC node serves a different chain", err.Error())
	default:
		return NewServiceError(fallback, err.Error())
	}
}
