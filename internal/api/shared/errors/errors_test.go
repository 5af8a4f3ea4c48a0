package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/feral-file/ff-flow-nft/internal/api/shared/errors"
	"github.com/feral-file/ff-flow-nft/internal/domain"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   apierrors.ErrorCode
		expectedMsg    string
	}{
		{
			name:           "invalid address",
			err:            fmt.Errorf("%w: owner %q", domain.ErrInvalidAddress, "0x12"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeBadRequest,
			expectedMsg:    "Invalid address",
		},
		{
			name:           "unknown network",
			err:            domain.ErrUnknownNetwork,
			expectedStatus: http.StatusNotFound,
			expectedCode:   apierrors.ErrCodeNotFound,
			expectedMsg:    "Network not found",
		},
		{
			name:           "unknown tag",
			err:            fmt.Errorf("%w: genesis", domain.ErrDeploymentNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   apierrors.ErrCodeNotFound,
			expectedMsg:    "Collection not found",
		},
		{
			name:           "no contract code",
			err:            domain.ErrContractNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   apierrors.ErrCodeNotFound,
			expectedMsg:    "Contract not found",
		},
		{
			name:           "wrong chain",
			err:            fmt.Errorf("failed to connect to evmFlowMainnet: %w", domain.ErrChainMismatch),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apierrors.ErrCodeServiceError,
			expectedMsg:    "RPC node serves a different chain",
		},
		{
			name:           "upstream failure",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apierrors.ErrCodeServiceError,
			expectedMsg:    "Failed to resolve owned tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apierrors.FromDomainError(tt.err, "Failed to resolve owned tokens")

			assert.Equal(t, tt.expectedStatus, apiErr.Status)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, tt.expectedMsg, apiErr.Message)
			assert.Equal(t, tt.err.Error(), apiErr.Details)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewValidationError("tags: too many", "max 20")
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"tags: too many, max 20"}`, err.Error())
}
