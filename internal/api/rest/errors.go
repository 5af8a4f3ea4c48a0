package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-flow-nft/internal/api/shared/errors"
	"github.com/feral-file/ff-flow-nft/internal/logger"
)

func respondError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.Status, apiErr)
}

func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewBadRequestError(message, details...))
}

func respondValidationError(c *gin.Context, message string) {
	respondError(c, apierrors.NewValidationError(message))
}

// respondExecutorError maps executor errors to API errors; upstream failures are logged
func respondExecutorError(c *gin.Context, err error, message string) {
	apiErr := apierrors.FromDomainError(err, message)
	if apiErr.Code == apierrors.ErrCodeServiceError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	}
	respondError(c, apiErr)
}
