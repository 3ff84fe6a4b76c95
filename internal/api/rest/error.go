package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/bburrets/mdf-contract-management/internal/api/errors"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with field errors
func respondValidationError(c *gin.Context, verrs domain.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(verrs))
}

// respondError maps a ledger error to its status. Server side failures are logged.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	status, apiErr := apierrors.FromError(err, message)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	}
	c.JSON(status, apiErr)
}
