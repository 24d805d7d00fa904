package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error onto its HTTP status and error body
func respondError(c *gin.Context, logger coreport.Logger, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["path"] = c.FullPath()

	var txErr *domainerr.TransactionError
	if errors.As(err, &txErr) {
		for k, v := range txErr.LogFields() {
			fields[k] = v
		}
	}

	switch {
	case domainerr.IsValidationError(err):
		logger.Warn("Rejected invalid request", fields)
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: validationMessage(err),
		})
	case domainerr.IsNotFoundError(err):
		logger.Info("Transaction not found", fields)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.CodeTransactionNotFound,
			Message: "Transaction not found",
		})
	default:
		logger.Error("Request failed", fields)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Internal server error",
		})
	}
}

// respondInvalid reports a request that failed binding before reaching the domain
func respondInvalid(c *gin.Context, logger coreport.Logger, code int, message string, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.FullPath(),
		"error": err.Error(),
	})
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrInvalidTransactionType):
		return domainerr.ErrInvalidTransactionType.Error()
	case errors.Is(err, domainerr.ErrInvalidTransactionID):
		return domainerr.ErrInvalidTransactionID.Error()
	default:
		return err.Error()
	}
}
