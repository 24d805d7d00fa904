package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DefaultListLimit is the page size used when the config leaves it unset
const DefaultListLimit = 100

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	defaultLimit       int
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	defaultLimit int,
	logger coreport.Logger,
) *TransactionHandler {
	if defaultLimit <= 0 {
		defaultLimit = DefaultListLimit
	}
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		defaultLimit:       defaultLimit,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /transactions/ endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.logger, domainerr.CodeInvalidRequest, "Invalid request format", err)
		return
	}

	tx, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), usecase.CreateTransactionRequest{
		Type:        *req.Type,
		Amount:      *req.Amount,
		Description: *req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"type": *req.Type})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// ListTransactions handles the GET /transactions/ endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, h.logger, domainerr.CodeInvalidRequest, "Invalid query parameters", err)
		return
	}

	skip, limit := 0, h.defaultLimit
	if query.Skip != nil {
		skip = *query.Skip
	}
	if query.Limit != nil {
		limit = *query.Limit
	}

	transactions, err := h.transactionUseCase.ListTransactions(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"skip": skip, "limit": limit})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// DeleteTransaction handles the DELETE /transactions/:id endpoint
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondInvalid(c, h.logger, domainerr.CodeInvalidTransactionID, "Invalid transaction ID format", err)
		return
	}

	if err := h.transactionUseCase.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, map[string]any{"transaction_id": id})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}
