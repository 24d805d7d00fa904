package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// TransactionRequest represents the API request for recording a transaction.
// Pointer fields distinguish a missing key from a zero value.
type TransactionRequest struct {
	Type        *string    `json:"type" binding:"required"`
	Amount      *float64   `json:"amount" binding:"required"`
	Description *string    `json:"description" binding:"required"`
	Date        *time.Time `json:"date"`
}

// TransactionResponse represents a stored transaction
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// NewTransactionResponse maps a transaction entity onto its wire form
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

// NewTransactionListResponse maps a page of transactions; an empty page encodes as []
func NewTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, NewTransactionResponse(tx))
	}
	return response
}

// ListQuery holds the paging parameters of the list endpoint
type ListQuery struct {
	Skip  *int `form:"skip"`
	Limit *int `form:"limit"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
