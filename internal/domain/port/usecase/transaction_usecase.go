package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// CreateTransactionRequest represents an incoming request to record a transaction
type CreateTransactionRequest struct {
	Type        string
	Amount      float64
	Description string
	// Date is optional; the store's clock is used when nil
	Date *time.Time
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// CreateTransaction records a new transaction and returns it with its generated fields
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error)

	// ListTransactions returns a page of stored transactions
	ListTransactions(ctx context.Context, skip, limit int) ([]*entity.Transaction, error)

	// DeleteTransaction permanently removes a transaction
	DeleteTransaction(ctx context.Context, id int64) error
}
