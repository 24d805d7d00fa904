package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// TransactionRepository defines the methods used to store and read transaction records
type TransactionRepository interface {
	// Create saves a new transaction and fills in the generated ID
	// The date is set to the store's current time when the entity carries a zero date
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row violates a table constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// List returns at most limit transactions after skipping skip rows, in store order
	// Negative values are handed to the store unchanged
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, skip, limit int) ([]*entity.Transaction, error)

	// ListAll returns every stored transaction
	// Used by the report service, which aggregates the full table on each call
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListAll(ctx context.Context) ([]*entity.Transaction, error)

	// Delete permanently removes the transaction with the given ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given ID
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
