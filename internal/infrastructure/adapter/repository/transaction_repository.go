package repository

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// Create inserts a transaction and writes the store-assigned ID back into it
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"type":   transaction.Type,
		"amount": transaction.Amount,
	})

	row := model.FromEntity(transaction)

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"type":  transaction.Type,
			"error": err.Error(),
		})
		return r.errorMapper.MapError(err, "create")
	}

	transaction.ID = row.ID
	transaction.Date = row.Date.UTC()

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
	})
	return nil
}

// List returns up to limit transactions after skipping skip rows, in ID order
func (r *TransactionRepository) List(ctx context.Context, skip, limit int) ([]*entity.Transaction, error) {
	r.logger.Debug("Listing transactions", map[string]any{
		"skip":  skip,
		"limit": limit,
	})

	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"skip":  skip,
			"limit": limit,
			"error": err.Error(),
		})
		return nil, r.errorMapper.MapError(err, "list")
	}

	return toEntities(rows), nil
}

// ListAll returns every stored transaction in ID order
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		r.logger.Error("Failed to load all transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorMapper.MapError(err, "list all")
	}

	r.logger.Debug("Loaded all transactions", map[string]any{
		"count": len(rows),
	})
	return toEntities(rows), nil
}

// Delete removes the transaction with the given ID
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	r.logger.Debug("Deleting transaction", map[string]any{
		"transaction_id": id,
	})

	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "delete")
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during delete", map[string]any{
			"transaction_id": id,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Info("Transaction deleted successfully", map[string]any{
		"transaction_id": id,
	})
	return nil
}

func toEntities(rows []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].ToEntity())
	}
	return transactions
}
