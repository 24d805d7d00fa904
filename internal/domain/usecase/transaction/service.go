package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Service records, lists and deletes transactions
type Service struct {
	repo         persistence.TransactionRepository
	validator    *TransactionValidator
	notifier     *EventNotifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	repo persistence.TransactionRepository,
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	strictTypes bool,
) *Service {
	return &Service{
		repo:         repo,
		validator:    NewTransactionValidator(strictTypes),
		notifier:     NewEventNotifier(publisher, timeProvider, logger),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// CreateTransaction validates, stores and announces a new transaction
func (s *Service) CreateTransaction(ctx context.Context, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.logger.Warn("Rejected transaction request", map[string]any{
			"type":  req.Type,
			"error": err.Error(),
		})
		return nil, err
	}

	var opts []entity.TransactionOption
	if req.Date != nil {
		opts = append(opts, entity.WithDate(*req.Date))
	}

	tx := entity.NewTransaction(req.Type, req.Amount, req.Description, s.timeProvider, opts...)

	if err := s.repo.Create(ctx, tx); err != nil {
		s.logger.Error("Failed to store transaction", map[string]any{
			"type":   req.Type,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction recorded", map[string]any{
		"transaction_id": tx.ID,
		"type":           tx.Type,
		"amount":         tx.Amount,
		"unknown_type":   !tx.Type.IsKnown(),
	})

	s.notifier.Created(ctx, tx)

	return tx, nil
}

// ListTransactions returns a page of stored transactions
func (s *Service) ListTransactions(ctx context.Context, skip, limit int) ([]*entity.Transaction, error) {
	transactions, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"skip":  skip,
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}

	return transactions, nil
}

// DeleteTransaction permanently removes a transaction
func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	err := s.validator.ValidateID(id)
	if err == nil {
		err = s.repo.Delete(ctx, uint64(id))
	}

	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			s.logger.Info("Transaction to delete not found", map[string]any{
				"transaction_id": id,
			})
			return errs.NewTransactionError(uint64(max(id, 0)), "delete", "", err)
		}

		s.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
	})

	s.notifier.Deleted(ctx, uint64(id))

	return nil
}
