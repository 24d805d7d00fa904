package report

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"golang.org/x/sync/singleflight"
)

const (
	fetchAllKey = "transactions:all"

	// sharedFetchTimeout bounds a read that no single caller owns
	sharedFetchTimeout = 30 * time.Second
)

// Service builds reports from a full read of the transaction table
type Service struct {
	repo         persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	fetches      singleflight.Group
}

// NewReportService creates a new report service
func NewReportService(
	repo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ReportUseCase {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Weekly returns the weekly credit/debit rollup
func (s *Service) Weekly(ctx context.Context) ([]entity.WeeklyBucket, error) {
	transactions, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	start := s.timeProvider.Now()
	buckets := WeeklyReport(transactions)

	s.logger.Debug("Weekly report built", map[string]any{
		"transactions": len(transactions),
		"weeks":        len(buckets),
		"elapsed":      s.timeProvider.Since(start).String(),
	})

	return buckets, nil
}

// Breakdown returns the per-category totals
func (s *Service) Breakdown(ctx context.Context) ([]entity.BreakdownEntry, error) {
	transactions, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	start := s.timeProvider.Now()
	entries := BreakdownReport(transactions)

	s.logger.Debug("Breakdown report built", map[string]any{
		"transactions": len(transactions),
		"entries":      len(entries),
		"elapsed":      s.timeProvider.Since(start).String(),
	})

	return entries, nil
}

// fetchAll reads every transaction. Callers that arrive while a read is
// in flight share its result; nothing is kept once it returns. The shared
// read is detached from the caller that started it, and each caller stops
// waiting when its own ctx is done.
func (s *Service) fetchAll(ctx context.Context) ([]*entity.Transaction, error) {
	results := s.fetches.DoChan(fetchAllKey, func() (any, error) {
		fetchCtx, cancel := s.timeProvider.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return s.repo.ListAll(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load transactions: %w", ctx.Err())
	case res := <-results:
		if res.Err != nil {
			s.logger.Error("Failed to load transactions for report", map[string]any{
				"error": res.Err.Error(),
			})
			return nil, fmt.Errorf("load transactions: %w", res.Err)
		}

		if res.Shared {
			s.logger.Debug("Shared in-flight transaction read", nil)
		}

		return res.Val.([]*entity.Transaction), nil
	}
}
