package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// ReportUseCase builds aggregate views over all stored transactions
type ReportUseCase interface {
	// Weekly returns one bucket per Monday-start week, ordered by week
	Weekly(ctx context.Context) ([]entity.WeeklyBucket, error)

	// Breakdown returns per-type, per-category totals
	Breakdown(ctx context.Context) ([]entity.BreakdownEntry, error)
}
