package transaction

import (
	"fmt"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// TransactionValidator checks transaction requests before they reach the store.
// Any type string is accepted unless strict type checking is enabled.
type TransactionValidator struct {
	strictTypes bool
}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator(strictTypes bool) *TransactionValidator {
	return &TransactionValidator{strictTypes: strictTypes}
}

// ValidateCreate validates a create request
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) error {
	if v.strictTypes && !entity.TransactionType(req.Type).IsKnown() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, req.Type)
	}

	return nil
}

// ValidateID returns ErrTransactionNotFound for ids the store never assigns.
// Stored ids start at 1.
func (v *TransactionValidator) ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id %d", errs.ErrTransactionNotFound, id)
	}
	return nil
}
