package database

import (
	"errors"
	"fmt"
	"testing"

	domainErr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrTransactionNotFound},
		{"wrapped record not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), domainErr.ErrTransactionNotFound},
		{"unique violation", errors.New("UNIQUE constraint failed: transactions.id"), domainErr.ErrConstraintViolation},
		{"postgres violation", errors.New(`null value in column "amount" violates not-null constraint`), domainErr.ErrConstraintViolation},
		{"timeout", errors.New("context deadline exceeded"), domainErr.ErrDatabaseConnection},
		{"anything else", errors.New("disk I/O error"), domainErr.ErrDatabaseConnection},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "list"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "list"))
}
