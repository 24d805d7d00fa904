package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
	if ErrInvalidTransactionType.Error() != "transaction type must be credit or debit" {
		t.Errorf("ErrInvalidTransactionType has unexpected message: %s", ErrInvalidTransactionType.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidTransactionType", ErrInvalidTransactionType, 4001},
		{"InvalidTransactionID", ErrInvalidTransactionID, 4002},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"GenericNotFound", ErrNotFound, 4040},
		{"DatabaseConnection", ErrDatabaseConnection, 5000},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTransactionNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestTransactionError(t *testing.T) {
	txErr := NewTransactionError(42, "delete", "debit", ErrTransactionNotFound)

	expectedErrMsg := "delete failed for transaction 42 (type: debit): transaction not found"
	if txErr.Error() != expectedErrMsg {
		t.Errorf("TransactionError.Error() = %s, want %s", txErr.Error(), expectedErrMsg)
	}

	if !errors.Is(txErr, ErrTransactionNotFound) {
		t.Errorf("errors.Is(txErr, ErrTransactionNotFound) = false, want true")
	}

	var te *TransactionError
	if !errors.As(txErr, &te) {
		t.Fatalf("errors.As failed for TransactionError")
	}

	fields := te.LogFields()
	if fields["transaction_id"] != uint64(42) {
		t.Errorf("LogFields()[transaction_id] = %v, want 42", fields["transaction_id"])
	}
	if fields["error_code"] != CodeTransactionNotFound {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeTransactionNotFound)
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(ErrTransactionNotFound) {
		t.Error("IsNotFoundError(ErrTransactionNotFound) = false, want true")
	}
	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrNotFound)) {
		t.Error("IsNotFoundError(wrapped ErrNotFound) = false, want true")
	}
	if IsNotFoundError(ErrDatabaseConnection) {
		t.Error("IsNotFoundError(ErrDatabaseConnection) = true, want false")
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(fmt.Errorf("%w: transfer", ErrInvalidTransactionType)) {
		t.Error("IsValidationError(wrapped ErrInvalidTransactionType) = false, want true")
	}
	if IsValidationError(ErrTransactionNotFound) {
		t.Error("IsValidationError(ErrTransactionNotFound) = true, want false")
	}
}
