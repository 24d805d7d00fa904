package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
)

// TestDBManager provides an in-memory SQLite store for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestConfig returns a configuration for a private in-memory store
func NewTestConfig() *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            memoryPath,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      0,
		MonitorInterval: 0,
	}
}

// NewTestDBManager connects to a fresh in-memory store with the schema applied.
// The connection is closed when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	config := NewTestConfig()
	manager := NewManager(config, logger, timeProvider)

	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// TruncateTransactions empties the transactions table
func (m *TestDBManager) TruncateTransactions(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Where("1 = 1").Delete(&model.Transaction{}).Error; err != nil {
		t.Fatalf("Failed to truncate transactions: %v", err)
	}
}

// CreateTestTransaction inserts a row directly, bypassing the repository
func (m *TestDBManager) CreateTestTransaction(t *testing.T, txType string, amount float64, description string, date time.Time) *model.Transaction {
	t.Helper()

	row := &model.Transaction{
		Type:   txType,
		Amount: amount,
		Date:   date.UTC(),
	}
	if description != "" {
		row.Description = &description
	}

	if err := m.Manager.DB().Create(row).Error; err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}
	return row
}
