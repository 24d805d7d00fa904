package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestManager_InMemory(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())

	assert.NotNil(t, testDB.Manager.DB())
	assert.NoError(t, testDB.Manager.Ping(context.Background()))
	assert.True(t, testDB.Manager.DB().Migrator().HasTable("transactions"))
}

func TestManager_FileBackedCreatesDirectory(t *testing.T) {
	config := NewTestConfig()
	config.Path = filepath.Join(t.TempDir(), "nested", "transactions.db")
	config.MaxOpenConns = 4
	config.MaxIdleConns = 4

	manager := NewManager(config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	_, err := manager.Connect()
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.Migrate(context.Background()))
	assert.FileExists(t, config.Path)
}

func TestManager_UnsupportedDriver(t *testing.T) {
	config := NewTestConfig()
	config.Driver = "mysql"

	manager := NewManager(config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	_, err := manager.Connect()

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestManager_NotConnected(t *testing.T) {
	manager := NewManager(NewTestConfig(), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	assert.Error(t, manager.Ping(context.Background()))
	assert.Error(t, manager.Migrate(context.Background()))
	assert.NoError(t, manager.Close())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("sqlite defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewTestConfig().Validate())
	})

	t.Run("sqlite needs a path", func(t *testing.T) {
		config := NewTestConfig()
		config.Path = ""
		assert.Error(t, config.Validate())
	})

	t.Run("postgres needs connection details", func(t *testing.T) {
		config := NewTestConfig()
		config.Driver = DriverPostgres
		assert.ErrorContains(t, config.Validate(), "host")

		config.Host = "localhost"
		config.Port = 5432
		config.Username = "finance"
		config.Database = "finance"
		config.SSLMode = "disable"
		assert.NoError(t, config.Validate())
		assert.Equal(t, "host=localhost port=5432 user=finance password= dbname=finance sslmode=disable", config.DSN())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		config := NewTestConfig()
		config.LogLevel = "verbose"
		assert.Error(t, config.Validate())
	})
}

func TestExtractors(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(" select * from `transactions`"))
	assert.Equal(t, "DELETE", extractQueryType(`DELETE FROM "transactions" WHERE id = 1`))
	assert.Equal(t, "", extractQueryType("PRAGMA foreign_keys"))

	assert.Equal(t, "transactions", extractTableName("SELECT * FROM `transactions` LIMIT 10"))
	assert.Equal(t, "transactions", extractTableName(`INSERT INTO "transactions" ("type") VALUES ($1)`))
	assert.Equal(t, "", extractTableName("PRAGMA foreign_keys"))
}

type fixedPool struct {
	stats sql.DBStats
}

func (p fixedPool) Stats() sql.DBStats {
	return p.stats
}

func TestConnectionPoolMonitor(t *testing.T) {
	tests := []struct {
		name     string
		stats    sql.DBStats
		expected zapcore.Level
	}{
		{"idle pool", sql.DBStats{MaxOpenConnections: 10, OpenConnections: 2, Idle: 2}, zapcore.DebugLevel},
		{"below pressure", sql.DBStats{MaxOpenConnections: 10, InUse: 7}, zapcore.DebugLevel},
		{"at pressure", sql.DBStats{MaxOpenConnections: 10, InUse: 8}, zapcore.WarnLevel},
		{"unbounded pool", sql.DBStats{InUse: 50}, zapcore.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			monitor := NewConnectionPoolMonitor(fixedPool{stats: tc.stats}, logger.NewZapLoggerWithCore(core))

			monitor.Start(time.Hour)
			monitor.Stop()
			monitor.Stop()

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.expected, entries[0].Level)
			assert.EqualValues(t, tc.stats.InUse, entries[0].ContextMap()["in_use"])
		})
	}
}

func TestManager_MigrateTwice(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())

	assert.NoError(t, testDB.Manager.Migrate(context.Background()))
}
