package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// poolPressureRatio is the in-use share of MaxOpenConnections that triggers a warning
const poolPressureRatio = 0.8

// PoolStater is the part of *sql.DB the monitor reads
type PoolStater interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor logs connection pool usage on a fixed interval
type ConnectionPoolMonitor struct {
	pool     PoolStater
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a monitor for the given pool
func NewConnectionPoolMonitor(pool PoolStater, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		pool:     pool,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples the pool once, then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.sample()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop ends sampling; later calls are no-ops
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

func (m *ConnectionPoolMonitor) sample() {
	stats := m.pool.Stats()

	fields := map[string]any{
		"open":       stats.OpenConnections,
		"in_use":     stats.InUse,
		"idle":       stats.Idle,
		"max_open":   stats.MaxOpenConnections,
		"wait_count": stats.WaitCount,
		"wait_time":  stats.WaitDuration.String(),
	}

	if stats.MaxOpenConnections > 0 &&
		float64(stats.InUse) >= float64(stats.MaxOpenConnections)*poolPressureRatio {
		m.logger.Warn("Database connection pool nearly exhausted", fields)
		return
	}

	m.logger.Debug("Database connection pool sample", fields)
}
