package metrics

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/persistence"
)

// StatsPoller samples lock counts from the repository and publishes them as
// gauges. Counts are read outside the ledger's critical section, so the
// values are eventually consistent snapshots.
type StatsPoller struct {
	store    persistence.LockRepository
	metrics  *Metrics
	logger   coreport.Logger
	stopChan chan struct{}
}

// NewStatsPoller creates a poller that feeds the lock gauges
func NewStatsPoller(store persistence.LockRepository, metrics *Metrics, logger coreport.Logger) *StatsPoller {
	return &StatsPoller{
		store:    store,
		metrics:  metrics,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins sampling at the given interval
func (p *StatsPoller) Start(interval time.Duration) {
	// Collect once so gauges are populated before the first tick
	p.collect()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.collect()
			case <-p.stopChan:
				return
			}
		}
	}()
}

// Stop stops the sampling goroutine
func (p *StatsPoller) Stop() {
	close(p.stopChan)
}

// collect samples the current lock counts
func (p *StatsPoller) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := p.store.CountActive(ctx)
	if err != nil {
		p.logger.Warn("Failed to sample active lock count", map[string]any{
			"error": err.Error(),
		})
		return
	}
	p.metrics.ActiveLocks.Set(float64(active))

	created, err := p.store.TotalCreated(ctx)
	if err != nil {
		p.logger.Warn("Failed to sample created lock count", map[string]any{
			"error": err.Error(),
		})
		return
	}
	p.metrics.CreatedLocks.Set(float64(created))
}
