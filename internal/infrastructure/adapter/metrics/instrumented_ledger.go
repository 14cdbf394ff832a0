package metrics

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
)

// InstrumentedLedger wraps a LedgerUseCase and counts its mutating operations.
// Reads pass straight through; the gauges they would feed come from the
// StatsPoller instead.
type InstrumentedLedger struct {
	inner   usecase.LedgerUseCase
	metrics *Metrics
}

// NewInstrumentedLedger decorates a ledger with Prometheus counters
func NewInstrumentedLedger(inner usecase.LedgerUseCase, metrics *Metrics) *InstrumentedLedger {
	return &InstrumentedLedger{
		inner:   inner,
		metrics: metrics,
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Deposit delegates and counts the attempt per asset and outcome
func (l *InstrumentedLedger) Deposit(ctx context.Context, req usecase.DepositRequest) (*entity.Lock, error) {
	lock, err := l.inner.Deposit(ctx, req)
	l.metrics.DepositsTotal.WithLabelValues(req.Asset.String(), outcome(err)).Inc()
	return lock, err
}

// Withdraw delegates and counts the attempt per asset and outcome. Failures
// before the lock is resolved are counted under an unknown asset.
func (l *InstrumentedLedger) Withdraw(ctx context.Context, caller string, id entity.LockID) (*usecase.WithdrawReceipt, error) {
	receipt, err := l.inner.Withdraw(ctx, caller, id)

	asset := "unknown"
	if receipt != nil {
		asset = receipt.Asset.String()
	}
	l.metrics.WithdrawalsTotal.WithLabelValues(asset, outcome(err)).Inc()

	return receipt, err
}

// Solvency delegates and counts the check result
func (l *InstrumentedLedger) Solvency(ctx context.Context, asset entity.Asset) (*usecase.SolvencyReport, error) {
	report, err := l.inner.Solvency(ctx, asset)

	result := "error"
	if err == nil {
		if report.Sound {
			result = "sound"
		} else {
			result = "unsound"
		}
	}
	l.metrics.SolvencyTotal.WithLabelValues(asset.String(), result).Inc()

	return report, err
}

// GetLock delegates to the wrapped ledger
func (l *InstrumentedLedger) GetLock(ctx context.Context, id entity.LockID) (*entity.Lock, error) {
	return l.inner.GetLock(ctx, id)
}

// GetBalance delegates to the wrapped ledger
func (l *InstrumentedLedger) GetBalance(ctx context.Context, id entity.LockID) (int64, error) {
	return l.inner.GetBalance(ctx, id)
}

// GetAsset delegates to the wrapped ledger
func (l *InstrumentedLedger) GetAsset(ctx context.Context, id entity.LockID) (entity.Asset, error) {
	return l.inner.GetAsset(ctx, id)
}

// GetMaturity delegates to the wrapped ledger
func (l *InstrumentedLedger) GetMaturity(ctx context.Context, id entity.LockID) (time.Time, error) {
	return l.inner.GetMaturity(ctx, id)
}

// HolderValue delegates to the wrapped ledger
func (l *InstrumentedLedger) HolderValue(ctx context.Context, id entity.LockID, holder string) (int64, error) {
	return l.inner.HolderValue(ctx, id, holder)
}

// ListByOwner delegates to the wrapped ledger
func (l *InstrumentedLedger) ListByOwner(ctx context.Context, owner string) ([]*entity.Lock, error) {
	return l.inner.ListByOwner(ctx, owner)
}
