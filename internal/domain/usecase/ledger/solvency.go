package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	usecase "github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
)

// Solvency compares the custodied balance of an asset against the sum of
// active locked amounts. The ledger is sound for an asset when custody covers
// every active lock. A mismatch is reported and logged loudly; it is never
// papered over and never repaired automatically.
//
// The check runs under the same mutex as deposits and withdrawals so both
// sides are read from one consistent instant.
func (s *Service) Solvency(ctx context.Context, asset entity.Asset) (*usecase.SolvencyReport, error) {
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if s.auditor == nil {
		return nil, fmt.Errorf("%w: no custody auditor configured", errs.ErrInternalServer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.store.SumActiveAmount(ctx, asset)
	if err != nil {
		return nil, err
	}

	custodied, err := s.auditor.CustodiedBalance(ctx, asset)
	if err != nil {
		return nil, err
	}

	report := &usecase.SolvencyReport{
		Asset:     asset,
		Locked:    locked,
		Custodied: custodied,
		Sound:     custodied >= locked,
		CheckedAt: s.timeProvider.Now(),
	}

	if !report.Sound {
		solvencyErr := &errs.SolvencyError{Asset: asset.String(), Locked: locked, Custodied: custodied}
		s.logger.Error("Solvency check failed", solvencyErr.LogFields())
	} else {
		s.logger.Debug("Solvency check passed", map[string]any{
			"asset":     asset.String(),
			"locked":    locked,
			"custodied": custodied,
		})
	}

	return report, nil
}
