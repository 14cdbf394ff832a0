package ledger

import (
	"context"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	usecase "github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
)

// Deposit takes custody of req.Amount of req.Asset from req.Owner and records
// a new lock maturing req.DurationSeconds after now.
//
// The lock record is written before the custody transfer so the derived
// identifier is reserved up front. If the transfer then fails the record is
// rolled back and the identifier stays burned; it is never handed out again.
func (s *Service) Deposit(ctx context.Context, req usecase.DepositRequest) (*entity.Lock, error) {
	lock, err := entity.NewLock(req.Owner, req.Asset, req.Amount, req.DurationSeconds, s.timeProvider)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lock.ID = s.deriver.Derive(lock)

	if err := s.store.Create(ctx, lock); err != nil {
		s.logger.Error("Failed to record lock", map[string]any{
			"lock_id": string(lock.ID),
			"owner":   lock.Owner,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.transfer.TransferIn(ctx, lock.Owner, lock.Asset, lock.Amount); err != nil {
		// Undo the record so the ledger and custody stay in agreement. The
		// identifier remains reserved by the store.
		if rbErr := s.store.Remove(ctx, lock.ID); rbErr != nil {
			s.logger.Error("Failed to roll back lock record after transfer failure", map[string]any{
				"lock_id": string(lock.ID),
				"owner":   lock.Owner,
				"error":   rbErr.Error(),
			})
		}

		transferErr := errs.NewTransferError("in", lock.Owner, lock.Asset.String(), lock.Amount, err)
		s.logger.Error("Deposit transfer failed", map[string]any{
			"lock_id": string(lock.ID),
			"owner":   lock.Owner,
			"asset":   lock.Asset.String(),
			"amount":  lock.Amount,
			"error":   err.Error(),
		})
		return nil, transferErr
	}

	s.logger.Info("Lock created", map[string]any{
		"lock_id":          string(lock.ID),
		"owner":            lock.Owner,
		"asset":            lock.Asset.String(),
		"amount":           lock.Amount,
		"duration_seconds": lock.DurationSeconds,
		"matures_at":       lock.MaturesAt(),
	})

	return lock, nil
}
