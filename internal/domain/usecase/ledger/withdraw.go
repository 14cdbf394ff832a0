package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	usecase "github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
)

// Withdraw pays the lock out to the caller. Only the current owner may
// withdraw, and only once the lock period has elapsed. Early withdrawal does
// not exist, there is no force path.
//
// The record is removed before the funds move. If the payout transfer fails
// afterwards the lock stays removed and the failure is surfaced; a withdrawal
// is never retried and a removed lock is never resurrected, so funds can never
// be paid out twice for one lock.
func (s *Service) Withdraw(ctx context.Context, caller string, id entity.LockID) (*usecase.WithdrawReceipt, error) {
	if err := entity.ValidateAccountID(caller); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errs.ErrInvalidLockID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := lock.Owner
	if s.registry != nil {
		owner, err = s.registry.OwnerOf(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to resolve lock owner: %s", errs.ErrInternalServer, err.Error())
		}
	}
	if caller != owner {
		return nil, errs.NewLockError(string(id), caller, "withdraw", errs.ErrNotOwner)
	}

	now := s.timeProvider.Now()
	if !lock.Matured(now) {
		return nil, errs.NewNotMaturedError(string(id), lock.MaturesAt(), now)
	}

	if err := s.store.Remove(ctx, id); err != nil {
		s.logger.Error("Failed to remove lock record", map[string]any{
			"lock_id": string(id),
			"caller":  caller,
			"error":   err.Error(),
		})
		return nil, err
	}
	lock.MarkWithdrawn(s.timeProvider)

	if err := s.transfer.TransferOut(ctx, caller, lock.Asset, lock.Amount); err != nil {
		transferErr := errs.NewTransferError("out", caller, lock.Asset.String(), lock.Amount, err)
		s.logger.Error("Payout transfer failed after record removal, funds need manual release", map[string]any{
			"lock_id": string(id),
			"caller":  caller,
			"asset":   lock.Asset.String(),
			"amount":  lock.Amount,
			"error":   err.Error(),
		})
		return nil, transferErr
	}

	s.logger.Info("Lock withdrawn", map[string]any{
		"lock_id": string(id),
		"owner":   caller,
		"asset":   lock.Asset.String(),
		"amount":  lock.Amount,
	})

	return &usecase.WithdrawReceipt{
		LockID:      id,
		Owner:       caller,
		Asset:       lock.Asset,
		Amount:      lock.Amount,
		WithdrawnAt: *lock.WithdrawnAt,
	}, nil
}
