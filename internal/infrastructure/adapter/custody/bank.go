package custody

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/model"
)

// Bank implements asset custody on GORM. Account balances live in
// custody_balances keyed by account and asset; the vault is the "@vault" row.
// Every movement runs in a SERIALIZABLE transaction that locks both balance
// rows and appends one journal entry, so balances and journal never drift.
type Bank struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
	collector    *database.MetricsCollector
	retry        database.RetryConfig
}

// NewBank creates a database-backed custody bank
func NewBank(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *Bank {
	return &Bank{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
		collector:    database.NewMetricsCollector(logger, timeProvider),
		retry:        database.DefaultRetryConfig(),
	}
}

// lockBalanceRow reads an account's balance row FOR UPDATE, creating it at
// zero when createIfMissing is set
func (b *Bank) lockBalanceRow(tx *gorm.DB, account string, asset entity.Asset, createIfMissing bool) (*model.CustodyBalance, error) {
	now := b.timeProvider.Now()

	var row model.CustodyBalance
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(model.CustodyBalance{AccountID: account, Asset: asset.String()})

	if createIfMissing {
		result := query.Attrs(model.CustodyBalance{CreatedAt: now, UpdatedAt: now}).FirstOrCreate(&row)
		if result.Error != nil {
			return nil, result.Error
		}
		return &row, nil
	}

	result := query.First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", errs.ErrAccountNotFound, account)
		}
		return nil, result.Error
	}
	return &row, nil
}

// setBalance writes an account's new balance
func (b *Bank) setBalance(tx *gorm.DB, account string, asset entity.Asset, balance int64) error {
	return tx.Model(&model.CustodyBalance{}).
		Where("account_id = ? AND asset = ?", account, asset.String()).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": b.timeProvider.Now(),
		}).Error
}

// appendJournal records one custody movement
func (b *Bank) appendJournal(tx *gorm.DB, direction, account string, asset entity.Asset, amount int64) error {
	return tx.Create(&model.CustodyJournalEntry{
		EntryID:   uuid.NewString(),
		Direction: direction,
		AccountID: account,
		Asset:     asset.String(),
		Amount:    amount,
		CreatedAt: b.timeProvider.Now(),
	}).Error
}

// mapError translates database failures into domain errors
func (b *Bank) mapError(operation string, err error, account string) error {
	if errors.Is(err, errs.ErrAccountNotFound) ||
		errors.Is(err, errs.ErrInsufficientFunds) ||
		errors.Is(err, errs.ErrNonPositiveAmount) {
		return err
	}

	b.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account": account,
		"error":   err.Error(),
	})

	return b.errorMapper.MapError(err, operation)
}

// TransferIn pulls amount of asset from the given account into the vault
func (b *Bank) TransferIn(ctx context.Context, from string, asset entity.Asset, amount int64) error {
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	_, err := b.collector.MeasureQuery(ctx, "custody_transfer_in", func() (int64, error) {
		err := database.RetryOnTransientError(ctx, b.retry, func() error {
			return database.RunSerializable(ctx, b.db, b.logger, func(tx *gorm.DB) error {
				source, err := b.lockBalanceRow(tx, from, asset, false)
				if err != nil {
					return err
				}
				if source.Balance < amount {
					b.logger.Warn("Account cannot cover deposit", map[string]any{
						"account": from,
						"asset":   asset.String(),
						"amount":  amount,
						"balance": source.Balance,
					})
					return errs.ErrInsufficientFunds
				}

				vault, err := b.lockBalanceRow(tx, VaultAccount, asset, true)
				if err != nil {
					return err
				}

				if err := b.setBalance(tx, from, asset, source.Balance-amount); err != nil {
					return err
				}
				if err := b.setBalance(tx, VaultAccount, asset, vault.Balance+amount); err != nil {
					return err
				}
				return b.appendJournal(tx, "in", from, asset, amount)
			})
		}, b.logger)
		return 2, err
	})
	if err != nil {
		return b.mapError("pulling deposit into custody", err, from)
	}

	return nil
}

// TransferOut releases amount of asset from the vault to the given account.
// The receiving balance row is created if the account has never held this
// asset before.
func (b *Bank) TransferOut(ctx context.Context, to string, asset entity.Asset, amount int64) error {
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	_, err := b.collector.MeasureQuery(ctx, "custody_transfer_out", func() (int64, error) {
		err := database.RetryOnTransientError(ctx, b.retry, func() error {
			return database.RunSerializable(ctx, b.db, b.logger, func(tx *gorm.DB) error {
				vault, err := b.lockBalanceRow(tx, VaultAccount, asset, true)
				if err != nil {
					return err
				}
				if vault.Balance < amount {
					b.logger.Error("Vault cannot cover payout", map[string]any{
						"account":   to,
						"asset":     asset.String(),
						"amount":    amount,
						"custodied": vault.Balance,
					})
					return fmt.Errorf("%w: vault cannot cover payout", errs.ErrInsufficientFunds)
				}

				target, err := b.lockBalanceRow(tx, to, asset, true)
				if err != nil {
					return err
				}

				if err := b.setBalance(tx, VaultAccount, asset, vault.Balance-amount); err != nil {
					return err
				}
				if err := b.setBalance(tx, to, asset, target.Balance+amount); err != nil {
					return err
				}
				return b.appendJournal(tx, "out", to, asset, amount)
			})
		}, b.logger)
		return 2, err
	})
	if err != nil {
		return b.mapError("releasing payout from custody", err, to)
	}

	return nil
}

// Credit puts amount of asset into an account outside the deposit flow. It
// exists for seeding demo accounts; transfers never use it.
func (b *Bank) Credit(ctx context.Context, account string, asset entity.Asset, amount int64) error {
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	err := database.RunSerializable(ctx, b.db, b.logger, func(tx *gorm.DB) error {
		row, err := b.lockBalanceRow(tx, account, asset, true)
		if err != nil {
			return err
		}
		if err := b.setBalance(tx, account, asset, row.Balance+amount); err != nil {
			return err
		}
		return b.appendJournal(tx, "seed", account, asset, amount)
	})
	if err != nil {
		return b.mapError("crediting account", err, account)
	}

	return nil
}

// AccountBalance returns how much of the given asset an account holds.
// Accounts with no balance row hold zero.
func (b *Bank) AccountBalance(ctx context.Context, account string, asset entity.Asset) (int64, error) {
	var row model.CustodyBalance
	result := b.db.WithContext(ctx).
		Where("account_id = ? AND asset = ?", account, asset.String()).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, b.mapError("reading account balance", result.Error, account)
	}

	return row.Balance, nil
}

// CustodiedBalance returns how much of the given asset the vault holds
func (b *Bank) CustodiedBalance(ctx context.Context, asset entity.Asset) (int64, error) {
	var row model.CustodyBalance
	result := b.db.WithContext(ctx).
		Where("account_id = ? AND asset = ?", VaultAccount, asset.String()).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, b.mapError("reading custodied balance", result.Error, VaultAccount)
	}

	return row.Balance, nil
}
