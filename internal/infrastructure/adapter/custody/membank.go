package custody

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
)

// VaultAccount is the account custodied funds live in. It uses the reserved
// "@" prefix so no external account can ever collide with it.
const VaultAccount = "@vault"

// MemoryBank implements asset custody in process memory. It backs the "memory"
// custody mode and the unit tests. Accounts are created by seeding or by
// receiving a payout; pulling from an unknown account fails.
type MemoryBank struct {
	logger coreport.Logger

	mu       sync.Mutex
	accounts map[string]map[entity.Asset]int64
}

// NewMemoryBank creates an in-memory bank holding only the empty vault
func NewMemoryBank(logger coreport.Logger) *MemoryBank {
	return &MemoryBank{
		logger: logger,
		accounts: map[string]map[entity.Asset]int64{
			VaultAccount: {},
		},
	}
}

// Credit puts amount of asset into an account, creating the account if needed.
// It exists for seeding demo accounts and tests; transfers never use it.
func (b *MemoryBank) Credit(ctx context.Context, account string, asset entity.Asset, amount int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	balances, ok := b.accounts[account]
	if !ok {
		balances = make(map[entity.Asset]int64)
		b.accounts[account] = balances
	}

	if balances[asset] > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}
	balances[asset] += amount

	return nil
}

// BalanceOf reports an account's balance for an asset. Unknown accounts hold
// nothing.
func (b *MemoryBank) BalanceOf(account string, asset entity.Asset) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	balances, ok := b.accounts[account]
	if !ok {
		return 0
	}
	return balances[asset]
}

// AccountBalance is BalanceOf behind the context-aware seeding interface
func (b *MemoryBank) AccountBalance(ctx context.Context, account string, asset entity.Asset) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.BalanceOf(account, asset), nil
}

// TransferIn pulls amount of asset from the given account into the vault
func (b *MemoryBank) TransferIn(ctx context.Context, from string, asset entity.Asset, amount int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	balances, ok := b.accounts[from]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrAccountNotFound, from)
	}
	if balances[asset] < amount {
		b.logger.Warn("Account cannot cover deposit", map[string]any{
			"account": from,
			"asset":   asset.String(),
			"amount":  amount,
			"balance": balances[asset],
		})
		return errs.ErrInsufficientFunds
	}

	vault := b.accounts[VaultAccount]
	if vault[asset] > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}

	balances[asset] -= amount
	vault[asset] += amount

	return nil
}

// TransferOut releases amount of asset from the vault to the given account.
// The receiving account is created if it doesn't exist yet.
func (b *MemoryBank) TransferOut(ctx context.Context, to string, asset entity.Asset, amount int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vault := b.accounts[VaultAccount]
	if vault[asset] < amount {
		b.logger.Error("Vault cannot cover payout", map[string]any{
			"account":   to,
			"asset":     asset.String(),
			"amount":    amount,
			"custodied": vault[asset],
		})
		return fmt.Errorf("%w: vault cannot cover payout", errs.ErrInsufficientFunds)
	}

	balances, ok := b.accounts[to]
	if !ok {
		balances = make(map[entity.Asset]int64)
		b.accounts[to] = balances
	}
	if balances[asset] > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}

	vault[asset] -= amount
	balances[asset] += amount

	return nil
}

// CustodiedBalance returns how much of the given asset the vault holds
func (b *MemoryBank) CustodiedBalance(ctx context.Context, asset entity.Asset) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.accounts[VaultAccount][asset], nil
}
