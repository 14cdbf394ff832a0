package migration

import (
	"context"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// AccountCreditor seeds funds into custody accounts outside the deposit flow
type AccountCreditor interface {
	Credit(ctx context.Context, account string, asset entity.Asset, amount int64) error
	AccountBalance(ctx context.Context, account string, asset entity.Asset) (int64, error)
}

// Default demo accounts and their starting balances in base units
var defaultAccounts = []struct {
	account string
	asset   entity.Asset
	amount  int64
}{
	{"alice", entity.NativeAsset(), 100000},
	{"bob", entity.NativeAsset(), 200000},
	{"carol", entity.TokenAsset("usd-cent"), 300000},
}

// CreateDefaultAccounts seeds the default demo accounts with starting funds.
// Accounts that already hold a balance are left untouched so restarts do not
// double-fund them.
func CreateDefaultAccounts(ctx context.Context, bank AccountCreditor) error {
	for _, seed := range defaultAccounts {
		balance, err := bank.AccountBalance(ctx, seed.account, seed.asset)
		if err != nil {
			return err
		}

		if balance == 0 {
			if err := bank.Credit(ctx, seed.account, seed.asset, seed.amount); err != nil {
				return err
			}
		}
	}

	return nil
}
