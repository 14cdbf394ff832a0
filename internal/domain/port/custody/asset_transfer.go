package custody

import (
	"context"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// AssetTransfer moves assets between external accounts and the vault's custody
// account. The ledger calls TransferIn exactly once per deposit and TransferOut
// exactly once per withdrawal; it never retries a failed transfer on its own.
type AssetTransfer interface {
	// TransferIn pulls amount of asset from the given account into custody
	// Returns ErrInsufficientFunds if the account cannot cover the amount
	// Returns ErrAccountNotFound if the account doesn't exist
	TransferIn(ctx context.Context, from string, asset entity.Asset, amount int64) error

	// TransferOut releases amount of asset from custody to the given account
	TransferOut(ctx context.Context, to string, asset entity.Asset, amount int64) error
}

// CustodyAuditor exposes the custody side of the solvency check
type CustodyAuditor interface {
	// CustodiedBalance returns how much of the given asset the vault currently
	// holds in custody
	CustodiedBalance(ctx context.Context, asset entity.Asset) (int64, error)
}
