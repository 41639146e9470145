package domain

import (
	"context"

	"github.com/guildworks/guildshop/internal/pkg/database"
)

type WalletLedger interface {
	GetWalletBalance(ctx context.Context, userID string) (int64, error)

	// EnsureWalletCreated seeds a wallet with startBalance when the user has
	// none yet. An existing wallet is left untouched.
	EnsureWalletCreated(ctx context.Context, userID string, startBalance int64) error

	// DebitWallet decrements the balance only if it still covers amount at
	// the moment of the write. Returns false when the wallet is missing or
	// the balance no longer suffices.
	DebitWallet(ctx context.Context, executor database.Executor, userID string, amount int64, memo string) (bool, error)

	// CreditWallet adds amount and journals the entry. Transaction-scoped
	// like the debit, so a credit can never land without its ledger row.
	CreditWallet(ctx context.Context, executor database.Executor, userID string, amount int64, memo string) error
}
