package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type WalletsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewWalletsRepository(queryExecuter database.QueryExecuter) *WalletsRepository {
	return &WalletsRepository{
		queryExecuter: queryExecuter,
	}
}

func (wr *WalletsRepository) GetWalletBalance(ctx context.Context, userID string) (int64, error) {
	findWalletSQL := `SELECT balance FROM wallets WHERE user_id = $1`

	var balance int64
	err := wr.queryExecuter.QueryRow(ctx, findWalletSQL, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.WalletNotFoundError{Msg: fmt.Sprintf("wallet for user %s not found", userID)}
		}

		return 0, fmt.Errorf("failed to find wallet: %w", err)
	}

	return balance, nil
}

func (wr *WalletsRepository) EnsureWalletCreated(ctx context.Context, userID string, startBalance int64) error {
	createWalletSQL := `INSERT INTO wallets (user_id, balance) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`

	_, err := wr.queryExecuter.Exec(ctx, createWalletSQL, userID, startBalance)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return nil
}

func (wr *WalletsRepository) DebitWallet(ctx context.Context, executor database.Executor, userID string, amount int64, memo string) (bool, error) {
	debitWalletSQL := `UPDATE wallets SET balance = balance - $1 WHERE user_id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitWalletSQL, amount, userID)
	if err != nil {
		return false, fmt.Errorf("failed to debit wallet: %w", err)
	} else if tag.RowsAffected() == 0 {
		return false, nil
	}

	insertEntrySQL := `INSERT INTO wallet_entries (user_id, amount, memo) VALUES ($1, $2, $3)`
	_, err = executor.Exec(ctx, insertEntrySQL, userID, -amount, memo)
	if err != nil {
		return false, fmt.Errorf("failed to insert wallet entry: %w", err)
	}

	return true, nil
}

func (wr *WalletsRepository) CreditWallet(ctx context.Context, executor database.Executor, userID string, amount int64, memo string) error {
	creditWalletSQL := `INSERT INTO wallets (user_id, balance) VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`
	_, err := executor.Exec(ctx, creditWalletSQL, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	insertEntrySQL := `INSERT INTO wallet_entries (user_id, amount, memo) VALUES ($1, $2, $3)`
	_, err = executor.Exec(ctx, insertEntrySQL, userID, amount, memo)
	if err != nil {
		return fmt.Errorf("failed to insert wallet entry: %w", err)
	}

	return nil
}
