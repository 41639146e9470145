package application

import (
	"context"

	"github.com/guildworks/guildshop/internal/shop/domain"
)

type UserInfoCase struct {
	inventory domain.InventoryRepository
	ledger    domain.WalletLedger
}

func NewUserInfoCase(inventory domain.InventoryRepository, ledger domain.WalletLedger) *UserInfoCase {
	return &UserInfoCase{
		inventory: inventory,
		ledger:    ledger,
	}
}

func (uc *UserInfoCase) GetUserInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return uc.inventory.FetchUserInventory(ctx, userID)
}

func (uc *UserInfoCase) GetWalletBalance(ctx context.Context, userID string) (int64, error) {
	return uc.ledger.GetWalletBalance(ctx, userID)
}
