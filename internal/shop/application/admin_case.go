package application

import (
	"context"
	"strings"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

type AdminCase struct {
	catalog   domain.CatalogAdmin
	ledger    domain.WalletLedger
	txManager database.TxManager
}

func NewAdminCase(catalog domain.CatalogAdmin, ledger domain.WalletLedger, txManager database.TxManager) *AdminCase {
	return &AdminCase{
		catalog:   catalog,
		ledger:    ledger,
		txManager: txManager,
	}
}

func (ac *AdminCase) UpsertItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item name must not be empty"}
	}
	if item.Price < 0 {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item price must not be negative"}
	}
	if item.Stock != nil && *item.Stock < 0 {
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item stock must not be negative"}
	}

	return ac.catalog.UpsertItem(ctx, item)
}

func (ac *AdminCase) SetItemEnabled(ctx context.Context, itemID int, enabled bool) error {
	return ac.catalog.SetItemEnabled(ctx, itemID, enabled)
}

func (ac *AdminCase) EnsureWallet(ctx context.Context, userID string, startBalance int64) error {
	if startBalance < 0 {
		return &domain.InvalidArgumentsError{Msg: "start balance must not be negative"}
	}

	return ac.ledger.EnsureWalletCreated(ctx, userID, startBalance)
}

func (ac *AdminCase) CreditWallet(ctx context.Context, userID string, amount int64, memo string) error {
	if amount <= 0 {
		return &domain.InvalidArgumentsError{Msg: "credit amount must be positive"}
	}

	return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		return ac.ledger.CreditWallet(ctx, executor, userID, amount, memo)
	})
}
