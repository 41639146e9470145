package application

import (
	"context"

	"github.com/guildworks/guildshop/internal/shop/domain"
)

type CatalogCase struct {
	items domain.ItemsRepository
}

func NewCatalogCase(items domain.ItemsRepository) *CatalogCase {
	return &CatalogCase{
		items: items,
	}
}

func (cc *CatalogCase) ListItems(ctx context.Context, includeDisabled bool) ([]domain.Item, error) {
	return cc.items.ListItems(ctx, includeDisabled)
}

func (cc *CatalogCase) GetItem(ctx context.Context, itemID int) (domain.Item, error) {
	return cc.items.GetItemByID(ctx, itemID)
}
