package domain

import (
	"context"

	"github.com/guildworks/guildshop/internal/pkg/database"
)

// Item is a catalog entry. A nil Stock means the item is unlimited.
type Item struct {
	ID          int
	Name        string
	Description string
	Price       int64
	RoleID      *string
	Stock       *int
	Enabled     bool
}

type ItemsRepository interface {
	GetItemByID(ctx context.Context, itemID int) (Item, error)
	ListItems(ctx context.Context, includeDisabled bool) ([]Item, error)
}

// ItemLocker re-reads an item row with a row lock so that stock checks and
// decrements serialize across concurrent purchases.
type ItemLocker interface {
	LockItem(ctx context.Context, querier database.Querier, itemID int) (Item, error)
}

type CatalogAdmin interface {
	UpsertItem(ctx context.Context, item Item) (Item, error)
	SetItemEnabled(ctx context.Context, itemID int, enabled bool) error
}
