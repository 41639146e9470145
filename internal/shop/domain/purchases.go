package domain

import (
	"context"

	"github.com/guildworks/guildshop/internal/pkg/database"
)

// Receipt is the result of a successful purchase: the realized total, the
// item snapshot the transaction actually charged against, and the quantity.
type Receipt struct {
	Reference string
	Item      Item
	Qty       int
	Total     int64
}

type Purchaser interface {
	// ProcessPurchase applies the inventory upsert, the stock decrement for
	// bounded items and the history insert. It must run on the executor of
	// an already open transaction. Returns the purchase reference.
	ProcessPurchase(ctx context.Context, executor database.Executor, userID string, item Item, qty int, total int64) (string, error)
}
