package domain

import "context"

type InventoryEntry struct {
	ItemID      int
	Name        string
	Description string
	Qty         int
}

type InventoryRepository interface {
	FetchUserInventory(ctx context.Context, userID string) ([]InventoryEntry, error)
}
