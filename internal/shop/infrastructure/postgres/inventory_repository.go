package postgres

import (
	"context"
	"fmt"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

type InventoryRepository struct {
	querier database.Querier
}

func NewInventoryRepository(querier database.Querier) *InventoryRepository {
	return &InventoryRepository{
		querier: querier,
	}
}

func (ir *InventoryRepository) FetchUserInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	fetchInventorySQL := `SELECT inv.item_id, i.name, i.description, inv.qty
FROM inventory inv
JOIN items i ON i.id = inv.item_id
WHERE inv.user_id = $1 AND inv.qty > 0
ORDER BY i.price DESC`

	rows, err := ir.querier.Query(ctx, fetchInventorySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user inventory: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.InventoryEntry, 0)
	for rows.Next() {
		var entry domain.InventoryEntry
		err = rows.Scan(&entry.ItemID, &entry.Name, &entry.Description, &entry.Qty)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
