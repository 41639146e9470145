package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

type Purchaser struct {
}

func NewPurchaser() *Purchaser {
	return &Purchaser{}
}

func (p *Purchaser) ProcessPurchase(ctx context.Context, executor database.Executor, userID string, item domain.Item, qty int, total int64) (string, error) {
	upsertInventorySQL := `INSERT INTO inventory (user_id, item_id, qty) VALUES ($1, $2, $3)
ON CONFLICT (user_id, item_id) DO UPDATE SET qty = inventory.qty + EXCLUDED.qty`
	_, err := executor.Exec(ctx, upsertInventorySQL, userID, item.ID, qty)
	if err != nil {
		return "", fmt.Errorf("failed to upsert inventory row: %w", err)
	}

	if item.Stock != nil {
		// Conditional even under the row lock, so stock can never go negative.
		decrementStockSQL := `UPDATE items SET stock = stock - $1 WHERE id = $2 AND stock >= $1`
		tag, err := executor.Exec(ctx, decrementStockSQL, qty, item.ID)
		if err != nil {
			return "", fmt.Errorf("failed to decrement item stock: %w", err)
		} else if tag.RowsAffected() == 0 {
			return "", &domain.OutOfStockError{Msg: fmt.Sprintf("item %d is out of stock", item.ID)}
		}
	}

	reference := uuid.NewString()

	insertPurchaseSQL := `INSERT INTO purchases (reference, user_id, item_id, qty, amount) VALUES ($1, $2, $3, $4, $5)`
	_, err = executor.Exec(ctx, insertPurchaseSQL, reference, userID, item.ID, qty, total)
	if err != nil {
		return "", fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return reference, nil
}
