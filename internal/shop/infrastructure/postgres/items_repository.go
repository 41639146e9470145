package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type ItemsRepository struct {
	querier database.Querier
}

func NewItemsRepository(querier database.Querier) *ItemsRepository {
	return &ItemsRepository{
		querier: querier,
	}
}

func (ir *ItemsRepository) GetItemByID(ctx context.Context, itemID int) (domain.Item, error) {
	findItemSQL := `SELECT id, name, description, price, role_id, stock, enabled FROM items WHERE id = $1`

	var item domain.Item
	err := ir.querier.QueryRow(ctx, findItemSQL, itemID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.RoleID, &item.Stock, &item.Enabled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemID)}
		}

		return domain.Item{}, fmt.Errorf("failed to find item: %w", err)
	}

	return item, nil
}

func (ir *ItemsRepository) ListItems(ctx context.Context, includeDisabled bool) ([]domain.Item, error) {
	listItemsSQL := `SELECT id, name, description, price, role_id, stock, enabled FROM items
WHERE enabled OR $1
ORDER BY price ASC, id ASC`

	rows, err := ir.querier.Query(ctx, listItemsSQL, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		err = rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.RoleID, &item.Stock, &item.Enabled)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type ItemLocker struct {
}

func NewItemLocker() *ItemLocker {
	return &ItemLocker{}
}

// LockItem re-reads the item row with a row lock held until the surrounding
// transaction ends, so concurrent purchases of the same item serialize here.
func (il *ItemLocker) LockItem(ctx context.Context, querier database.Querier, itemID int) (domain.Item, error) {
	lockItemSQL := `SELECT id, name, description, price, role_id, stock, enabled FROM items WHERE id = $1 FOR UPDATE`

	var item domain.Item
	err := querier.QueryRow(ctx, lockItemSQL, itemID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.RoleID, &item.Stock, &item.Enabled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemID)}
		}

		return domain.Item{}, fmt.Errorf("failed to lock item row: %w", err)
	}

	return item, nil
}
