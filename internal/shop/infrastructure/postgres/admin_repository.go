package postgres

import (
	"context"
	"fmt"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

type AdminRepository struct {
	queryExecuter database.QueryExecuter
}

func NewAdminRepository(queryExecuter database.QueryExecuter) *AdminRepository {
	return &AdminRepository{
		queryExecuter: queryExecuter,
	}
}

func (ar *AdminRepository) UpsertItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	upsertItemSQL := `INSERT INTO items (name, description, price, role_id, stock, enabled)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (name) DO UPDATE SET
	description = EXCLUDED.description,
	price = EXCLUDED.price,
	role_id = EXCLUDED.role_id,
	stock = EXCLUDED.stock,
	enabled = EXCLUDED.enabled
RETURNING id, name, description, price, role_id, stock, enabled`

	var stored domain.Item
	err := ar.queryExecuter.QueryRow(ctx, upsertItemSQL,
		item.Name, item.Description, item.Price, item.RoleID, item.Stock, item.Enabled).
		Scan(&stored.ID, &stored.Name, &stored.Description, &stored.Price, &stored.RoleID, &stored.Stock, &stored.Enabled)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to upsert item: %w", err)
	}

	return stored, nil
}

func (ar *AdminRepository) SetItemEnabled(ctx context.Context, itemID int, enabled bool) error {
	setEnabledSQL := `UPDATE items SET enabled = $1 WHERE id = $2`

	tag, err := ar.queryExecuter.Exec(ctx, setEnabledSQL, enabled, itemID)
	if err != nil {
		return fmt.Errorf("failed to update item enabled flag: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemID)}
	}

	return nil
}
