package application

import (
	"context"
	"fmt"

	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

// Upper bound on units per purchase. Keeps the total well inside int64 for
// any price the items table can hold.
const maxPurchaseQty = 1000

type PurchaseCase struct {
	items     domain.ItemsRepository
	locker    domain.ItemLocker
	ledger    domain.WalletLedger
	purchaser domain.Purchaser
	txManager database.TxManager
}

func NewPurchaseCase(
	items domain.ItemsRepository,
	locker domain.ItemLocker,
	ledger domain.WalletLedger,
	purchaser domain.Purchaser,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		items:     items,
		locker:    locker,
		ledger:    ledger,
		purchaser: purchaser,
		txManager: txManager,
	}
}

// PurchaseItem buys qty units of an item for a user. The checks before the
// transaction are advisory fast-fails; everything is re-validated inside the
// transaction, where the item row lock and the conditional wallet debit are
// the actual correctness mechanism.
func (pc *PurchaseCase) PurchaseItem(ctx context.Context, userID string, itemID int, qty int) (domain.Receipt, error) {
	if qty < 1 {
		qty = 1
	}
	if qty > maxPurchaseQty {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("quantity must not exceed %d", maxPurchaseQty)}
	}

	item, err := pc.items.GetItemByID(ctx, itemID)
	if err != nil {
		return domain.Receipt{}, err
	}
	if !item.Enabled {
		return domain.Receipt{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %d not found", itemID)}
	}

	estimate, err := purchaseTotal(item.Price, qty)
	if err != nil {
		return domain.Receipt{}, err
	}

	balance, err := pc.ledger.GetWalletBalance(ctx, userID)
	if err != nil {
		return domain.Receipt{}, err
	}
	if balance < estimate {
		return domain.Receipt{}, &domain.InsufficientFundsError{Msg: "insufficient funds"}
	}

	var receipt domain.Receipt
	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		locked, err := pc.locker.LockItem(ctx, executor, itemID)
		if err != nil {
			return err
		}
		if !locked.Enabled {
			return &domain.ItemNotEnabledError{Msg: fmt.Sprintf("item %d is not enabled", itemID)}
		}
		if locked.Stock != nil && *locked.Stock < qty {
			return &domain.OutOfStockError{Msg: fmt.Sprintf("item %d is out of stock", itemID)}
		}

		// Total uses the price observed under the lock, not the pre-check one.
		total, err := purchaseTotal(locked.Price, qty)
		if err != nil {
			return err
		}

		debited, err := pc.ledger.DebitWallet(ctx, executor, userID, total, fmt.Sprintf("purchase %s x%d", locked.Name, qty))
		if err != nil {
			return err
		}
		if !debited {
			return &domain.BalanceChangedError{Msg: "wallet balance changed"}
		}

		reference, err := pc.purchaser.ProcessPurchase(ctx, executor, userID, locked, qty, total)
		if err != nil {
			return err
		}

		receipt = domain.Receipt{
			Reference: reference,
			Item:      locked,
			Qty:       qty,
			Total:     total,
		}

		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	return receipt, nil
}

// purchaseTotal multiplies price by qty and rejects the result if the
// multiplication wrapped. A wrapped total is negative and would turn the
// wallet debit into a credit.
func purchaseTotal(price int64, qty int) (int64, error) {
	total := price * int64(qty)
	if price != 0 && total/price != int64(qty) {
		return 0, &domain.InvalidArgumentsError{Msg: "purchase total out of range"}
	}

	return total, nil
}
