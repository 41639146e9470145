package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	dbmocks "github.com/guildworks/guildshop/gen/mocks/database"
	logmocks "github.com/guildworks/guildshop/gen/mocks/logging"
	shopmocks "github.com/guildworks/guildshop/gen/mocks/shop"
	"github.com/guildworks/guildshop/internal/pkg/database"
	"github.com/guildworks/guildshop/internal/shop/application"
	"github.com/guildworks/guildshop/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerDeps struct {
	items     *shopmocks.MockItemsRepository
	locker    *shopmocks.MockItemLocker
	ledger    *shopmocks.MockWalletLedger
	purchaser *shopmocks.MockPurchaser
	inventory *shopmocks.MockInventoryRepository
	txManager *dbmocks.MockTxManager
	logger    *logmocks.MockLogger
}

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, *handlerDeps) {
	gin.SetMode(gin.TestMode)

	d := &handlerDeps{
		items:     shopmocks.NewMockItemsRepository(ctrl),
		locker:    shopmocks.NewMockItemLocker(ctrl),
		ledger:    shopmocks.NewMockWalletLedger(ctrl),
		purchaser: shopmocks.NewMockPurchaser(ctrl),
		inventory: shopmocks.NewMockInventoryRepository(ctrl),
		txManager: dbmocks.NewMockTxManager(ctrl),
		logger:    logmocks.NewMockLogger(ctrl),
	}

	purchaseCase := application.NewPurchaseCase(d.items, d.locker, d.ledger, d.purchaser, d.txManager)
	catalogCase := application.NewCatalogCase(d.items)
	userInfoCase := application.NewUserInfoCase(d.inventory, d.ledger)

	handler := NewShopHandler(purchaseCase, catalogCase, userInfoCase, d.logger)

	router := gin.New()
	router.POST("/api/purchase", handler.Purchase)
	router.GET("/api/items", handler.ListItems)
	router.GET("/api/items/:"+ItemIDKey, handler.GetItem)
	router.GET("/api/users/:"+UserIDKey+"/inventory", handler.GetInventory)
	router.GET("/api/users/:"+UserIDKey+"/wallet", handler.GetWallet)

	return router, d
}

func TestShopHandler_Purchase(t *testing.T) {
	t.Parallel()

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	item := domain.Item{ID: 10, Name: "vip-role", Price: 100, Enabled: true}

	type testCase struct {
		name string
		body map[string]any

		prepareFn func(t *testing.T, d *handlerDeps)

		expectedStatus int
		expectedCode   string
	}

	tests := []testCase{
		{
			name: "successful purchase",
			body: map[string]any{"user_id": "user-1", "item_id": 10, "quantity": 2},
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.items.EXPECT().GetItemByID(gomock.Any(), 10).Return(item, nil)
				d.ledger.EXPECT().GetWalletBalance(gomock.Any(), "user-1").Return(int64(250), nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.locker.EXPECT().LockItem(gomock.Any(), nil, 10).Return(item, nil)
				d.ledger.EXPECT().DebitWallet(gomock.Any(), nil, "user-1", int64(200), gomock.Any()).Return(true, nil)
				d.purchaser.EXPECT().ProcessPurchase(gomock.Any(), nil, "user-1", item, 2, int64(200)).Return("ref-1", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           map[string]any{"user_id": "user-1"},
			prepareFn:      func(t *testing.T, d *handlerDeps) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   codeInvalidArguments,
		},
		{
			name:           "fractional quantity rejected",
			body:           map[string]any{"user_id": "user-1", "item_id": 10, "quantity": 1.5},
			prepareFn:      func(t *testing.T, d *handlerDeps) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   codeInvalidArguments,
		},
		{
			name: "item not found",
			body: map[string]any{"user_id": "user-1", "item_id": 999, "quantity": 1},
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.items.EXPECT().GetItemByID(gomock.Any(), 999).
					Return(domain.Item{}, &domain.ItemNotFoundError{Msg: "item 999 not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   codeItemNotFound,
		},
		{
			name: "insufficient funds",
			body: map[string]any{"user_id": "user-1", "item_id": 10, "quantity": 1},
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.items.EXPECT().GetItemByID(gomock.Any(), 10).Return(item, nil)
				d.ledger.EXPECT().GetWalletBalance(gomock.Any(), "user-1").Return(int64(50), nil)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedCode:   codeInsufficientFunds,
		},
		{
			name: "out of stock",
			body: map[string]any{"user_id": "user-1", "item_id": 10, "quantity": 2},
			prepareFn: func(t *testing.T, d *handlerDeps) {
				lowStock := item
				stock := 1
				lowStock.Stock = &stock
				d.items.EXPECT().GetItemByID(gomock.Any(), 10).Return(lowStock, nil)
				d.ledger.EXPECT().GetWalletBalance(gomock.Any(), "user-1").Return(int64(250), nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.locker.EXPECT().LockItem(gomock.Any(), nil, 10).Return(lowStock, nil)
			},
			expectedStatus: http.StatusGone,
			expectedCode:   codeOutOfStock,
		},
		{
			name: "store failure stays generic",
			body: map[string]any{"user_id": "user-1", "item_id": 10, "quantity": 1},
			prepareFn: func(t *testing.T, d *handlerDeps) {
				d.items.EXPECT().GetItemByID(gomock.Any(), 10).Return(domain.Item{}, assert.AnError)
				d.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   codeInternal,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, d := newTestRouter(ctrl)
			tt.prepareFn(t, d)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/purchase", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var failure failureResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
				assert.Equal(t, tt.expectedCode, failure.Code)
			}
		})
	}
}

func TestShopHandler_ListItems(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, d := newTestRouter(ctrl)

	d.items.EXPECT().ListItems(gomock.Any(), false).
		Return([]domain.Item{
			{ID: 2, Name: "badge", Price: 50, Enabled: true},
			{ID: 1, Name: "vip-role", Price: 100, Enabled: true},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []itemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "badge", items[0].Name)
	assert.Equal(t, "vip-role", items[1].Name)
}

func TestShopHandler_GetInventory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, d := newTestRouter(ctrl)

	d.inventory.EXPECT().FetchUserInventory(gomock.Any(), "user-1").
		Return([]domain.InventoryEntry{{ItemID: 1, Name: "vip-role", Qty: 2}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/inventory", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []inventoryEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Qty)
}

func TestShopHandler_GetWallet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, d := newTestRouter(ctrl)

	d.ledger.EXPECT().GetWalletBalance(gomock.Any(), "ghost").
		Return(int64(0), &domain.WalletNotFoundError{Msg: "wallet for user ghost not found"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost/wallet", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var failure failureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, codeWalletNotFound, failure.Code)
}
