package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guildworks/guildshop/internal/pkg/logging"
	"github.com/guildworks/guildshop/internal/shop/application"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

const UserIDKey = "userId"
const ItemIDKey = "itemId"

type purchaseRequestBody struct {
	UserID   string `json:"user_id" binding:"required"`
	ItemID   int    `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type receiptResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	ItemID    int    `json:"item_id"`
	ItemName  string `json:"item_name"`
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"`
}

type itemResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	RoleID      *string `json:"role_id,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	Enabled     bool    `json:"enabled"`
}

type inventoryEntryResponse struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Qty         int    `json:"qty"`
}

type ShopHandler struct {
	purchaseCase *application.PurchaseCase
	catalogCase  *application.CatalogCase
	userInfoCase *application.UserInfoCase
	logger       logging.Logger
}

func NewShopHandler(
	purchaseCase *application.PurchaseCase,
	catalogCase *application.CatalogCase,
	userInfoCase *application.UserInfoCase,
	logger logging.Logger,
) *ShopHandler {
	return &ShopHandler{
		purchaseCase: purchaseCase,
		catalogCase:  catalogCase,
		userInfoCase: userInfoCase,
		logger:       logger,
	}
}

func (h *ShopHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid request body"})
		return
	}

	receipt, err := h.purchaseCase.PurchaseItem(c, body.UserID, body.ItemID, body.Quantity)
	if err != nil {
		h.logError(err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, receiptResponse{
		Success:   true,
		Reference: receipt.Reference,
		ItemID:    receipt.Item.ID,
		ItemName:  receipt.Item.Name,
		Qty:       receipt.Qty,
		Total:     receipt.Total,
	})
}

func (h *ShopHandler) ListItems(c *gin.Context) {
	includeDisabled := c.Query("include_disabled") == "1"

	items, err := h.catalogCase.ListItems(c, includeDisabled)
	if err != nil {
		h.logError(err)
		handleDomainError(c, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param(ItemIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid item id"})
		return
	}

	item, err := h.catalogCase.GetItem(c, itemID)
	if err != nil {
		h.logError(err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ShopHandler) GetInventory(c *gin.Context) {
	userID := c.Param(UserIDKey)

	entries, err := h.userInfoCase.GetUserInventory(c, userID)
	if err != nil {
		h.logError(err)
		handleDomainError(c, err)
		return
	}

	resp := make([]inventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, inventoryEntryResponse{
			ItemID:      entry.ItemID,
			Name:        entry.Name,
			Description: entry.Description,
			Qty:         entry.Qty,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) GetWallet(c *gin.Context) {
	userID := c.Param(UserIDKey)

	balance, err := h.userInfoCase.GetWalletBalance(c, userID)
	if err != nil {
		h.logError(err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "balance": balance})
}

func (h *ShopHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ShopHandler) logError(err error) {
	if isExpectedFailure(err) {
		return
	}

	h.logger.Error("request failed", "error", err.Error())
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		RoleID:      item.RoleID,
		Stock:       item.Stock,
		Enabled:     item.Enabled,
	}
}
