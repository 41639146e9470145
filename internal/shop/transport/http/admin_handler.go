package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guildworks/guildshop/internal/pkg/logging"
	"github.com/guildworks/guildshop/internal/shop/application"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

type upsertItemRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	RoleID      *string `json:"role_id"`
	Stock       *int    `json:"stock"`
	Enabled     *bool   `json:"enabled"`
}

type setEnabledRequestBody struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type creditWalletRequestBody struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Memo   string `json:"memo"`
}

type ensureWalletRequestBody struct {
	StartBalance int64 `json:"start_balance" binding:"gte=0"`
}

type AdminHandler struct {
	adminCase *application.AdminCase
	logger    logging.Logger
}

func NewAdminHandler(adminCase *application.AdminCase, logger logging.Logger) *AdminHandler {
	return &AdminHandler{
		adminCase: adminCase,
		logger:    logger,
	}
}

func (h *AdminHandler) UpsertItem(c *gin.Context) {
	var body upsertItemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid request body"})
		return
	}

	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}

	item, err := h.adminCase.UpsertItem(c, domain.Item{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		RoleID:      body.RoleID,
		Stock:       body.Stock,
		Enabled:     enabled,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *AdminHandler) SetItemEnabled(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param(ItemIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid item id"})
		return
	}

	var body setEnabledRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid request body"})
		return
	}

	if err := h.adminCase.SetItemEnabled(c, itemID, *body.Enabled); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *AdminHandler) EnsureWallet(c *gin.Context) {
	userID := c.Param(UserIDKey)

	var body ensureWalletRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid request body"})
		return
	}

	if err := h.adminCase.EnsureWallet(c, userID, body.StartBalance); err != nil {
		h.logger.Error("failed to ensure wallet", "user", userID, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *AdminHandler) CreditWallet(c *gin.Context) {
	userID := c.Param(UserIDKey)

	var body creditWalletRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: "invalid request body"})
		return
	}

	if err := h.adminCase.CreditWallet(c, userID, body.Amount, body.Memo); err != nil {
		h.logger.Error("failed to credit wallet", "user", userID, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
