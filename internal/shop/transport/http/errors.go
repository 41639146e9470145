package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guildworks/guildshop/internal/shop/domain"
)

const (
	codeItemNotFound      = "ITEM_NOT_FOUND"
	codeItemNotEnabled    = "ITEM_NOT_ENABLED"
	codeOutOfStock        = "OUT_OF_STOCK"
	codeInsufficientFunds = "INSUFFICIENT_FUNDS"
	codeBalanceChanged    = "BALANCE_CHANGED"
	codeWalletNotFound    = "WALLET_NOT_FOUND"
	codeInvalidArguments  = "INVALID_ARGUMENTS"
	codeInternal          = "INTERNAL"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func isExpectedFailure(err error) bool {
	return errors.Is(err, &domain.ItemNotFoundError{}) ||
		errors.Is(err, &domain.ItemNotEnabledError{}) ||
		errors.Is(err, &domain.OutOfStockError{}) ||
		errors.Is(err, &domain.InsufficientFundsError{}) ||
		errors.Is(err, &domain.BalanceChangedError{}) ||
		errors.Is(err, &domain.WalletNotFoundError{}) ||
		errors.Is(err, &domain.InvalidArgumentsError{})
}

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.ItemNotFoundError{}):
		c.JSON(http.StatusNotFound, failureResponse{Code: codeItemNotFound, Message: err.Error()})
	case errors.Is(err, &domain.ItemNotEnabledError{}):
		c.JSON(http.StatusConflict, failureResponse{Code: codeItemNotEnabled, Message: err.Error()})
	case errors.Is(err, &domain.OutOfStockError{}):
		c.JSON(http.StatusGone, failureResponse{Code: codeOutOfStock, Message: err.Error()})
	case errors.Is(err, &domain.InsufficientFundsError{}):
		c.JSON(http.StatusPaymentRequired, failureResponse{Code: codeInsufficientFunds, Message: err.Error()})
	case errors.Is(err, &domain.BalanceChangedError{}):
		c.JSON(http.StatusConflict, failureResponse{Code: codeBalanceChanged, Message: err.Error()})
	case errors.Is(err, &domain.WalletNotFoundError{}):
		c.JSON(http.StatusNotFound, failureResponse{Code: codeWalletNotFound, Message: err.Error()})
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, failureResponse{Code: codeInvalidArguments, Message: err.Error()})
	default:
		// Store-level failures stay generic, no raw messages as outcome codes.
		c.JSON(http.StatusInternalServerError, failureResponse{Code: codeInternal, Message: "internal server error"})
	}
}
