package http

import (
	"net/http"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
)

const AccountKey = "account"

type mintRequestBody struct {
	To     string `json:"to" binding:"required"`
	Amount uint64 `json:"amount"`
}

type burnRequestBody struct {
	Amount uint64 `json:"amount"`
}

type burnFromRequestBody struct {
	From   string `json:"from" binding:"required"`
	Amount uint64 `json:"amount"`
}

type transferRequestBody struct {
	To     string `json:"to" binding:"required"`
	Amount uint64 `json:"amount"`
}

type LedgerHandler struct {
	ledger      domain.LedgerService
	accountInfo domain.AccountInfoService
	logger      logging.Logger
}

func NewLedgerHandler(ledger domain.LedgerService, accountInfo domain.AccountInfoService, logger logging.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger:      ledger,
		accountInfo: accountInfo,
		logger:      logger,
	}
}

func (h *LedgerHandler) Mint(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body mintRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	err := h.ledger.Mint(c.Request.Context(), caller, domain.Address(body.To), body.Amount)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *LedgerHandler) Burn(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body burnRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	err := h.ledger.Burn(c.Request.Context(), caller, body.Amount)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *LedgerHandler) BurnFrom(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body burnFromRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	err := h.ledger.BurnFrom(c.Request.Context(), caller, domain.Address(body.From), body.Amount)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *LedgerHandler) Transfer(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var body transferRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidBody(c)
		return
	}

	err := h.ledger.Transfer(c.Request.Context(), caller, domain.Address(body.To), body.Amount)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *LedgerHandler) Balance(c *gin.Context) {
	account := domain.Address(c.Param(AccountKey))

	balance, err := h.ledger.Balance(c.Request.Context(), account)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newBalanceResponse(account, balance))
}

func (h *LedgerHandler) Supply(c *gin.Context) {
	supply, err := h.ledger.Supply(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newSupplyResponse(supply))
}

func (h *LedgerHandler) GetInfo(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	info, err := h.accountInfo.GetAccountInfo(c.Request.Context(), caller)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newAccountInfoResponse(info))
}
