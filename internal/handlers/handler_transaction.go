package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles entry submissions and the ledger views.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.getLedger)
		txns.GET("/recent", h.listRecent)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record an entry
// @Description Stores one entry. An item written as "name//N" is split into N monthly installments; a purchase paid with the check card also records its settlement from cash. All rows are stored atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param entry body dto.CreateTransactionRequest true "Entry"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown account"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.transactionService.RecordEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	logger.Info("Entry recorded", slog.Int("rows", len(result.Transactions)), slog.Int("warnings", len(result.Warnings)))
	c.JSON(http.StatusCreated, dto.ToCreateTransactionResponse(result))
}

// getLedger godoc
// @Summary Ledger view
// @Description Filtered transactions, newest first. With an account selected each row carries that account's running balance.
// @Tags transactions
// @Produce json
// @Param account query string false "Account on either side"
// @Param debit_account query string false "Debit account"
// @Param credit_account query string false "Credit account"
// @Param item query string false "Item contains (case-insensitive)"
// @Param memo query string false "Memo contains (case-insensitive)"
// @Param year query int false "Year of a calendar month window"
// @Param month query int false "Month of a calendar month window"
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	ledger, err := h.transactionService.GetLedger(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to load ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// listRecent godoc
// @Summary Recently entered transactions
// @Description Newest rows by creation time, paginated with an opaque token.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRecentTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/recent [get]
func (h *transactionHandler) listRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListRecentTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	txns, next, err := h.transactionService.ListRecentTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list recent transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListRecentTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    next,
	})
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the editable fields of one row. Installment syntax is not expanded on update.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}
	logger.Info("Transaction updated", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txnID := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, txnID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}
	logger.Info("Transaction deleted", slog.String("transaction_id", txnID))
	c.Status(http.StatusNoContent)
}
