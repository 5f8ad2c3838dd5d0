package handlers

import (
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	presetService  portssvc.PresetSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ps portssvc.PresetSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		presetService:  ps,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, presetService portssvc.PresetSvcFacade) {
	h := newAccountHandler(accountService, presetService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/entry-options", h.entryOptions)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account. The category defaults by type when omitted.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or illegal category for the type"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name or role already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", string(req.AccountType)))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the user's accounts ordered by type and name.
// @Tags accounts
// @Produce json
// @Param type query string false "Restrict to one account type" Enums(ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	var accountType *domain.AccountType
	if params.Type != "" {
		t := domain.AccountType(params.Type)
		accountType = &t
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID, accountType)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// entryOptions godoc
// @Summary Entry form options
// @Description Accounts grouped by type for each side of the entry form (no revenue on the debit side, no expense on the credit side) plus the user's presets.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.EntryOptionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/entry-options [get]
func (h *accountHandler) entryOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	options, err := h.accountService.GetEntryOptions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load entry options")
		return
	}
	presets, err := h.presetService.ListPresets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load presets")
		return
	}

	c.JSON(http.StatusOK, dto.EntryOptionsResponse{
		DebitAccounts:  dto.ToAccountGroupResponses(options.Debit),
		CreditAccounts: dto.ToAccountGroupResponses(options.Credit),
		Presets:        dto.ToPresetGroupsResponse(presets),
	})
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	logger.Info("Account updated", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Fails with 409 while transactions still reference the account.
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	accountID := c.Param("id")
	if err := h.accountService.DeleteAccount(c.Request.Context(), userID, accountID); err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}
	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}
