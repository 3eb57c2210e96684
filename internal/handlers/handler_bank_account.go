package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ediba/backoffice_app/internal/apperrors"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles HTTP requests related to bank accounts.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

// newBankAccountHandler creates a new bankAccountHandler.
func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{
		bankAccountService: bs,
	}
}

// registerBankAccountRoutes registers all bank-account-related routes.
func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bankAccountService)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:bankAccountID", h.getBankAccount)
		accounts.PUT("/:bankAccountID", h.updateBankAccount)
		accounts.DELETE("/:bankAccountID", h.deleteBankAccount)
	}
}

// createBankAccount godoc
// @Summary Register a bank account
// @Description Registers a company bank account
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create bank account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create bank account in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bank account"})
		return
	}

	logger.Info("Bank account created", slog.String("bank_account_id", account.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Description Retrieves all registered bank accounts
// @Tags bank-accounts
// @Produce  json
// @Success 200 {object} dto.ListBankAccountsResponse
// @Failure 500 {object} map[string]string "Failed to list bank accounts"
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bank accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bank accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankAccountsResponse(accounts))
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Description Retrieves details for a specific bank account
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank account"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), bankAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Error("Failed to get bank account", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bank account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Applies a partial update to a bank account
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to update bank account"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update bank account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), bankAccountID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Error("Failed to update bank account", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bank account"})
		return
	}

	logger.Info("Bank account updated", slog.String("bank_account_id", bankAccountID))
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// deleteBankAccount godoc
// @Summary Delete a bank account
// @Description Removes a bank account record
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 204 "Bank account deleted"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to delete bank account"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [delete]
func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), bankAccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		logger.Error("Failed to delete bank account", slog.String("error", err.Error()), slog.String("bank_account_id", bankAccountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bank account"})
		return
	}

	logger.Info("Bank account deleted", slog.String("bank_account_id", bankAccountID))
	c.Status(http.StatusNoContent)
}
