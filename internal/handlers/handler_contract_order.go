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

// contractOrderHandler handles HTTP requests related to formal contract and
// purchase order documents.
type contractOrderHandler struct {
	contractOrderService portssvc.ContractOrderSvcFacade
}

// newContractOrderHandler creates a new contractOrderHandler.
func newContractOrderHandler(cs portssvc.ContractOrderSvcFacade) *contractOrderHandler {
	return &contractOrderHandler{
		contractOrderService: cs,
	}
}

// registerContractOrderRoutes registers all contract order routes.
func registerContractOrderRoutes(rg *gin.RouterGroup, contractOrderService portssvc.ContractOrderSvcFacade) {
	h := newContractOrderHandler(contractOrderService)

	contractOrders := rg.Group("/contract-orders")
	{
		contractOrders.POST("", h.createContractOrder)
		contractOrders.GET("", h.listContractOrders)
		contractOrders.GET("/:contractOrderID", h.getContractOrder)
		contractOrders.PUT("/:contractOrderID", h.updateContractOrder)
		contractOrders.DELETE("/:contractOrderID", h.deleteContractOrder)
	}
}

// createContractOrder godoc
// @Summary Create a contract or purchase order document
// @Description Creates a contract order; contracts and orders share one id sequence
// @Tags contract-orders
// @Accept  json
// @Produce  json
// @Param   contractOrder body dto.CreateContractOrderRequest true "Contract order details"
// @Success 201 {object} dto.ContractOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create contract order"
// @Security BearerAuth
// @Router /contract-orders [post]
func (h *contractOrderHandler) createContractOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContractOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create contract order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contractOrder, err := h.contractOrderService.CreateContractOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create contract order in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract order"})
		return
	}

	logger.Info("Contract order created", slog.String("contract_order_id", contractOrder.ContractOrderID))
	c.JSON(http.StatusCreated, dto.ToContractOrderResponse(contractOrder))
}

// listContractOrders godoc
// @Summary List contract orders
// @Description Retrieves contract orders with pagination, newest first
// @Tags contract-orders
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListContractOrdersResponse
// @Failure 500 {object} map[string]string "Failed to list contract orders"
// @Security BearerAuth
// @Router /contract-orders [get]
func (h *contractOrderHandler) listContractOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	contractOrders, err := h.contractOrderService.ListContractOrders(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list contract orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contract orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListContractOrdersResponse(contractOrders))
}

// getContractOrder godoc
// @Summary Get a contract order by ID
// @Description Retrieves a single contract order
// @Tags contract-orders
// @Produce  json
// @Param   contractOrderID path string true "Contract order ID"
// @Success 200 {object} dto.ContractOrderResponse
// @Failure 404 {object} map[string]string "Contract order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve contract order"
// @Security BearerAuth
// @Router /contract-orders/{contractOrderID} [get]
func (h *contractOrderHandler) getContractOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractOrderID := c.Param("contractOrderID")

	contractOrder, err := h.contractOrderService.GetContractOrderByID(c.Request.Context(), contractOrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract order not found"})
			return
		}
		logger.Error("Failed to get contract order", slog.String("error", err.Error()), slog.String("contract_order_id", contractOrderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contract order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContractOrderResponse(contractOrder))
}

// updateContractOrder godoc
// @Summary Update a contract order
// @Description Applies a partial update to a contract order's mutable fields
// @Tags contract-orders
// @Accept  json
// @Produce  json
// @Param   contractOrderID path string true "Contract order ID"
// @Param   contractOrder body dto.UpdateContractOrderRequest true "Fields to update"
// @Success 200 {object} dto.ContractOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Contract order not found"
// @Failure 500 {object} map[string]string "Failed to update contract order"
// @Security BearerAuth
// @Router /contract-orders/{contractOrderID} [put]
func (h *contractOrderHandler) updateContractOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractOrderID := c.Param("contractOrderID")

	var req dto.UpdateContractOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update contract order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contractOrder, err := h.contractOrderService.UpdateContractOrder(c.Request.Context(), contractOrderID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract order not found"})
			return
		}
		logger.Error("Failed to update contract order", slog.String("error", err.Error()), slog.String("contract_order_id", contractOrderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contract order"})
		return
	}

	logger.Info("Contract order updated", slog.String("contract_order_id", contractOrderID))
	c.JSON(http.StatusOK, dto.ToContractOrderResponse(contractOrder))
}

// deleteContractOrder godoc
// @Summary Delete a contract order
// @Description Removes a contract order permanently
// @Tags contract-orders
// @Produce  json
// @Param   contractOrderID path string true "Contract order ID"
// @Success 204 "Contract order deleted"
// @Failure 404 {object} map[string]string "Contract order not found"
// @Failure 500 {object} map[string]string "Failed to delete contract order"
// @Security BearerAuth
// @Router /contract-orders/{contractOrderID} [delete]
func (h *contractOrderHandler) deleteContractOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractOrderID := c.Param("contractOrderID")

	if err := h.contractOrderService.DeleteContractOrder(c.Request.Context(), contractOrderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract order not found"})
			return
		}
		logger.Error("Failed to delete contract order", slog.String("error", err.Error()), slog.String("contract_order_id", contractOrderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contract order"})
		return
	}

	logger.Info("Contract order deleted", slog.String("contract_order_id", contractOrderID))
	c.Status(http.StatusNoContent)
}
