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

// supplierHandler handles HTTP requests related to suppliers and their
// inbound invoices.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers all supplier-related routes.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplierID", h.getSupplier)
		suppliers.PUT("/:supplierID", h.updateSupplier)
		suppliers.DELETE("/:supplierID", h.deleteSupplier)

		suppliers.POST("/:supplierID/invoices", h.recordSupplierInvoice)
		suppliers.GET("/:supplierID/invoices", h.listSupplierInvoices)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Description Creates a supplier record
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create supplier request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves suppliers with pagination
// @Tags suppliers
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Description Retrieves details for a specific supplier
// @Tags suppliers
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to get supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Applies a partial update to a supplier record
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Param   supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to update supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update supplier request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID))
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Description Removes a supplier record permanently
// @Tags suppliers
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 204 "Supplier deleted"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to delete supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to delete supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID))
	c.Status(http.StatusNoContent)
}

// recordSupplierInvoice godoc
// @Summary Record an inbound supplier invoice
// @Description Registers an invoice received from a supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Param   invoice body dto.CreateSupplierInvoiceRequest true "Invoice details"
// @Success 201 {object} domain.SupplierInvoice
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to record invoice"
// @Security BearerAuth
// @Router /suppliers/{supplierID}/invoices [post]
func (h *supplierHandler) recordSupplierInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	var req dto.CreateSupplierInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for supplier invoice request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.supplierService.RecordSupplierInvoice(c.Request.Context(), supplierID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to record supplier invoice", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record invoice"})
		return
	}

	logger.Info("Supplier invoice recorded", slog.String("supplier_id", supplierID), slog.String("invoice_id", invoice.SupplierInvoiceID))
	c.JSON(http.StatusCreated, invoice)
}

// listSupplierInvoices godoc
// @Summary List a supplier's invoices
// @Description Retrieves all invoices recorded for a supplier, newest first
// @Tags suppliers
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 200 {array} domain.SupplierInvoice
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /suppliers/{supplierID}/invoices [get]
func (h *supplierHandler) listSupplierInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	invoices, err := h.supplierService.ListSupplierInvoices(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to list supplier invoices", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, invoices)
}
