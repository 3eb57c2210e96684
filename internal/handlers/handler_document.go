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

// documentHandler handles HTTP requests related to customer documents and
// their workflow.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService: ds,
	}
}

// registerDocumentRoutes registers all document-related routes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:documentID", h.getDocument)
		documents.PUT("/:documentID", h.updateDocument)
		documents.DELETE("/:documentID", h.deleteDocument)

		documents.POST("/:documentID/validate", h.validateQuote)
		documents.POST("/:documentID/order", h.createOrderFromQuote)
		documents.POST("/:documentID/delivery", h.createDeliveryFromOrder)
		documents.POST("/:documentID/invoice", h.createInvoiceFromDelivery)

		documents.GET("/:documentID/workflow", h.getDocumentWorkflow)
		documents.PUT("/:documentID/workflow", h.updateWorkflowStatus)

		documents.POST("/:documentID/payments", h.addPayment)
	}
}

// respondDocumentError maps service errors to HTTP status codes.
func respondDocumentError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Document not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn("Invalid document state for operation", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createDocument godoc
// @Summary Create a new document
// @Description Creates a document and assigns its number and reference from the next free sequence of its type and year
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create document request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to create document")
		return
	}

	logger.Info("Document created", slog.String("document_id", doc.DocumentID), slog.String("type", string(doc.Type)))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents
// @Description Retrieves documents, optionally filtered by type and year
// @Tags documents
// @Produce  json
// @Param   type query string false "Document type (proforma, order, delivery, invoice, contract)"
// @Param   year query int false "Issue year"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for list documents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves a single document by its formatted number
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a document
// @Description Applies a partial update to a document's mutable fields
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update document"
// @Security BearerAuth
// @Router /documents/{documentID} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update document request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), documentID, req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to update document")
		return
	}

	logger.Info("Document updated", slog.String("document_id", documentID))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes a document permanently
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 204 "Document deleted"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		respondDocumentError(c, logger, err, "Failed to delete document")
		return
	}

	logger.Info("Document deleted", slog.String("document_id", documentID))
	c.Status(http.StatusNoContent)
}

// validateQuote godoc
// @Summary Validate a quote
// @Description Marks a proforma as validated, making it eligible for order conversion
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Quote document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is not a quote"
// @Failure 500 {object} map[string]string "Failed to validate quote"
// @Security BearerAuth
// @Router /documents/{documentID}/validate [post]
func (h *documentHandler) validateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.ValidateQuote(c.Request.Context(), documentID, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to validate quote")
		return
	}

	logger.Info("Quote validated", slog.String("document_id", documentID))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// createOrderFromQuote godoc
// @Summary Convert a quote into an order
// @Description Derives a new order document from a validated quote, linking both
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Quote document ID"
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Document is not a quote"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /documents/{documentID}/order [post]
func (h *documentHandler) createOrderFromQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.documentService.CreateOrderFromQuote(c.Request.Context(), documentID, req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to create order")
		return
	}

	logger.Info("Order created from quote", slog.String("quote_id", documentID), slog.String("order_id", order.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(order))
}

// createDeliveryFromOrder godoc
// @Summary Convert an order into a delivery note
// @Description Derives a new delivery note from an order, linking both
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Order document ID"
// @Success 201 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Document is not an order"
// @Failure 500 {object} map[string]string "Failed to create delivery note"
// @Security BearerAuth
// @Router /documents/{documentID}/delivery [post]
func (h *documentHandler) createDeliveryFromOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	delivery, err := h.documentService.CreateDeliveryFromOrder(c.Request.Context(), documentID, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to create delivery note")
		return
	}

	logger.Info("Delivery note created from order", slog.String("order_id", documentID), slog.String("delivery_id", delivery.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(delivery))
}

// createInvoiceFromDelivery godoc
// @Summary Convert a delivery note into an invoice
// @Description Derives a new invoice from a delivery note, linking both
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Delivery note document ID"
// @Success 201 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Delivery note not found"
// @Failure 409 {object} map[string]string "Document is not a delivery note"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /documents/{documentID}/invoice [post]
func (h *documentHandler) createInvoiceFromDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.documentService.CreateInvoiceFromDelivery(c.Request.Context(), documentID, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created from delivery note", slog.String("delivery_id", documentID), slog.String("invoice_id", invoice.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(invoice))
}

// getDocumentWorkflow godoc
// @Summary Get a document's workflow chain
// @Description Returns the full chain the document belongs to: ancestors oldest-first, the document itself, then descendants depth-first
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve workflow"
// @Security BearerAuth
// @Router /documents/{documentID}/workflow [get]
func (h *documentHandler) getDocumentWorkflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	chain, err := h.documentService.GetDocumentWorkflow(c.Request.Context(), documentID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to retrieve workflow")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(chain))
}

// updateWorkflowStatus godoc
// @Summary Override a document's workflow status
// @Description Sets the workflow status directly, bypassing transition validation. Administrative correction tool.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   status body dto.UpdateWorkflowStatusRequest true "Target workflow status"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update workflow status"
// @Security BearerAuth
// @Router /documents/{documentID}/workflow [put]
func (h *documentHandler) updateWorkflowStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.UpdateWorkflowStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for workflow status update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.UpdateDocumentWorkflowStatus(c.Request.Context(), documentID, req.WorkflowStatus, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to update workflow status")
		return
	}

	logger.Info("Workflow status overridden", slog.String("document_id", documentID), slog.String("status", string(req.WorkflowStatus)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// addPayment godoc
// @Summary Record a payment against a document
// @Description Appends a payment to the document ledger. Overshooting payments are split, with the excess recorded as a separate Reliquat entry.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   payment body dto.AddPaymentRequest true "Payment details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid payment"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /documents/{documentID}/payments [post]
func (h *documentHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for add payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.documentService.AddPayment(c.Request.Context(), documentID, req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("document_id", documentID), slog.String("status", string(doc.Status)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
