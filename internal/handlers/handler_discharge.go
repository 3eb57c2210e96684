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

// dischargeHandler handles HTTP requests related to discharge receipts.
type dischargeHandler struct {
	dischargeService portssvc.DischargeSvcFacade
}

// newDischargeHandler creates a new dischargeHandler.
func newDischargeHandler(ds portssvc.DischargeSvcFacade) *dischargeHandler {
	return &dischargeHandler{
		dischargeService: ds,
	}
}

// registerDischargeRoutes registers all discharge-related routes.
func registerDischargeRoutes(rg *gin.RouterGroup, dischargeService portssvc.DischargeSvcFacade) {
	h := newDischargeHandler(dischargeService)

	discharges := rg.Group("/discharges")
	{
		discharges.POST("", h.createDischarge)
		discharges.GET("", h.listDischarges)
		discharges.GET("/:dischargeID", h.getDischarge)
		discharges.PUT("/:dischargeID", h.updateDischarge)
		discharges.DELETE("/:dischargeID", h.deleteDischarge)

		discharges.POST("/:dischargeID/sign", h.signDischarge)
	}
}

// createDischarge godoc
// @Summary Create a new discharge receipt
// @Description Creates a discharge and assigns its number from the next free sequence
// @Tags discharges
// @Accept  json
// @Produce  json
// @Param   discharge body dto.CreateDischargeRequest true "Discharge details"
// @Success 201 {object} dto.DischargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create discharge"
// @Security BearerAuth
// @Router /discharges [post]
func (h *dischargeHandler) createDischarge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDischargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create discharge request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	discharge, err := h.dischargeService.CreateDischarge(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create discharge in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discharge"})
		return
	}

	logger.Info("Discharge created", slog.String("discharge_id", discharge.DischargeID))
	c.JSON(http.StatusCreated, dto.ToDischargeResponse(discharge))
}

// listDischarges godoc
// @Summary List discharge receipts
// @Description Retrieves discharges with pagination, newest first
// @Tags discharges
// @Produce  json
// @Param   limit query int false "Max results (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListDischargesResponse
// @Failure 500 {object} map[string]string "Failed to list discharges"
// @Security BearerAuth
// @Router /discharges [get]
func (h *dischargeHandler) listDischarges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, offset := paginationParams(c)

	discharges, err := h.dischargeService.ListDischarges(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list discharges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list discharges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDischargesResponse(discharges))
}

// getDischarge godoc
// @Summary Get a discharge by ID
// @Description Retrieves a single discharge by its number
// @Tags discharges
// @Produce  json
// @Param   dischargeID path string true "Discharge ID"
// @Success 200 {object} dto.DischargeResponse
// @Failure 404 {object} map[string]string "Discharge not found"
// @Failure 500 {object} map[string]string "Failed to retrieve discharge"
// @Security BearerAuth
// @Router /discharges/{dischargeID} [get]
func (h *dischargeHandler) getDischarge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dischargeID := c.Param("dischargeID")

	discharge, err := h.dischargeService.GetDischargeByID(c.Request.Context(), dischargeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discharge not found"})
			return
		}
		logger.Error("Failed to get discharge", slog.String("error", err.Error()), slog.String("discharge_id", dischargeID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discharge"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDischargeResponse(discharge))
}

// updateDischarge godoc
// @Summary Update a discharge
// @Description Applies a partial update to a discharge's mutable fields
// @Tags discharges
// @Accept  json
// @Produce  json
// @Param   dischargeID path string true "Discharge ID"
// @Param   discharge body dto.UpdateDischargeRequest true "Fields to update"
// @Success 200 {object} dto.DischargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Discharge not found"
// @Failure 500 {object} map[string]string "Failed to update discharge"
// @Security BearerAuth
// @Router /discharges/{dischargeID} [put]
func (h *dischargeHandler) updateDischarge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dischargeID := c.Param("dischargeID")

	var req dto.UpdateDischargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update discharge request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	discharge, err := h.dischargeService.UpdateDischarge(c.Request.Context(), dischargeID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discharge not found"})
			return
		}
		logger.Error("Failed to update discharge", slog.String("error", err.Error()), slog.String("discharge_id", dischargeID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discharge"})
		return
	}

	logger.Info("Discharge updated", slog.String("discharge_id", dischargeID))
	c.JSON(http.StatusOK, dto.ToDischargeResponse(discharge))
}

// deleteDischarge godoc
// @Summary Delete a discharge
// @Description Removes a discharge permanently
// @Tags discharges
// @Produce  json
// @Param   dischargeID path string true "Discharge ID"
// @Success 204 "Discharge deleted"
// @Failure 404 {object} map[string]string "Discharge not found"
// @Failure 500 {object} map[string]string "Failed to delete discharge"
// @Security BearerAuth
// @Router /discharges/{dischargeID} [delete]
func (h *dischargeHandler) deleteDischarge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dischargeID := c.Param("dischargeID")

	if err := h.dischargeService.DeleteDischarge(c.Request.Context(), dischargeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discharge not found"})
			return
		}
		logger.Error("Failed to delete discharge", slog.String("error", err.Error()), slog.String("discharge_id", dischargeID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discharge"})
		return
	}

	logger.Info("Discharge deleted", slog.String("discharge_id", dischargeID))
	c.Status(http.StatusNoContent)
}

// signDischarge godoc
// @Summary Sign a discharge
// @Description Records the provider's signature and marks the discharge signed. A discharge can only be signed once.
// @Tags discharges
// @Accept  json
// @Produce  json
// @Param   dischargeID path string true "Discharge ID"
// @Param   signature body dto.SignDischargeRequest true "Signature details"
// @Success 200 {object} dto.DischargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Discharge not found"
// @Failure 409 {object} map[string]string "Discharge already signed"
// @Failure 500 {object} map[string]string "Failed to sign discharge"
// @Security BearerAuth
// @Router /discharges/{dischargeID}/sign [post]
func (h *dischargeHandler) signDischarge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dischargeID := c.Param("dischargeID")

	var req dto.SignDischargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for sign discharge request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	discharge, err := h.dischargeService.SignDischarge(c.Request.Context(), dischargeID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Discharge not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to sign discharge", slog.String("error", err.Error()), slog.String("discharge_id", dischargeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign discharge"})
		}
		return
	}

	logger.Info("Discharge signed", slog.String("discharge_id", dischargeID))
	c.JSON(http.StatusOK, dto.ToDischargeResponse(discharge))
}
