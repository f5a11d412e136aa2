package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// barHandler handles HTTP requests related to bars.
type barHandler struct {
	barService portssvc.BarSvcFacade
}

func newBarHandler(bs portssvc.BarSvcFacade) *barHandler {
	return &barHandler{barService: bs}
}

// registerBarRoutes registers routes related to bars.
func registerBarRoutes(rg *gin.RouterGroup, barService portssvc.BarSvcFacade) {
	h := newBarHandler(barService)

	bars := rg.Group("/bars")
	{
		bars.POST("", h.createBar)
		bars.GET("", h.listBars)
		bars.GET("/:id", h.getBar)
		bars.PUT("/:id", h.updateBar)
		bars.DELETE("/:id", h.deactivateBar)
	}
}

func barIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bar ID"})
		return 0, false
	}
	return id, true
}

// createBar godoc
// @Summary Create a new bar
// @Description Registers a new bar under one of the operator's locations
// @Tags bars
// @Accept json
// @Produce json
// @Param bar body dto.CreateBarRequest true "Bar details"
// @Success 201 {object} dto.BarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bars [post]
func (h *barHandler) createBar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	bar, err := h.barService.CreateBar(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to create bar", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create bar"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBarResponse(bar))
}

// listBars godoc
// @Summary List bars
// @Description Retrieves a page of the operator's bars
// @Tags bars
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListBarsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bars [get]
func (h *barHandler) listBars(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListBarsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	bars, err := h.barService.ListBars(c.Request.Context(), operatorID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list bars", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bars"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBarsResponse(bars))
}

// getBar godoc
// @Summary Get a bar by ID
// @Description Retrieves a specific bar owned by the operator
// @Tags bars
// @Produce json
// @Param id path int true "Bar ID"
// @Success 200 {object} dto.BarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bars/{id} [get]
func (h *barHandler) getBar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	barID, ok := barIDParam(c)
	if !ok {
		return
	}

	bar, err := h.barService.GetBarByID(c.Request.Context(), barID, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bar not found"})
			return
		}
		logger.Error("Failed to get bar", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve bar"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBarResponse(bar))
}

// updateBar godoc
// @Summary Update a bar
// @Description Updates a bar owned by the operator
// @Tags bars
// @Accept json
// @Produce json
// @Param id path int true "Bar ID"
// @Param bar body dto.UpdateBarRequest true "Fields to update"
// @Success 200 {object} dto.BarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bars/{id} [put]
func (h *barHandler) updateBar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	barID, ok := barIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	bar, err := h.barService.UpdateBar(c.Request.Context(), barID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bar not found"})
			return
		}
		logger.Error("Failed to update bar", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update bar"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBarResponse(bar))
}

// deactivateBar godoc
// @Summary Deactivate a bar
// @Description Soft-deletes a bar owned by the operator
// @Tags bars
// @Produce json
// @Param id path int true "Bar ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bars/{id} [delete]
func (h *barHandler) deactivateBar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	barID, ok := barIDParam(c)
	if !ok {
		return
	}

	if err := h.barService.DeactivateBar(c.Request.Context(), barID, operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bar not found"})
			return
		}
		logger.Error("Failed to deactivate bar", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate bar"})
		return
	}

	c.Status(http.StatusNoContent)
}
