package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	portssvc "github.com/dartsops/darts_management_app/internal/core/ports/services"
	"github.com/dartsops/darts_management_app/internal/dto"
	"github.com/dartsops/darts_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// locationHandler handles HTTP requests related to locations.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers routes related to locations.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.POST("", h.createLocation)
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocation)
		locations.PUT("/:id", h.updateLocation)
		locations.DELETE("/:id", h.deactivateLocation)
	}
}

// createLocation godoc
// @Summary Create a new location
// @Description Creates a new location for the logged-in operator
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req, operatorID)
	if err != nil {
		logger.Error("Failed to create location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// listLocations godoc
// @Summary List locations
// @Description Retrieves a page of the operator's locations
// @Tags locations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListLocationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListLocationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	locations, err := h.locationService.ListLocations(c.Request.Context(), operatorID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationsResponse(locations))
}

// getLocation godoc
// @Summary Get a location by ID
// @Description Retrieves a specific location owned by the operator
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *locationHandler) getLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	location, err := h.locationService.GetLocationByID(c.Request.Context(), c.Param("id"), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to get location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve location"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// updateLocation godoc
// @Summary Update a location
// @Description Updates a location owned by the operator
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), c.Param("id"), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to update location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update location"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// deactivateLocation godoc
// @Summary Deactivate a location
// @Description Soft-deletes a location owned by the operator
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *locationHandler) deactivateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.locationService.DeactivateLocation(c.Request.Context(), c.Param("id"), operatorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Location not found"})
			return
		}
		logger.Error("Failed to deactivate location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate location"})
		return
	}

	c.Status(http.StatusNoContent)
}
