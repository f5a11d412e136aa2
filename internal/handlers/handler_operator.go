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

// operatorHandler handles HTTP requests related to the operator's own account.
type operatorHandler struct {
	operatorService portssvc.OperatorSvcFacade
}

func newOperatorHandler(os portssvc.OperatorSvcFacade) *operatorHandler {
	return &operatorHandler{operatorService: os}
}

// registerOperatorRoutes registers routes related to the operator account.
func registerOperatorRoutes(rg *gin.RouterGroup, operatorService portssvc.OperatorSvcFacade) {
	h := newOperatorHandler(operatorService)

	operators := rg.Group("/operators")
	{
		operators.GET("/me", h.getMe)
		operators.PUT("/me", h.updateMe)
	}
}

// getMe godoc
// @Summary Get the authenticated operator
// @Description Retrieves the account of the logged-in operator
// @Tags operators
// @Produce json
// @Success 200 {object} dto.OperatorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /operators/me [get]
func (h *operatorHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	operator, err := h.operatorService.GetOperatorByID(c.Request.Context(), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operator not found"})
			return
		}
		logger.Error("Failed to get operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve operator"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}

// updateMe godoc
// @Summary Update the authenticated operator
// @Description Updates name or email of the logged-in operator
// @Tags operators
// @Accept json
// @Produce json
// @Param operator body dto.UpdateOperatorRequest true "Fields to update"
// @Success 200 {object} dto.OperatorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /operators/me [put]
func (h *operatorHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	operator, err := h.operatorService.UpdateOperator(c.Request.Context(), operatorID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operator not found"})
			return
		}
		logger.Error("Failed to update operator", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update operator"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOperatorResponse(operator))
}
