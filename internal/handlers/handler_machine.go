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

// machineHandler handles HTTP requests related to machines.
type machineHandler struct {
	machineService    portssvc.MachineSvcFacade
	collectionService portssvc.CollectionSvcFacade
}

func newMachineHandler(ms portssvc.MachineSvcFacade, cs portssvc.CollectionSvcFacade) *machineHandler {
	return &machineHandler{machineService: ms, collectionService: cs}
}

// registerMachineRoutes registers routes related to machines.
func registerMachineRoutes(rg *gin.RouterGroup, machineService portssvc.MachineSvcFacade, collectionService portssvc.CollectionSvcFacade) {
	h := newMachineHandler(machineService, collectionService)

	machines := rg.Group("/machines")
	{
		machines.POST("", h.createMachine)
		machines.GET("", h.listMachines)
		machines.GET("/:id", h.getMachine)
		machines.PUT("/:id", h.updateMachine)
		machines.GET("/:id/collections", h.listMachineCollections)
	}
}

func machineIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid machine ID"})
		return 0, false
	}
	return id, true
}

// createMachine godoc
// @Summary Register a new machine
// @Description Registers a new dart machine at one of the operator's bars
// @Tags machines
// @Accept json
// @Produce json
// @Param machine body dto.CreateMachineRequest true "Machine details"
// @Success 201 {object} dto.MachineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bar not found"
// @Failure 409 {object} ErrorResponse "Serial number already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /machines [post]
func (h *machineHandler) createMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	machine, err := h.machineService.CreateMachine(c.Request.Context(), req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bar not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Serial number already registered"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create machine", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create machine"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMachineResponse(machine))
}

// listMachines godoc
// @Summary List machines
// @Description Retrieves the operator's machines, optionally filtered to one bar
// @Tags machines
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Param barID query int false "Only machines placed at this bar"
// @Success 200 {object} dto.ListMachinesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Bar not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /machines [get]
func (h *machineHandler) listMachines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListMachinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	machines, err := h.machineService.ListMachines(c.Request.Context(), operatorID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bar not found"})
			return
		}
		logger.Error("Failed to list machines", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list machines"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMachinesResponse(machines))
}

// getMachine godoc
// @Summary Get a machine by ID
// @Description Retrieves a specific machine owned by the operator
// @Tags machines
// @Produce json
// @Param id path int true "Machine ID"
// @Success 200 {object} dto.MachineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /machines/{id} [get]
func (h *machineHandler) getMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	machineID, ok := machineIDParam(c)
	if !ok {
		return
	}

	machine, err := h.machineService.GetMachineByID(c.Request.Context(), machineID, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Machine not found"})
			return
		}
		logger.Error("Failed to get machine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve machine"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// updateMachine godoc
// @Summary Update a machine
// @Description Updates a machine's details or moves it to another bar. The running counter cannot be changed here.
// @Tags machines
// @Accept json
// @Produce json
// @Param id path int true "Machine ID"
// @Param machine body dto.UpdateMachineRequest true "Fields to update"
// @Success 200 {object} dto.MachineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /machines/{id} [put]
func (h *machineHandler) updateMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	machineID, ok := machineIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	machine, err := h.machineService.UpdateMachine(c.Request.Context(), machineID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Machine not found"})
			return
		}
		logger.Error("Failed to update machine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update machine"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// listMachineCollections godoc
// @Summary List a machine's collection history
// @Description Retrieves one page of collections recorded at a machine, newest first
// @Tags machines
// @Produce json
// @Param id path int true "Machine ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /machines/{id}/collections [get]
func (h *machineHandler) listMachineCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	machineID, ok := machineIDParam(c)
	if !ok {
		return
	}

	var params dto.ListCollectionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, nextToken, err := h.collectionService.ListCollectionsByMachine(c.Request.Context(), operatorID, machineID, params.Limit, params.NextToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Machine not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
		default:
			logger.Error("Failed to list machine collections", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list collections"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCollectionsResponse(records, nextToken))
}
