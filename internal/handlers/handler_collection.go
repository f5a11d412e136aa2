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

// collectionHandler handles HTTP requests related to collection records.
type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs}
}

// registerCollectionRoutes registers routes related to collection records.
func registerCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) {
	h := newCollectionHandler(collectionService)

	collections := rg.Group("/collections")
	{
		collections.POST("", h.createCollection)
		collections.POST("/validate", h.validateDraft)
		collections.GET("", h.listCollections)
		collections.GET("/:id", h.getCollection)
	}
}

// createCollection godoc
// @Summary Record a cash collection
// @Description Records a collection at a machine. The 40/60 bar/business split and the optional extra payment are computed server-side, and the machine's running counter advances by the total.
// @Tags collections
// @Accept json
// @Produce json
// @Param collection body dto.CreateCollectionRequest true "Collection details"
// @Success 201 {object} dto.CreateCollectionResponse
// @Failure 400 {object} ErrorResponse "Validation error (negative total, extra exceeds bar share)"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Machine not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections [post]
func (h *collectionHandler) createCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, counter, err := h.collectionService.CreateCollection(c.Request.Context(), req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Machine not found"})
		default:
			logger.Error("Failed to record collection", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record collection"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCollectionResponse{
		CollectionResponse: dto.ToCollectionResponse(record),
		OldCounter:         counter.OldCounter,
		NewCounter:         counter.NewCounter,
	})
}

// validateDraft godoc
// @Summary Preview a collection split
// @Description Computes the bar/business amounts a collection would persist with, without recording anything. Used by the entry screen to display the split as the operator types.
// @Tags collections
// @Accept json
// @Produce json
// @Param collection body dto.CreateCollectionRequest true "Draft collection"
// @Success 200 {object} dto.CollectionDraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections/validate [post]
func (h *collectionHandler) validateDraft(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.collectionService.ValidateDraft(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate collection"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// listCollections godoc
// @Summary List collection history
// @Description Retrieves one page of the operator's collection history, newest first, with token-based pagination
// @Tags collections
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections [get]
func (h *collectionHandler) listCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListCollectionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, nextToken, err := h.collectionService.ListCollections(c.Request.Context(), operatorID, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list collections", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list collections"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCollectionsResponse(records, nextToken))
}

// getCollection godoc
// @Summary Get a collection record by ID
// @Description Retrieves a single collection record owned by the operator
// @Tags collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} dto.CollectionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections/{id} [get]
func (h *collectionHandler) getCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.collectionService.GetCollectionByID(c.Request.Context(), c.Param("id"), operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Collection not found"})
			return
		}
		logger.Error("Failed to get collection", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve collection"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionResponse(record))
}
