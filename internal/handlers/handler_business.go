package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/dto"
	"github.com/workmapr/employer_directory_app/internal/middleware"
)

// businessHandler handles HTTP requests related to the business directory.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{
		businessService: bs,
	}
}

// registerBusinessRoutes registers the read-only business directory routes.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
	}
}

// listBusinesses handles GET /businesses with optional state/city/category/q filters.
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListBusinesses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.BusinessListFilter{
		State:      params.State,
		City:       params.City,
		Category:   params.Category,
		NamePrefix: params.Query,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list businesses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// getBusiness handles GET /businesses/:businessID.
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		logger.Error("Failed to get business from service", slog.String("error", err.Error()), slog.String("business_id", businessID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
