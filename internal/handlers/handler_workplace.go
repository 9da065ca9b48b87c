package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/dto"
	"github.com/workmapr/employer_directory_app/internal/middleware"
)

// workplaceHandler handles HTTP requests for the workplace assignment flow.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// RegisterWorkplaceRoutes registers the three workplace state transitions.
func RegisterWorkplaceRoutes(rg *gin.RouterGroup, workplaceService portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(workplaceService)

	workplace := rg.Group("/workplace")
	{
		workplace.POST("", h.assignWorkplace)
		workplace.DELETE("", h.leaveWorkplace)
		workplace.PUT("/position", h.updatePosition)
	}
}

// bindingErrorMessage turns gin binding failures into a readable message,
// listing the offending fields when validation produced them.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg := "Invalid request format: missing or invalid fields:"
		for i, fe := range verrs {
			if i > 0 {
				msg += ","
			}
			msg += " " + fe.Field()
		}
		return msg
	}
	return "Invalid request format: " + err.Error()
}

// assignWorkplace handles POST /workplace. The caller joins (or transfers to)
// the given business; state and city are denormalized onto the user record.
func (h *workplaceHandler) assignWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	requestorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requestor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_user_id", req.UserID), slog.String("business_id", req.BusinessID))
	logger.Info("Received request to assign workplace")

	err := h.workplaceService.AssignWorkplace(c.Request.Context(), requestorID, req.UserID, req.BusinessID, req.State, req.City)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Assign workplace failed: caller may only set their own workplace")
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrBusinessNotFound):
			logger.Warn("Assign workplace failed: business not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		default:
			logger.Error("Failed to assign workplace in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Workplace assigned successfully")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// leaveWorkplace handles DELETE /workplace. Acts on the caller only; leaving
// with no affiliation is still a success.
func (h *workplaceHandler) leaveWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requestor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to leave workplace")

	err := h.workplaceService.LeaveWorkplace(c.Request.Context(), requestorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		logger.Error("Failed to leave workplace in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Workplace left successfully")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// updatePosition handles PUT /workplace/position. An empty position clears
// the field.
func (h *workplaceHandler) updatePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	requestorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requestor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to update position")

	err := h.workplaceService.UpdatePosition(c.Request.Context(), requestorID, req.Position)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		logger.Error("Failed to update position in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Position updated successfully")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
