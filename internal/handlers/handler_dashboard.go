package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/middleware"
)

// dashboardHandler serves the aggregate dashboard and statistics endpoints.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// registerDashboardRoutes registers dashboard routes on the authenticated group.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/statistics", h.getStatistics)
}

// getDashboard godoc
// @Summary Get dashboard
// @Description Assembles the caller's dashboard: profile, recent leaves, notifications and upcoming holidays.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to assemble dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// getStatistics godoc
// @Summary Get statistics
// @Description Retrieves system-wide counts: users, departments, campuses, pending leaves.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /statistics [get]
func (h *dashboardHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.GetStatistics(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.StatisticsResponse{Statistics: *stats})
}
