package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/middleware"
)

// directoryHandler serves the public campus and department directory.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(directoryService portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: directoryService}
}

// registerDirectoryRoutes registers the public directory routes.
func registerDirectoryRoutes(r *gin.Engine, directoryService portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directoryService)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/campuses", h.listCampuses)
		v1.GET("/departments", h.listDepartments)
		v1.GET("/campuses/:campusID/departments", h.listDepartmentsByCampus)
	}
}

// listCampuses godoc
// @Summary List campuses
// @Description Retrieves active campuses with department and member counts.
// @Tags directory
// @Produce json
// @Success 200 {object} dto.CampusesResponse
// @Failure 500 {object} ErrorResponse
// @Router /campuses [get]
func (h *directoryHandler) listCampuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	campuses, err := h.directoryService.ListCampuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list campuses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve campuses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCampusesResponse(campuses))
}

// listDepartments godoc
// @Summary List departments
// @Description Retrieves active departments with campus names and membership counts.
// @Tags directory
// @Produce json
// @Success 200 {object} dto.DepartmentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /departments [get]
func (h *directoryHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.directoryService.ListDepartments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list departments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve departments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentsResponse(departments))
}

// listDepartmentsByCampus godoc
// @Summary List departments of a campus
// @Description Retrieves active departments belonging to one campus.
// @Tags directory
// @Produce json
// @Param campusID path string true "Campus ID"
// @Success 200 {object} dto.DepartmentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /campuses/{campusID}/departments [get]
func (h *directoryHandler) listDepartmentsByCampus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	campusID := c.Param("campusID")

	departments, err := h.directoryService.ListDepartmentsByCampus(c.Request.Context(), campusID)
	if err != nil {
		logger.Error("Failed to list departments by campus", slog.String("error", err.Error()), slog.String("campus_id", campusID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve departments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentsResponse(departments))
}
