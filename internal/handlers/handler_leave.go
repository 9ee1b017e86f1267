package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/middleware"
)

// leaveHandler handles the leave workflow endpoints.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(leaveService portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: leaveService}
}

// RegisterLeaveRoutes registers leave workflow routes on the authenticated group.
func RegisterLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)
	leave := rg.Group("/leave")
	{
		leave.GET("/types", h.listLeaveTypes)
		leave.GET("/balance", h.getBalance)
		leave.POST("/request", h.submitRequest)
		leave.GET("/history", h.getHistory)
		leave.POST("/requests/:requestID/decision", h.decideRequest)
		leave.POST("/requests/:requestID/cancel", h.cancelRequest)
	}
}

// listLeaveTypes godoc
// @Summary List leave types
// @Description Retrieves the active leave type catalog.
// @Tags leave
// @Produce json
// @Success 200 {object} dto.LeaveTypesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/types [get]
func (h *leaveHandler) listLeaveTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.leaveService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list leave types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve leave types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveTypesResponse(types))
}

// getBalance godoc
// @Summary Get leave balance
// @Description Retrieves the caller's per-type balances for a year plus their totals. Defaults to the current year.
// @Tags leave
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} dto.BalancesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/balance [get]
func (h *leaveHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	balances, summary, err := h.leaveService.GetBalanceSummary(c.Request.Context(), userID, params.Year)
	if err != nil {
		logger.Error("Failed to get balance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances, summary))
}

// submitRequest godoc
// @Summary Submit leave request
// @Description Validates and submits a leave request, reserving its duration against the balance ledger.
// @Tags leave
// @Accept json
// @Produce json
// @Param request body dto.SubmitLeaveRequest true "Leave request"
// @Success 201 {object} dto.SubmitLeaveResponse
// @Failure 400 {object} ErrorResponse "Validation failure or insufficient balance"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/request [post]
func (h *leaveHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.leaveService.SubmitRequest(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient leave balance"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to submit leave request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit leave request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitLeaveResponse{
		Message:   "Leave request submitted",
		RequestID: request.RequestID,
	})
}

// getHistory godoc
// @Summary Get leave history
// @Description Retrieves the caller's leave requests newest first, with optional status and year filters and cursor pagination.
// @Tags leave
// @Produce json
// @Param status query string false "Status filter" Enums(all, pending, approved, rejected, cancelled)
// @Param year query int false "Year the leave starts in"
// @Param limit query int false "Page size"
// @Param cursor query string false "Pagination token from a previous page"
// @Success 200 {object} dto.LeaveHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/history [get]
func (h *leaveHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.LeaveHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	history, nextCursor, err := h.leaveService.GetHistory(c.Request.Context(), userID, params.ToHistoryFilter())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to get leave history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve leave history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveHistoryResponse(history, nextCursor))
}

// decideRequest godoc
// @Summary Decide leave request
// @Description Approves or rejects a pending leave request. A rejection releases the reserved days.
// @Tags leave
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param decision body dto.DecideLeaveRequest true "Decision"
// @Success 200 {object} dto.DecideLeaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Cannot decide own request"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/requests/{requestID}/decision [post]
func (h *leaveHandler) decideRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	deciderID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	decided, err := h.leaveService.DecideRequest(c.Request.Context(), requestID, deciderID, domain.RequestStatus(req.Decision), req.Note)
	if err != nil {
		h.respondWorkflowError(c, logger, err, "Failed to decide leave request")
		return
	}

	c.JSON(http.StatusOK, dto.DecideLeaveResponse{
		Message:   "Leave request " + string(decided.Status),
		RequestID: decided.RequestID,
		Status:    string(decided.Status),
	})
}

// cancelRequest godoc
// @Summary Cancel leave request
// @Description Cancels the caller's own pending leave request and releases the reserved days.
// @Tags leave
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} dto.DecideLeaveResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/requests/{requestID}/cancel [post]
func (h *leaveHandler) cancelRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cancelled, err := h.leaveService.CancelRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		h.respondWorkflowError(c, logger, err, "Failed to cancel leave request")
		return
	}

	c.JSON(http.StatusOK, dto.DecideLeaveResponse{
		Message:   "Leave request cancelled",
		RequestID: cancelled.RequestID,
		Status:    string(cancelled.Status),
	})
}

// respondWorkflowError maps workflow transition errors to HTTP responses.
func (h *leaveHandler) respondWorkflowError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Leave request not found"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Leave request has already been decided"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
