package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/pkg/utils"
)

// DashboardHandler serves the dashboard view models.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func respondDashboardError(c *gin.Context, err error, op string) {
	if errors.Is(err, services.ErrInvalidDate) {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	utils.LogError(err, op+": failed to build view")
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch dashboard data", "Internal error"))
}

// GetDashboard returns every dashboard view. Query: date=YYYY-MM-DD (optional).
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboard(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondDashboardError(c, err, "GetDashboard")
		return
	}
	utils.RespondWithData(c, http.StatusOK, data)
}

func (h *DashboardHandler) GetBookingCapacity(c *gin.Context) {
	view, err := h.dashboardService.GetBookingCapacity(c.Request.Context())
	if err != nil {
		respondDashboardError(c, err, "GetBookingCapacity")
		return
	}
	utils.RespondWithData(c, http.StatusOK, view)
}

func (h *DashboardHandler) GetCoverTracker(c *gin.Context) {
	view, err := h.dashboardService.GetCoverTracker(c.Request.Context())
	if err != nil {
		respondDashboardError(c, err, "GetCoverTracker")
		return
	}
	utils.RespondWithData(c, http.StatusOK, view)
}

func (h *DashboardHandler) GetFinancialOverview(c *gin.Context) {
	view, err := h.dashboardService.GetFinancialOverview(c.Request.Context())
	if err != nil {
		respondDashboardError(c, err, "GetFinancialOverview")
		return
	}
	utils.RespondWithData(c, http.StatusOK, view)
}

// GetStaffScheduling returns shifts, optionally for one day. Query: date=YYYY-MM-DD.
func (h *DashboardHandler) GetStaffScheduling(c *gin.Context) {
	view, err := h.dashboardService.GetStaffScheduling(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondDashboardError(c, err, "GetStaffScheduling")
		return
	}
	utils.RespondWithData(c, http.StatusOK, view)
}

// GetStockInsight returns stock levels. Query: search, category, status.
func (h *DashboardHandler) GetStockInsight(c *gin.Context) {
	var filter models.StockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if filter.Status != "" && filter.Status != "all" && !models.IsValidStockStatus(filter.Status) {
		utils.RespondValidationFailed(c, "status must be one of: In Stock, Low Stock, Out of Stock")
		return
	}

	view, err := h.dashboardService.GetStockInsight(c.Request.Context(), filter)
	if err != nil {
		respondDashboardError(c, err, "GetStockInsight")
		return
	}
	utils.RespondWithData(c, http.StatusOK, view)
}
