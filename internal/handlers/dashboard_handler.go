package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "clarity/internal/errors"
	"clarity/internal/models"
	"clarity/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns aggregate totals for the authenticated user
// @Summary     Get dashboard stats
// @Description Get total income, total expense, balance, and transaction count
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardStats "Aggregate totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.dashboardService.GetStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCategoryBreakdown returns per-category totals for one transaction type
// @Summary     Get category breakdown
// @Description Get per-category totals and percentages for income or expense transactions
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type path string true "Transaction type (income or expense)"
// @Success     200 {array} services.CategoryBreakdown "Category breakdown"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Invalid type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/categories/{type} [get]
func (h *DashboardHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionType := models.TransactionType(c.Param("type"))

	breakdown, err := h.dashboardService.GetCategoryBreakdown(userID, transactionType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetMonthlySummary returns per-month totals in chronological order
// @Summary     Get monthly summary
// @Description Get income and expense totals per calendar month, ascending; months without transactions are omitted
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Restrict to the last N calendar months (0 = all)"
// @Success     200 {array} services.MonthlySummary "Monthly series"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Invalid months value"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/monthly [get]
func (h *DashboardHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 0
	if v := c.Query("months"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "months must be a non-negative integer"))
			return
		}
		months = parsed
	}

	summary, err := h.dashboardService.GetMonthlySummary(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly": summary})
}
