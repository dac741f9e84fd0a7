package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/stats")
	{
		statsGroup.GET("/summary", h.GetSummary)
		statsGroup.GET("/spending-over-time", h.GetSpendingOverTime)
		statsGroup.GET("/top-products", h.GetTopProducts)
		statsGroup.GET("/categories", h.GetCategories)
		statsGroup.GET("/payment-methods", h.GetPaymentMethods)
		statsGroup.GET("/returns", h.GetReturns)
		statsGroup.GET("/digital-vs-retail", h.GetDigitalVsRetail)
		statsGroup.GET("/retail-breakdown", h.GetRetailBreakdown)
		statsGroup.GET("/digital-breakdown", h.GetDigitalBreakdown)
	}
}

// statusForError maps the service sentinels onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	c.JSON(status, response.Error(status, err.Error()))
}

// @Summary      Get purchase summary
// @Description  Headline totals: order counts and spending per channel, overall totals, date range and average order value
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=model.Summary}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// @Summary      Get spending over time
// @Description  Gap-free monthly or yearly series of spending and order counts
// @Tags         Stats
// @Produce      json
// @Param        period query string false "monthly or yearly (default monthly)"
// @Success      200 {object} response.Response{data=model.TimeSeries}
// @Failure      400 {object} response.Response "Unknown period"
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/spending-over-time [get]
func (h *AnalyticsHandler) GetSpendingOverTime(c *gin.Context) {
	period := c.DefaultQuery("period", service.PeriodMonthly)

	series, err := h.analyticsService.GetSpendingOverTime(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, series))
}

// @Summary      Get top products
// @Description  Products ranked by total quantity or total spending
// @Tags         Stats
// @Produce      json
// @Param        limit query int    false "Number of products (default 20)"
// @Param        by    query string false "quantity or spending (default quantity)"
// @Success      200 {object} response.Response{data=[]model.TopProduct}
// @Failure      400 {object} response.Response "Unknown sort key"
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/top-products [get]
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultTopProductsLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "limit must be an integer"))
		return
	}
	by := c.DefaultQuery("by", service.TopProductsByQuantity)

	products, err := h.analyticsService.GetTopProducts(c.Request.Context(), limit, by)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// @Summary      Get spending by category
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=object}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/categories [get]
func (h *AnalyticsHandler) GetCategories(c *gin.Context) {
	categories, err := h.analyticsService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"categories": categories}))
}

// @Summary      Get spending by payment method
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=object}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/payment-methods [get]
func (h *AnalyticsHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.analyticsService.GetPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"paymentMethods": methods}))
}

// @Summary      Get return statistics
// @Description  Total returns, return rate over all orders, and the monthly returns series
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=model.ReturnStats}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/returns [get]
func (h *AnalyticsHandler) GetReturns(c *gin.Context) {
	stats, err := h.analyticsService.GetReturns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

// @Summary      Get digital vs retail split
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=model.DigitalVsRetail}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/digital-vs-retail [get]
func (h *AnalyticsHandler) GetDigitalVsRetail(c *gin.Context) {
	split, err := h.analyticsService.GetDigitalVsRetail(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, split))
}

// @Summary      Get retail breakdown
// @Description  Composite retail-only view: categories, monthly spending, top products and payment methods
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=model.RetailBreakdown}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/retail-breakdown [get]
func (h *AnalyticsHandler) GetRetailBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.GetRetailBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}

// @Summary      Get digital breakdown
// @Description  Composite digital-only view: categories, monthly spending, top products and subscriptions
// @Tags         Stats
// @Produce      json
// @Success      200 {object} response.Response{data=model.DigitalBreakdown}
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/stats/digital-breakdown [get]
func (h *AnalyticsHandler) GetDigitalBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.GetDigitalBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}
