package handler

import (
	"net/http"
	"time"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orderQueryService service.OrderQueryService
}

func NewOrderHandler(orderQueryService service.OrderQueryService) *OrderHandler {
	return &OrderHandler{orderQueryService: orderQueryService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/orders", h.ListDigitalOrders)
}

// @Summary      List digital orders
// @Description  Filtered, sorted, paginated listing of digital orders within one category
// @Tags         Orders
// @Produce      json
// @Param        category  query string true  "Digital category name"
// @Param        minPrice  query number false "Inclusive lower price bound"
// @Param        maxPrice  query number false "Inclusive upper price bound"
// @Param        startDate query string false "Inclusive lower order-date bound (YYYY-MM-DD)"
// @Param        endDate   query string false "Inclusive upper order-date bound (YYYY-MM-DD)"
// @Param        page      query int    false "Page number (default 1)"
// @Param        pageSize  query int    false "Page size (default 100, max 500)"
// @Param        sortBy    query string false "orderDate, productName, price, quantity or orderId (default orderDate)"
// @Param        sortOrder query string false "asc or desc (default desc)"
// @Success      200 {object} response.Response{data=model.OrderPage}
// @Failure      400 {object} response.Response "Invalid filter or sort parameter"
// @Failure      503 {object} response.Response "Order store unavailable"
// @Router       /api/orders [get]
func (h *OrderHandler) ListDigitalOrders(c *gin.Context) {
	params, err := parseOrderQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	page, err := h.orderQueryService.QueryDigitalOrders(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

func parseOrderQueryParams(c *gin.Context) (service.OrderQueryParams, error) {
	params := service.OrderQueryParams{
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	var err error
	if params.MinPrice, err = parseDecimalQuery(c, "minPrice"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = parseDecimalQuery(c, "maxPrice"); err != nil {
		return params, err
	}
	if params.StartDate, err = parseDateQuery(c, "startDate"); err != nil {
		return params, err
	}
	if params.EndDate, err = parseDateQuery(c, "endDate"); err != nil {
		return params, err
	}

	// Malformed page numbers clamp to the defaults rather than erroring.
	p := pagination.Parse(c)
	params.Page = p.Page
	params.PageSize = p.PageSize

	return params, nil
}

func parseDecimalQuery(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &queryParamError{name: name, expected: "a number"}
	}
	return &d, nil
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, &queryParamError{name: name, expected: "a date in YYYY-MM-DD format"}
	}
	return &t, nil
}

type queryParamError struct {
	name     string
	expected string
}

func (e *queryParamError) Error() string {
	return "invalid " + e.name + ": expected " + e.expected
}
