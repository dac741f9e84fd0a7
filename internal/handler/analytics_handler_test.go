package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyticsService returns canned views; err, when set, is returned by
// every method.
type stubAnalyticsService struct {
	err         error
	summary     model.Summary
	series      model.TimeSeries
	products    []model.TopProduct
	lastLimit   int
	lastBy      string
	invalidated bool
}

func (s *stubAnalyticsService) GetSummary(ctx context.Context) (model.Summary, error) {
	return s.summary, s.err
}

func (s *stubAnalyticsService) GetSpendingOverTime(ctx context.Context, period string) (model.TimeSeries, error) {
	if period != service.PeriodMonthly && period != service.PeriodYearly {
		return model.TimeSeries{}, service.ErrInvalidParam
	}
	return s.series, s.err
}

func (s *stubAnalyticsService) GetTopProducts(ctx context.Context, limit int, by string) ([]model.TopProduct, error) {
	s.lastLimit = limit
	s.lastBy = by
	return s.products, s.err
}

func (s *stubAnalyticsService) GetCategories(ctx context.Context) ([]model.CategorySpend, error) {
	return []model.CategorySpend{}, s.err
}

func (s *stubAnalyticsService) GetPaymentMethods(ctx context.Context) ([]model.PaymentMethodSpend, error) {
	return []model.PaymentMethodSpend{}, s.err
}

func (s *stubAnalyticsService) GetReturns(ctx context.Context) (model.ReturnStats, error) {
	return model.ReturnStats{}, s.err
}

func (s *stubAnalyticsService) GetDigitalVsRetail(ctx context.Context) (model.DigitalVsRetail, error) {
	return model.DigitalVsRetail{}, s.err
}

func (s *stubAnalyticsService) GetRetailBreakdown(ctx context.Context) (model.RetailBreakdown, error) {
	return model.RetailBreakdown{}, s.err
}

func (s *stubAnalyticsService) GetDigitalBreakdown(ctx context.Context) (model.DigitalBreakdown, error) {
	return model.DigitalBreakdown{}, s.err
}

func (s *stubAnalyticsService) InvalidateCache() { s.invalidated = true }

func newStatsRouter(stub service.AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAnalyticsHandler(stub).RegisterRoutes(router.Group(""))
	return router
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetSummaryEndpoint(t *testing.T) {
	stub := &stubAnalyticsService{
		summary: model.Summary{
			TotalOrders:   2,
			TotalSpending: decimal.RequireFromString("25"),
		},
	}
	resp := doRequest(newStatsRouter(stub), http.MethodGet, "/api/stats/summary")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Status string        `json:"status"`
		Data   model.Summary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, 2, envelope.Data.TotalOrders)
	assert.True(t, envelope.Data.TotalSpending.Equal(decimal.RequireFromString("25")))
}

func TestGetSpendingOverTimeEndpointDefaultsToMonthly(t *testing.T) {
	stub := &stubAnalyticsService{
		series: model.TimeSeries{Labels: []string{"2023-01"}, Values: []decimal.Decimal{decimal.NewFromInt(5)}, OrderCounts: []int{1}},
	}
	resp := doRequest(newStatsRouter(stub), http.MethodGet, "/api/stats/spending-over-time")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestGetSpendingOverTimeEndpointRejectsUnknownPeriod(t *testing.T) {
	resp := doRequest(newStatsRouter(&stubAnalyticsService{}), http.MethodGet, "/api/stats/spending-over-time?period=weekly")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var envelope struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.NotEmpty(t, envelope.Error)
}

func TestGetTopProductsEndpointParsesParams(t *testing.T) {
	stub := &stubAnalyticsService{}
	router := newStatsRouter(stub)

	resp := doRequest(router, http.MethodGet, "/api/stats/top-products?limit=5&by=spending")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 5, stub.lastLimit)
	assert.Equal(t, service.TopProductsBySpending, stub.lastBy)

	resp = doRequest(router, http.MethodGet, "/api/stats/top-products")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, service.DefaultTopProductsLimit, stub.lastLimit)
	assert.Equal(t, service.TopProductsByQuantity, stub.lastBy)

	resp = doRequest(router, http.MethodGet, "/api/stats/top-products?limit=lots")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetCategoriesEndpointWrapsArray(t *testing.T) {
	resp := doRequest(newStatsRouter(&stubAnalyticsService{}), http.MethodGet, "/api/stats/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Data struct {
			Categories []model.CategorySpend `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotNil(t, envelope.Data.Categories)
}

func TestStatsEndpointsMapStoreErrorsTo503(t *testing.T) {
	stub := &stubAnalyticsService{err: service.ErrStoreUnavailable}
	router := newStatsRouter(stub)

	for _, target := range []string{
		"/api/stats/summary",
		"/api/stats/top-products",
		"/api/stats/categories",
		"/api/stats/payment-methods",
		"/api/stats/returns",
		"/api/stats/digital-vs-retail",
		"/api/stats/retail-breakdown",
		"/api/stats/digital-breakdown",
	} {
		resp := doRequest(router, http.MethodGet, target)
		assert.Equal(t, http.StatusServiceUnavailable, resp.Code, "target %s", target)
	}
}

func TestInvalidateCacheEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubAnalyticsService{}
	router := gin.New()
	// Routes registered without the role middleware; RequireRole has its own
	// coverage in the middleware package.
	router.POST("/api/admin/cache/invalidate", NewAdminHandler(stub).InvalidateCache)

	resp := doRequest(router, http.MethodPost, "/api/admin/cache/invalidate")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, stub.invalidated)
}
