package handler

import (
	"context"
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderQueryService struct {
	err  error
	page model.OrderPage
	last service.OrderQueryParams
}

func (s *stubOrderQueryService) QueryDigitalOrders(ctx context.Context, params service.OrderQueryParams) (model.OrderPage, error) {
	s.last = params
	return s.page, s.err
}

func newOrdersRouter(stub service.OrderQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewOrderHandler(stub).RegisterRoutes(router.Group(""))
	return router
}

func TestListDigitalOrdersParsesFilters(t *testing.T) {
	stub := &stubOrderQueryService{page: model.OrderPage{Orders: []model.OrderRow{}, TotalPages: 1}}
	router := newOrdersRouter(stub)

	resp := doRequest(router, http.MethodGet,
		"/api/orders?category=Movies&minPrice=1.50&maxPrice=9.99&startDate=2023-01-01&endDate=2023-12-31&page=2&pageSize=50&sortBy=price&sortOrder=asc")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, "Movies", stub.last.Category)
	require.NotNil(t, stub.last.MinPrice)
	assert.Equal(t, "1.5", stub.last.MinPrice.String())
	require.NotNil(t, stub.last.MaxPrice)
	assert.Equal(t, "9.99", stub.last.MaxPrice.String())
	require.NotNil(t, stub.last.StartDate)
	assert.Equal(t, "2023-01-01", stub.last.StartDate.Format("2006-01-02"))
	require.NotNil(t, stub.last.EndDate)
	assert.Equal(t, "2023-12-31", stub.last.EndDate.Format("2006-01-02"))
	assert.Equal(t, 2, stub.last.Page)
	assert.Equal(t, 50, stub.last.PageSize)
	assert.Equal(t, service.SortByPrice, stub.last.SortBy)
	assert.Equal(t, service.SortAsc, stub.last.SortOrder)
}

func TestListDigitalOrdersDefaults(t *testing.T) {
	stub := &stubOrderQueryService{page: model.OrderPage{Orders: []model.OrderRow{}, TotalPages: 1}}
	router := newOrdersRouter(stub)

	resp := doRequest(router, http.MethodGet, "/api/orders?category=Movies")
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Nil(t, stub.last.MinPrice)
	assert.Nil(t, stub.last.StartDate)
	assert.Equal(t, service.DefaultPage, stub.last.Page)
	assert.Equal(t, service.DefaultPageSize, stub.last.PageSize)
}

func TestListDigitalOrdersRejectsMalformedParams(t *testing.T) {
	stub := &stubOrderQueryService{}
	router := newOrdersRouter(stub)

	for _, target := range []string{
		"/api/orders?category=Movies&minPrice=cheap",
		"/api/orders?category=Movies&maxPrice=1.2.3",
		"/api/orders?category=Movies&startDate=January",
		"/api/orders?category=Movies&endDate=2023-13-99",
	} {
		resp := doRequest(router, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, resp.Code, "target %s", target)
	}
}

func TestListDigitalOrdersMapsServiceErrors(t *testing.T) {
	stub := &stubOrderQueryService{err: service.ErrInvalidParam}
	resp := doRequest(newOrdersRouter(stub), http.MethodGet, "/api/orders")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	stub = &stubOrderQueryService{err: service.ErrStoreUnavailable}
	resp = doRequest(newOrdersRouter(stub), http.MethodGet, "/api/orders?category=Movies")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
