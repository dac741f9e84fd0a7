package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Listing defaults and limits
const (
	DefaultPage     = 1
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Sort columns accepted by the listing
const (
	SortByOrderDate   = "orderDate"
	SortByProductName = "productName"
	SortByPrice       = "price"
	SortByQuantity    = "quantity"
	SortByOrderID     = "orderId"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// OrderQueryParams are the inputs of the digital order listing. Bounds are
// inclusive; nil means unbounded.
type OrderQueryParams struct {
	Category  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// OrderQueryService answers the filtered, sorted, paginated digital order
// listing over one snapshot of the order store.
type OrderQueryService interface {
	QueryDigitalOrders(ctx context.Context, params OrderQueryParams) (model.OrderPage, error)
}

type orderQueryService struct {
	repo repository.OrderRepository
}

func NewOrderQueryService(repo repository.OrderRepository) OrderQueryService {
	return &orderQueryService{repo: repo}
}

func (s *orderQueryService) QueryDigitalOrders(ctx context.Context, params OrderQueryParams) (model.OrderPage, error) {
	if err := normalizeQueryParams(&params); err != nil {
		return model.OrderPage{}, err
	}

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return model.OrderPage{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	filtered := filterDigitalOrders(orders, params)
	sortOrders(filtered, params.SortBy, params.SortOrder)

	total := len(filtered)
	totalPages := (total + params.PageSize - 1) / params.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := model.OrderPage{
		Orders:     []model.OrderRow{},
		Total:      total,
		TotalPages: totalPages,
	}

	start := (params.Page - 1) * params.PageSize
	if start < total {
		end := start + params.PageSize
		if end > total {
			end = total
		}
		for _, o := range filtered[start:end] {
			page.Orders = append(page.Orders, toOrderRow(o))
		}
	}

	return page, nil
}

// normalizeQueryParams validates enums and applies the documented defaults:
// page and pageSize clamp, sortBy defaults to orderDate, sortOrder to desc.
// Unknown enum values are rejected rather than coerced.
func normalizeQueryParams(params *OrderQueryParams) error {
	if params.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidParam)
	}

	if params.SortBy == "" {
		params.SortBy = SortByOrderDate
	}
	switch params.SortBy {
	case SortByOrderDate, SortByProductName, SortByPrice, SortByQuantity, SortByOrderID:
	default:
		return fmt.Errorf("%w: unknown sortBy %q", ErrInvalidParam, params.SortBy)
	}

	if params.SortOrder == "" {
		params.SortOrder = SortDesc
	}
	if params.SortOrder != SortAsc && params.SortOrder != SortDesc {
		return fmt.Errorf("%w: sortOrder must be asc or desc, got %q", ErrInvalidParam, params.SortOrder)
	}

	if params.MinPrice != nil && params.MaxPrice != nil && params.MinPrice.GreaterThan(*params.MaxPrice) {
		return fmt.Errorf("%w: minPrice exceeds maxPrice", ErrInvalidParam)
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	return nil
}

// filterDigitalOrders applies the filter pipeline in its documented order:
// digital only, category, price bounds, date bounds. Orders with no date are
// excluded whenever a date bound is present.
func filterDigitalOrders(orders []model.Order, params OrderQueryParams) []model.Order {
	var out []model.Order
	dateBounded := params.StartDate != nil || params.EndDate != nil

	for _, o := range orders {
		if !o.IsDigital {
			continue
		}
		if Classify(o).CategoryLabel != params.Category {
			continue
		}
		if params.MinPrice != nil && o.Price.LessThan(*params.MinPrice) {
			continue
		}
		if params.MaxPrice != nil && o.Price.GreaterThan(*params.MaxPrice) {
			continue
		}
		if dateBounded {
			if o.OrderDate == nil {
				continue
			}
			if params.StartDate != nil && o.OrderDate.Before(*params.StartDate) {
				continue
			}
			if params.EndDate != nil && o.OrderDate.After(*params.EndDate) {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// sortOrders sorts in place by the requested column, breaking every tie by
// orderId ascending so repeated queries paginate identically. Orders without
// a date sort as the zero time.
func sortOrders(orders []model.Order, sortBy, sortOrder string) {
	asc := sortOrder == SortAsc

	less := func(i, j int) bool {
		var cmp int
		switch sortBy {
		case SortByProductName:
			cmp = compareStrings(orders[i].ProductName, orders[j].ProductName)
		case SortByPrice:
			cmp = orders[i].Price.Cmp(orders[j].Price)
		case SortByQuantity:
			cmp = orders[i].Quantity - orders[j].Quantity
		case SortByOrderID:
			cmp = compareStrings(orders[i].OrderID, orders[j].OrderID)
		default: // SortByOrderDate
			cmp = compareDates(orders[i].OrderDate, orders[j].OrderDate)
		}
		if cmp != 0 {
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}
		return compareStrings(orders[i].OrderID, orders[j].OrderID) < 0
	}

	sort.SliceStable(orders, less)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDates(a, b *time.Time) int {
	at, bt := time.Time{}, time.Time{}
	if a != nil {
		at = *a
	}
	if b != nil {
		bt = *b
	}
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}

func toOrderRow(o model.Order) model.OrderRow {
	date := ""
	if o.OrderDate != nil {
		date = o.OrderDate.Format("2006-01-02")
	}
	return model.OrderRow{
		OrderID:          o.OrderID,
		Date:             date,
		ProductName:      o.ProductName,
		Price:            o.Price.Round(2),
		Quantity:         o.Quantity,
		Category:         Classify(o).CategoryLabel,
		PaymentMethod:    Classify(o).PaymentLabel,
		SubscriptionInfo: o.SubscriptionInfo,
	}
}
