package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"backend/internal/cache"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Sentinel errors handlers map to HTTP status codes.
var (
	// ErrInvalidParam marks a rejected request parameter (unknown enum
	// value, malformed bound). Raised before any aggregation runs.
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrStoreUnavailable marks a failed order-store read. The caller may
	// retry; no partial aggregation is ever returned.
	ErrStoreUnavailable = errors.New("order store unavailable")
)

// Defaults and limits for the ranking views
const (
	DefaultTopProductsLimit   = 20
	breakdownTopProductsLimit = 15
	subscriptionsLimit        = 20
)

// Sort keys for the top-products ranking
const (
	TopProductsByQuantity = "quantity"
	TopProductsBySpending = "spending"
)

var hundred = decimal.NewFromInt(100)

// AnalyticsService computes every derived view from one consistent snapshot
// of the order store. It holds no state between requests beyond an optional
// result cache, so any number of requests may run concurrently.
type AnalyticsService interface {
	GetSummary(ctx context.Context) (model.Summary, error)
	GetSpendingOverTime(ctx context.Context, period string) (model.TimeSeries, error)
	GetTopProducts(ctx context.Context, limit int, by string) ([]model.TopProduct, error)
	GetCategories(ctx context.Context) ([]model.CategorySpend, error)
	GetPaymentMethods(ctx context.Context) ([]model.PaymentMethodSpend, error)
	GetReturns(ctx context.Context) (model.ReturnStats, error)
	GetDigitalVsRetail(ctx context.Context) (model.DigitalVsRetail, error)
	GetRetailBreakdown(ctx context.Context) (model.RetailBreakdown, error)
	GetDigitalBreakdown(ctx context.Context) (model.DigitalBreakdown, error)
	InvalidateCache()
}

type analyticsService struct {
	repo  repository.OrderRepository
	views *cache.Store[any]
}

// NewAnalyticsService returns the aggregation engine. views may be nil to
// disable caching; results are identical either way.
func NewAnalyticsService(repo repository.OrderRepository, views *cache.Store[any]) AnalyticsService {
	return &analyticsService{repo: repo, views: views}
}

func (s *analyticsService) load(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return orders, nil
}

func (s *analyticsService) cached(key string) (any, bool) {
	if s.views == nil {
		return nil, false
	}
	return s.views.Get(key)
}

func (s *analyticsService) store(key string, v any) {
	if s.views != nil {
		s.views.Set(key, v)
	}
}

// InvalidateCache drops every cached view. Called after a re-import so no
// result mixes records from two snapshots.
func (s *analyticsService) InvalidateCache() {
	if s.views != nil {
		s.views.Purge()
	}
}

func (s *analyticsService) GetSummary(ctx context.Context) (model.Summary, error) {
	if v, ok := s.cached("summary"); ok {
		return v.(model.Summary), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.Summary{}, err
	}

	summary := model.Summary{
		TotalRetailSpending:  decimal.Zero,
		TotalDigitalSpending: decimal.Zero,
		TotalSpending:        decimal.Zero,
		AverageOrderValue:    decimal.Zero,
	}

	var minDate, maxDate string
	for _, o := range orders {
		spend := o.Spend()
		if o.IsDigital {
			summary.TotalDigitalOrders++
			summary.TotalDigitalSpending = summary.TotalDigitalSpending.Add(spend)
		} else {
			summary.TotalRetailOrders++
			summary.TotalRetailSpending = summary.TotalRetailSpending.Add(spend)
		}
		if o.OrderDate != nil {
			d := o.OrderDate.Format("2006-01-02")
			if minDate == "" || d < minDate {
				minDate = d
			}
			if d > maxDate {
				maxDate = d
			}
		}
	}

	summary.TotalOrders = summary.TotalRetailOrders + summary.TotalDigitalOrders
	summary.TotalSpending = summary.TotalRetailSpending.Add(summary.TotalDigitalSpending)
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalSpending.
			Div(decimal.NewFromInt(int64(summary.TotalOrders))).Round(2)
	}
	if minDate != "" {
		summary.DateRange = model.DateRange{Start: &minDate, End: &maxDate}
	}
	summary.TotalRetailSpending = summary.TotalRetailSpending.Round(2)
	summary.TotalDigitalSpending = summary.TotalDigitalSpending.Round(2)
	summary.TotalSpending = summary.TotalSpending.Round(2)

	s.store("summary", summary)
	return summary, nil
}

func (s *analyticsService) GetSpendingOverTime(ctx context.Context, period string) (model.TimeSeries, error) {
	if !validPeriod(period) {
		return model.TimeSeries{}, fmt.Errorf("%w: period must be monthly or yearly, got %q", ErrInvalidParam, period)
	}
	key := "spending-over-time:" + period
	if v, ok := s.cached(key); ok {
		return v.(model.TimeSeries), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.TimeSeries{}, err
	}

	series := spendingSeries(orders, period)
	s.store(key, series)
	return series, nil
}

func (s *analyticsService) GetTopProducts(ctx context.Context, limit int, by string) ([]model.TopProduct, error) {
	if by != TopProductsByQuantity && by != TopProductsBySpending {
		return nil, fmt.Errorf("%w: by must be quantity or spending, got %q", ErrInvalidParam, by)
	}
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}
	key := "top-products:" + by + ":" + strconv.Itoa(limit)
	if v, ok := s.cached(key); ok {
		return v.([]model.TopProduct), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	products := rankProducts(orders, limit, by)
	s.store(key, products)
	return products, nil
}

func (s *analyticsService) GetCategories(ctx context.Context) ([]model.CategorySpend, error) {
	if v, ok := s.cached("categories"); ok {
		return v.([]model.CategorySpend), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	categories := categorySpend(orders)
	s.store("categories", categories)
	return categories, nil
}

func (s *analyticsService) GetPaymentMethods(ctx context.Context) ([]model.PaymentMethodSpend, error) {
	if v, ok := s.cached("payment-methods"); ok {
		return v.([]model.PaymentMethodSpend), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	methods := paymentMethodSpend(orders)
	s.store("payment-methods", methods)
	return methods, nil
}

func (s *analyticsService) GetReturns(ctx context.Context) (model.ReturnStats, error) {
	if v, ok := s.cached("returns"); ok {
		return v.(model.ReturnStats), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.ReturnStats{}, err
	}

	var returned []model.Order
	for _, o := range orders {
		if o.IsReturn {
			returned = append(returned, o)
		}
	}

	stats := model.ReturnStats{
		TotalReturns:    len(returned),
		ReturnRate:      decimal.Zero,
		ReturnsOverTime: countSeries(returned, PeriodMonthly),
	}
	if len(orders) > 0 {
		stats.ReturnRate = decimal.NewFromInt(int64(len(returned))).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(len(orders)))).
			Round(2)
	}

	s.store("returns", stats)
	return stats, nil
}

func (s *analyticsService) GetDigitalVsRetail(ctx context.Context) (model.DigitalVsRetail, error) {
	if v, ok := s.cached("digital-vs-retail"); ok {
		return v.(model.DigitalVsRetail), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.DigitalVsRetail{}, err
	}

	result := model.DigitalVsRetail{
		Retail:  model.ChannelStats{Spending: decimal.Zero},
		Digital: model.ChannelStats{Spending: decimal.Zero},
	}
	for _, o := range orders {
		if o.IsDigital {
			result.Digital.Orders++
			result.Digital.Spending = result.Digital.Spending.Add(o.Spend())
		} else {
			result.Retail.Orders++
			result.Retail.Spending = result.Retail.Spending.Add(o.Spend())
		}
	}
	result.Retail.Spending = result.Retail.Spending.Round(2)
	result.Digital.Spending = result.Digital.Spending.Round(2)

	s.store("digital-vs-retail", result)
	return result, nil
}

func (s *analyticsService) GetRetailBreakdown(ctx context.Context) (model.RetailBreakdown, error) {
	if v, ok := s.cached("retail-breakdown"); ok {
		return v.(model.RetailBreakdown), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.RetailBreakdown{}, err
	}

	retail := filterOrders(orders, func(o model.Order) bool { return !o.IsDigital })
	breakdown := model.RetailBreakdown{
		Categories:       categorySpend(retail),
		SpendingOverTime: spendingSeries(retail, PeriodMonthly),
		TopProducts:      rankProducts(retail, breakdownTopProductsLimit, TopProductsBySpending),
		PaymentMethods:   paymentMethodSpend(retail),
	}

	s.store("retail-breakdown", breakdown)
	return breakdown, nil
}

func (s *analyticsService) GetDigitalBreakdown(ctx context.Context) (model.DigitalBreakdown, error) {
	if v, ok := s.cached("digital-breakdown"); ok {
		return v.(model.DigitalBreakdown), nil
	}

	orders, err := s.load(ctx)
	if err != nil {
		return model.DigitalBreakdown{}, err
	}

	digital := filterOrders(orders, func(o model.Order) bool { return o.IsDigital })
	breakdown := model.DigitalBreakdown{
		Categories:       categorySpend(digital),
		SpendingOverTime: spendingSeries(digital, PeriodMonthly),
		TopProducts:      rankProducts(digital, breakdownTopProductsLimit, TopProductsBySpending),
		Subscriptions:    subscriptionSpend(digital),
	}

	s.store("digital-breakdown", breakdown)
	return breakdown, nil
}

// --- Pure aggregation helpers ---

func filterOrders(orders []model.Order, keep func(model.Order) bool) []model.Order {
	var out []model.Order
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func rankProducts(orders []model.Order, limit int, by string) []model.TopProduct {
	type bucket struct {
		quantity int
		spending decimal.Decimal
		orders   int
	}
	buckets := make(map[string]*bucket)
	for _, o := range orders {
		name := labelOrUnknown(o.ProductName)
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
		}
		b.quantity += o.Quantity
		b.spending = b.spending.Add(o.Spend())
		b.orders++
	}

	products := make([]model.TopProduct, 0, len(buckets))
	for name, b := range buckets {
		products = append(products, model.TopProduct{
			Name:     name,
			Quantity: b.quantity,
			Spending: b.spending.Round(2),
			Orders:   b.orders,
		})
	}

	sort.Slice(products, func(i, j int) bool {
		if by == TopProductsByQuantity {
			if products[i].Quantity != products[j].Quantity {
				return products[i].Quantity > products[j].Quantity
			}
		} else {
			if cmp := products[i].Spending.Cmp(products[j].Spending); cmp != 0 {
				return cmp > 0
			}
		}
		return products[i].Name < products[j].Name
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

func categorySpend(orders []model.Order) []model.CategorySpend {
	totals := make(map[string]decimal.Decimal)
	for _, o := range orders {
		label := Classify(o).CategoryLabel
		totals[label] = totals[label].Add(o.Spend())
	}

	categories := make([]model.CategorySpend, 0, len(totals))
	for name, spending := range totals {
		categories = append(categories, model.CategorySpend{Name: name, Spending: spending.Round(2)})
	}
	sort.Slice(categories, func(i, j int) bool {
		if cmp := categories[i].Spending.Cmp(categories[j].Spending); cmp != 0 {
			return cmp > 0
		}
		return categories[i].Name < categories[j].Name
	})
	return categories
}

func paymentMethodSpend(orders []model.Order) []model.PaymentMethodSpend {
	totals := make(map[string]decimal.Decimal)
	for _, o := range orders {
		label := Classify(o).PaymentLabel
		totals[label] = totals[label].Add(o.Spend())
	}

	methods := make([]model.PaymentMethodSpend, 0, len(totals))
	for method, spending := range totals {
		methods = append(methods, model.PaymentMethodSpend{Method: method, Spending: spending.Round(2)})
	}
	sort.Slice(methods, func(i, j int) bool {
		if cmp := methods[i].Spending.Cmp(methods[j].Spending); cmp != 0 {
			return cmp > 0
		}
		return methods[i].Method < methods[j].Method
	})
	return methods
}

func subscriptionSpend(orders []model.Order) []model.SubscriptionSpend {
	type bucket struct {
		count    int
		spending decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, o := range orders {
		if !HasSubscription(o) {
			continue
		}
		name := labelOrUnknown(o.ProductName)
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
		}
		b.count++
		b.spending = b.spending.Add(o.Spend())
	}

	subs := make([]model.SubscriptionSpend, 0, len(buckets))
	for name, b := range buckets {
		subs = append(subs, model.SubscriptionSpend{Name: name, Count: b.count, Spending: b.spending.Round(2)})
	}
	sort.Slice(subs, func(i, j int) bool {
		if cmp := subs[i].Spending.Cmp(subs[j].Spending); cmp != 0 {
			return cmp > 0
		}
		return subs[i].Name < subs[j].Name
	})

	if len(subs) > subscriptionsLimit {
		subs = subs[:subscriptionsLimit]
	}
	return subs
}
