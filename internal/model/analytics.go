package model

import "github.com/shopspring/decimal"

// The structures below are the wire contract of the analytics API. Field
// names follow the dashboard frontend (camelCase, parallel arrays for chart
// series). Money fields are decimals rounded to two places when the result
// is assembled; they serialize as plain JSON numbers.

// DateRange holds the first and last observed order dates as YYYY-MM-DD,
// nil when the order set is empty or has no dated orders.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Summary aggregates the whole order set into headline totals
type Summary struct {
	TotalRetailOrders    int             `json:"totalRetailOrders"`
	TotalRetailSpending  decimal.Decimal `json:"totalRetailSpending"`
	TotalDigitalOrders   int             `json:"totalDigitalOrders"`
	TotalDigitalSpending decimal.Decimal `json:"totalDigitalSpending"`
	TotalOrders          int             `json:"totalOrders"`
	TotalSpending        decimal.Decimal `json:"totalSpending"`
	DateRange            DateRange       `json:"dateRange"`
	AverageOrderValue    decimal.Decimal `json:"averageOrderValue"`
}

// TimeSeries is a gap-free period series: one label per period between the
// minimum and maximum observed period, values and orderCounts parallel to it.
type TimeSeries struct {
	Labels      []string          `json:"labels"`
	Values      []decimal.Decimal `json:"values"`
	OrderCounts []int             `json:"orderCounts"`
}

// CountSeries is a gap-free period series of plain counts.
type CountSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// TopProduct is one row of the product ranking.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Spending decimal.Decimal `json:"spending"`
	Orders   int             `json:"orders"`
}

// CategorySpend is one category bucket, ordered descending by spending.
type CategorySpend struct {
	Name     string          `json:"name"`
	Spending decimal.Decimal `json:"spending"`
}

// PaymentMethodSpend is one payment-method bucket, descending by spending.
type PaymentMethodSpend struct {
	Method   string          `json:"method"`
	Spending decimal.Decimal `json:"spending"`
}

// ReturnStats layers return accounting on top of the other views; returned
// orders still count toward every spend/order total.
type ReturnStats struct {
	TotalReturns    int             `json:"totalReturns"`
	ReturnRate      decimal.Decimal `json:"returnRate"`
	ReturnsOverTime CountSeries     `json:"returnsOverTime"`
}

// ChannelStats is one side of the digital-vs-retail comparison.
type ChannelStats struct {
	Orders   int             `json:"orders"`
	Spending decimal.Decimal `json:"spending"`
}

// DigitalVsRetail partitions the order set by channel. Both sides sum back
// to the Summary totals.
type DigitalVsRetail struct {
	Retail  ChannelStats `json:"retail"`
	Digital ChannelStats `json:"digital"`
}

// RetailBreakdown is the retail-only composite view.
type RetailBreakdown struct {
	Categories       []CategorySpend      `json:"categories"`
	SpendingOverTime TimeSeries           `json:"spendingOverTime"`
	TopProducts      []TopProduct         `json:"topProducts"`
	PaymentMethods   []PaymentMethodSpend `json:"paymentMethods"`
}

// SubscriptionSpend is one recurring digital product, descending by spending.
type SubscriptionSpend struct {
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	Spending decimal.Decimal `json:"spending"`
}

// DigitalBreakdown is the digital-only composite view.
type DigitalBreakdown struct {
	Categories       []CategorySpend     `json:"categories"`
	SpendingOverTime TimeSeries          `json:"spendingOverTime"`
	TopProducts      []TopProduct        `json:"topProducts"`
	Subscriptions    []SubscriptionSpend `json:"subscriptions"`
}

// OrderRow is one row of the filtered digital order listing.
type OrderRow struct {
	OrderID          string          `json:"orderId"`
	Date             string          `json:"date"`
	ProductName      string          `json:"productName"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	Category         string          `json:"category"`
	PaymentMethod    string          `json:"paymentMethod"`
	SubscriptionInfo string          `json:"subscriptionInfo"`
}

// OrderPage is one page of the listing plus the size of the whole filtered set.
type OrderPage struct {
	Orders     []OrderRow `json:"orders"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
}
