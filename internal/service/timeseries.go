package service

import (
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// Period kinds accepted by the time-series views
const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

func validPeriod(period string) bool {
	return period == PeriodMonthly || period == PeriodYearly
}

// periodKey formats a date as its bucket label: YYYY-MM for monthly,
// YYYY for yearly.
func periodKey(t time.Time, period string) string {
	if period == PeriodYearly {
		return t.Format("2006")
	}
	return t.Format("2006-01")
}

// periodRange materializes every period key between min and max inclusive.
// Chart consumers rely on the series having no gaps, so zero-activity
// periods must appear with value 0 rather than being omitted.
func periodRange(min, max, period string) []string {
	if min == "" || max == "" || min > max {
		return nil
	}

	layout := "2006-01"
	step := func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	if period == PeriodYearly {
		layout = "2006"
		step = func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }
	}

	start, err := time.Parse(layout, min)
	if err != nil {
		return nil
	}
	end, err := time.Parse(layout, max)
	if err != nil {
		return nil
	}

	var keys []string
	for t := start; !t.After(end); t = step(t) {
		keys = append(keys, t.Format(layout))
	}
	return keys
}

// spendingSeries folds orders into a gap-free period series of spend and
// order counts. Orders without a date are excluded, not an error.
func spendingSeries(orders []model.Order, period string) model.TimeSeries {
	spend := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var minKey, maxKey string

	for _, o := range orders {
		if o.OrderDate == nil {
			continue
		}
		key := periodKey(*o.OrderDate, period)
		spend[key] = spend[key].Add(o.Spend())
		counts[key]++
		if minKey == "" || key < minKey {
			minKey = key
		}
		if key > maxKey {
			maxKey = key
		}
	}

	series := model.TimeSeries{
		Labels:      []string{},
		Values:      []decimal.Decimal{},
		OrderCounts: []int{},
	}
	for _, key := range periodRange(minKey, maxKey, period) {
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, spend[key].Round(2))
		series.OrderCounts = append(series.OrderCounts, counts[key])
	}
	return series
}

// countSeries folds orders into a gap-free period series of plain counts.
func countSeries(orders []model.Order, period string) model.CountSeries {
	counts := make(map[string]int)
	var minKey, maxKey string

	for _, o := range orders {
		if o.OrderDate == nil {
			continue
		}
		key := periodKey(*o.OrderDate, period)
		counts[key]++
		if minKey == "" || key < minKey {
			minKey = key
		}
		if key > maxKey {
			maxKey = key
		}
	}

	series := model.CountSeries{Labels: []string{}, Values: []int{}}
	for _, key := range periodRange(minKey, maxKey, period) {
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, counts[key])
	}
	return series
}
