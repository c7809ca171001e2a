package reports

import "sort"

// chartWindow is the number of most recent months shown on dashboards.
const chartWindow = 6

// MonthBar is one bar of the monthly volume chart. Width is the bar width
// as a percentage of the tallest bar in the window.
type MonthBar struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Width float64 `json:"width"`
}

// FlowBar is one month of the credit/debit split chart.
type FlowBar struct {
	Key         string  `json:"key"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	CreditWidth float64 `json:"creditWidth"`
	DebitWidth  float64 `json:"debitWidth"`
}

// TrendPoint is one normalized point of the volume trend line. Both axes
// run 0-100; Y is inverted because the rendering origin is top-left.
type TrendPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeRatio is the credit/debit share of all counted transactions.
type TypeRatio struct {
	Total         int     `json:"total"`
	CreditPercent float64 `json:"creditPercent"`
	DebitPercent  float64 `json:"debitPercent"`
}

// recentKeys returns the last n keys in lexicographic order. Zero-padded
// YYYY-MM keys make that chronological order.
func recentKeys(volumes map[string]float64, n int) []string {
	keys := make([]string, 0, len(volumes))
	for key := range volumes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	return keys
}

// MonthlySeries projects the monthly volume map into the most recent six
// bars, sized relative to the window maximum. All widths are zero when the
// window maximum is zero.
func MonthlySeries(volumes map[string]float64) []MonthBar {
	keys := recentKeys(volumes, chartWindow)

	var max float64
	for _, key := range keys {
		if volumes[key] > max {
			max = volumes[key]
		}
	}

	series := make([]MonthBar, 0, len(keys))
	for _, key := range keys {
		bar := MonthBar{Key: key, Value: volumes[key]}
		if max > 0 {
			bar.Width = volumes[key] / max * 100
		}
		series = append(series, bar)
	}
	return series
}

// TrendPoints maps a bar series onto a normalized line. X is evenly spaced
// by index; Y is 100 minus the value's share of the series maximum.
func TrendPoints(series []MonthBar) []TrendPoint {
	if len(series) == 0 {
		return nil
	}

	max := 1.0
	for _, bar := range series {
		if bar.Value > max {
			max = bar.Value
		}
	}

	span := float64(len(series) - 1)
	if span < 1 {
		span = 1
	}

	points := make([]TrendPoint, 0, len(series))
	for i, bar := range series {
		points = append(points, TrendPoint{
			X: float64(i) / span * 100,
			Y: 100 - bar.Value/max*100,
		})
	}
	return points
}

// MonthlyFlow merges the credit and debit month maps into the most recent
// six months, sized against the shared maximum of both series.
func MonthlyFlow(credits, debits map[string]float64) []FlowBar {
	merged := make(map[string]float64, len(credits)+len(debits))
	for key := range credits {
		merged[key] = 0
	}
	for key := range debits {
		merged[key] = 0
	}
	keys := recentKeys(merged, chartWindow)

	var max float64
	for _, key := range keys {
		if credits[key] > max {
			max = credits[key]
		}
		if debits[key] > max {
			max = debits[key]
		}
	}

	flow := make([]FlowBar, 0, len(keys))
	for _, key := range keys {
		bar := FlowBar{
			Key:    key,
			Credit: credits[key],
			Debit:  debits[key],
		}
		if max > 0 {
			bar.CreditWidth = credits[key] / max * 100
			bar.DebitWidth = debits[key] / max * 100
		}
		flow = append(flow, bar)
	}
	return flow
}

// TransactionTypeRatio computes the credit/debit percentage split. Both
// percentages are zero when there are no counted transactions.
func TransactionTypeRatio(creditCount, debitCount int) TypeRatio {
	ratio := TypeRatio{Total: creditCount + debitCount}
	if ratio.Total > 0 {
		ratio.CreditPercent = float64(creditCount) / float64(ratio.Total) * 100
		ratio.DebitPercent = float64(debitCount) / float64(ratio.Total) * 100
	}
	return ratio
}
