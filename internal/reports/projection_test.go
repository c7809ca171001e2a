package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySeries(t *testing.T) {
	volumes := map[string]float64{
		"2024-01": 10,
		"2024-02": 20,
		"2024-03": 5,
	}

	series := MonthlySeries(volumes)

	require.Len(t, series, 3)
	assert.Equal(t, MonthBar{Key: "2024-01", Value: 10, Width: 50}, series[0])
	assert.Equal(t, MonthBar{Key: "2024-02", Value: 20, Width: 100}, series[1])
	assert.Equal(t, MonthBar{Key: "2024-03", Value: 5, Width: 25}, series[2])
}

func TestMonthlySeriesWindow(t *testing.T) {
	volumes := map[string]float64{
		"2023-10": 1, "2023-11": 2, "2023-12": 3,
		"2024-01": 4, "2024-02": 5, "2024-03": 6, "2024-04": 7,
	}

	series := MonthlySeries(volumes)

	require.Len(t, series, 6)
	assert.Equal(t, "2023-11", series[0].Key)
	assert.Equal(t, "2024-04", series[5].Key)
}

func TestMonthlySeriesZeroMax(t *testing.T) {
	series := MonthlySeries(map[string]float64{"2024-01": 0, "2024-02": 0})

	require.Len(t, series, 2)
	for _, bar := range series {
		assert.Zero(t, bar.Width)
	}
}

func TestMonthlySeriesEmpty(t *testing.T) {
	assert.Empty(t, MonthlySeries(nil))
}

func TestTrendPoints(t *testing.T) {
	series := []MonthBar{
		{Key: "2024-01", Value: 0},
		{Key: "2024-02", Value: 50},
		{Key: "2024-03", Value: 100},
	}

	points := TrendPoints(series)

	require.Len(t, points, 3)
	assert.Equal(t, TrendPoint{X: 0, Y: 100}, points[0])
	assert.Equal(t, TrendPoint{X: 50, Y: 50}, points[1])
	assert.Equal(t, TrendPoint{X: 100, Y: 0}, points[2])
}

func TestTrendPointsAllZero(t *testing.T) {
	// The maximum is clamped to one so flat series stay on the baseline.
	points := TrendPoints([]MonthBar{{Value: 0}, {Value: 0}})

	require.Len(t, points, 2)
	assert.Equal(t, 100.0, points[0].Y)
	assert.Equal(t, 100.0, points[1].Y)
}

func TestTrendPointsSinglePoint(t *testing.T) {
	points := TrendPoints([]MonthBar{{Value: 5}})

	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].X)
}

func TestTrendPointsEmpty(t *testing.T) {
	assert.Nil(t, TrendPoints(nil))
}

func TestMonthlyFlow(t *testing.T) {
	credits := map[string]float64{"2024-01": 100, "2024-02": 40}
	debits := map[string]float64{"2024-02": 50, "2024-03": 25}

	flow := MonthlyFlow(credits, debits)

	require.Len(t, flow, 3)
	assert.Equal(t, FlowBar{Key: "2024-01", Credit: 100, Debit: 0, CreditWidth: 100, DebitWidth: 0}, flow[0])
	assert.Equal(t, FlowBar{Key: "2024-02", Credit: 40, Debit: 50, CreditWidth: 40, DebitWidth: 50}, flow[1])
	assert.Equal(t, FlowBar{Key: "2024-03", Credit: 0, Debit: 25, CreditWidth: 0, DebitWidth: 25}, flow[2])
}

func TestMonthlyFlowEmpty(t *testing.T) {
	assert.Empty(t, MonthlyFlow(nil, nil))
}

func TestTransactionTypeRatio(t *testing.T) {
	ratio := TransactionTypeRatio(3, 1)

	assert.Equal(t, 4, ratio.Total)
	assert.InDelta(t, 75, ratio.CreditPercent, 1e-9)
	assert.InDelta(t, 25, ratio.DebitPercent, 1e-9)
}

func TestTransactionTypeRatioEmpty(t *testing.T) {
	assert.Equal(t, TypeRatio{}, TransactionTypeRatio(0, 0))
}
