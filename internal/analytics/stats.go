// Package analytics implements the pure computation core of the finsight
// backend: period resolution, spending-pattern analysis, anomaly detection,
// forecasting, seasonality, and financial-health scoring. Every function in
// this package is stateless and side-effect free; callers supply the records
// and persist the results.
package analytics

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values, or 0 for an
// empty slice
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(len(values)))
}

// Median returns the median of values, or 0 for an empty slice
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// zScoreCap bounds the z-score reported when the historical standard
// deviation is zero but the observed value differs from the mean.
const zScoreCap = 10.0

// ZScore returns |value - mean| / stddev. A zero stddev yields 0 when the
// value equals the mean and zScoreCap otherwise, so degenerate history never
// divides by zero.
func ZScore(value, mean, stddev float64) float64 {
	if stddev == 0 {
		if value == mean {
			return 0
		}
		return zScoreCap
	}
	return math.Abs(value-mean) / stddev
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares
// over x = 0, 1, ... len(values)-1 and reports the fit's R². Fewer than two
// points, or a degenerate denominator, yield a flat line through the mean.
func LinearRegression(values []float64) (slope, intercept, rSquared float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0, 0
	}
	if n == 1 {
		return 0, values[0], 1
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		predicted := slope*float64(i) + intercept
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		return slope, intercept, 1
	}
	return slope, intercept, 1 - ssRes/ssTot
}

// PredictNext evaluates the least-squares fit one step past the end of the
// series. Empty history predicts 0; a single point predicts that point.
func PredictNext(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	slope, intercept, _ := LinearRegression(values)
	return slope*float64(len(values)) + intercept
}

// PercentChange returns (current - previous) / previous * 100, or 0 when
// previous is 0
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
