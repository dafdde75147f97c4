package analytics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"several", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"constant", []float64{7, 7, 7}, 0},
		// Population standard deviation, not sample
		{"two points", []float64{900, 1100}, 100},
		{"known", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StdDev(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("StdDev(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestZScore(t *testing.T) {
	tests := []struct {
		name                string
		value, mean, stddev float64
		want                float64
	}{
		{"typical", 1350, 1000, 100, 3.5},
		{"at mean", 1000, 1000, 100, 0},
		{"below mean", 800, 1000, 100, 2},
		{"zero stddev at mean", 1000, 1000, 0, 0},
		{"zero stddev off mean", 1001, 1000, 0, zScoreCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZScore(tt.value, tt.mean, tt.stddev); !almostEqual(got, tt.want) {
				t.Errorf("ZScore(%v, %v, %v) = %v, want %v", tt.value, tt.mean, tt.stddev, got, tt.want)
			}
		})
	}
}

func TestLinearRegression(t *testing.T) {
	t.Run("perfect line", func(t *testing.T) {
		slope, intercept, r2 := LinearRegression([]float64{1, 3, 5, 7})
		if !almostEqual(slope, 2) || !almostEqual(intercept, 1) {
			t.Errorf("got slope=%v intercept=%v, want 2 and 1", slope, intercept)
		}
		if !almostEqual(r2, 1) {
			t.Errorf("got r2=%v, want 1", r2)
		}
	})

	t.Run("flat series", func(t *testing.T) {
		slope, intercept, r2 := LinearRegression([]float64{4, 4, 4})
		if !almostEqual(slope, 0) || !almostEqual(intercept, 4) {
			t.Errorf("got slope=%v intercept=%v, want 0 and 4", slope, intercept)
		}
		if !almostEqual(r2, 1) {
			t.Errorf("got r2=%v, want 1 for zero-variance series", r2)
		}
	})

	t.Run("empty", func(t *testing.T) {
		slope, intercept, r2 := LinearRegression(nil)
		if slope != 0 || intercept != 0 || r2 != 0 {
			t.Errorf("got %v %v %v, want all zero", slope, intercept, r2)
		}
	})

	t.Run("single point", func(t *testing.T) {
		slope, intercept, r2 := LinearRegression([]float64{9})
		if !almostEqual(slope, 0) || !almostEqual(intercept, 9) || !almostEqual(r2, 1) {
			t.Errorf("got %v %v %v, want 0 9 1", slope, intercept, r2)
		}
	})
}

func TestPredictNext(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"linear", []float64{1, 2, 3}, 4},
		{"flat", []float64{10, 10, 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PredictNext(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("PredictNext(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"zero previous", 100, 0, 0},
		{"no change", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); !almostEqual(got, tt.want) {
				t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}
