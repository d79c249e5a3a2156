package solver

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLogCombMatchesKnownValues(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{5, 0, 0},
		{5, 5, 0},
		{5, 2, math.Log(10)},
		{10, 3, math.Log(120)},
	}
	for _, tt := range tests {
		got := logComb(tt.n, tt.k)
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("logComb(%d,%d) = %f, want %f", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestLogCombOutOfRange(t *testing.T) {
	if got := logComb(5, -1); !math.IsInf(got, -1) {
		t.Errorf("logComb(5,-1) = %f, want -Inf", got)
	}
	if got := logComb(5, 6); !math.IsInf(got, -1) {
		t.Errorf("logComb(5,6) = %f, want -Inf", got)
	}
}

func TestLogSumExpMatchesDirectSum(t *testing.T) {
	xs := []float64{math.Log(2), math.Log(3), math.Log(5)}
	got := logSumExp(xs)
	want := math.Log(10)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("logSumExp = %f, want %f", got, want)
	}
}

func TestLogSumExpEmpty(t *testing.T) {
	if got := logSumExp(nil); !math.IsInf(got, -1) {
		t.Errorf("logSumExp(nil) = %f, want -Inf", got)
	}
}

func TestLogSumExpAllNegInf(t *testing.T) {
	xs := []float64{math.Inf(-1), math.Inf(-1)}
	if got := logSumExp(xs); !math.IsInf(got, -1) {
		t.Errorf("logSumExp(all -Inf) = %f, want -Inf", got)
	}
}

func TestLogSumExpAvoidsOverflow(t *testing.T) {
	xs := []float64{1000, 1000, 1000}
	got := logSumExp(xs)
	want := 1000 + math.Log(3)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("logSumExp(large values) = %f, want %f", got, want)
	}
}

func TestWeightedMeanLogUniformWeights(t *testing.T) {
	logWeights := []float64{0, 0, 0}
	values := []float64{1, 2, 3}
	got := weightedMeanLog(logWeights, values)
	want := 2.0
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("weightedMeanLog = %f, want %f", got, want)
	}
}

func TestWeightedMeanLogSkewedWeights(t *testing.T) {
	// Weight the second value e^10 times more than the others: the mean
	// should land very close to it.
	logWeights := []float64{0, 10, 0}
	values := []float64{0, 100, 0}
	got := weightedMeanLog(logWeights, values)
	if got < 99 {
		t.Errorf("weightedMeanLog = %f, want close to 100 (dominant weight)", got)
	}
}

func TestWeightedMeanLogMismatchedLengths(t *testing.T) {
	if got := weightedMeanLog([]float64{0, 0}, []float64{1}); got != 0 {
		t.Errorf("weightedMeanLog(mismatched) = %f, want 0", got)
	}
}

func TestWeightedMeanLogEmpty(t *testing.T) {
	if got := weightedMeanLog(nil, nil); got != 0 {
		t.Errorf("weightedMeanLog(empty) = %f, want 0", got)
	}
}
