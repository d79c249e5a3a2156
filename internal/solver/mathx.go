package solver

import "math"

// logComb returns log(C(n, k)), or negative infinity for k < 0 or k > n.
// Computed via lgamma to avoid overflow for large n.
func logComb(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	lg1, _ := math.Lgamma(float64(n + 1))
	lg2, _ := math.Lgamma(float64(k + 1))
	lg3, _ := math.Lgamma(float64(n-k) + 1)
	return lg1 - lg2 - lg3
}

// logSumExp computes log(sum(exp(xs))) without overflow, returning
// negative infinity for empty input or when every entry is -inf.
func logSumExp(xs []float64) float64 {
	if len(xs) == 0 {
		return math.Inf(-1)
	}

	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	if math.IsInf(m, -1) {
		return math.Inf(-1)
	}

	sum := 0.0
	for _, x := range xs {
		sum += math.Exp(x - m)
	}
	return m + math.Log(sum)
}

// weightedMeanLog computes sum(exp(logW_i - m) * v_i) / sum(exp(logW_i - m))
// with m = max(logW), returning 0 if the denominator is 0 or the inputs
// are empty/mismatched.
func weightedMeanLog(logWeights []float64, values []float64) float64 {
	if len(logWeights) == 0 || len(logWeights) != len(values) {
		return 0
	}

	m := logWeights[0]
	for _, w := range logWeights[1:] {
		if w > m {
			m = w
		}
	}
	if math.IsInf(m, -1) {
		return 0
	}

	var num, den float64
	for i, w := range logWeights {
		weight := math.Exp(w - m)
		num += weight * values[i]
		den += weight
	}
	if den == 0 {
		return 0
	}
	return num / den
}
