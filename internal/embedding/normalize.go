// Package embedding hosts the embedder implementations. Every embedder
// returns L2-normalized vectors so cosine similarity reduces to a dot
// product over stored entries.
package embedding

import "math"

// Normalize scales v to unit length in place. Zero vectors are left as is.
func Normalize(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] *= inv
	}
}
