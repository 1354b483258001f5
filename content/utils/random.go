package utils

import "math/rand"

// RandomSpan 返回 [0, span] 内均匀分布的值，span 小于 0 时返回 0
func RandomSpan(r *rand.Rand, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return r.Float64() * span
}
