package utils

import "golang.org/x/exp/constraints"

// Average divides total by count, returning 0 for an empty count.
func Average[T constraints.Integer](total, count T) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
