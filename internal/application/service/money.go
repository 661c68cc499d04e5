package service

import "math"

// toCents converts a decimal wire amount into integer cents. Rounds to the
// nearest cent: 19.99 has no exact float representation and must still land
// on 1999.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
