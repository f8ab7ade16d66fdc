package calculator

import (
	"errors"
	"math"
)

// CalculateRange scans the most recent `window` closes and returns the
// high and low. Uses all closes when fewer than `window` are available.
func CalculateRange(closes []float64, window int) (high, low float64, err error) {
	if len(closes) == 0 {
		return 0, 0, errors.New("no closes provided")
	}
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	start := len(closes) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(closes); i++ {
		if closes[i] > high {
			high = closes[i]
		}
		if closes[i] < low {
			low = closes[i]
		}
	}
	return high, low, nil
}
