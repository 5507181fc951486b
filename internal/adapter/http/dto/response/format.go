package response

import (
	"fmt"
	"math"
	"time"
)

// Amount converts minor currency units to a decimal amount.
func Amount(minor int64) float64 {
	return float64(minor) / 100
}

// Hours returns d in hours rounded to two decimals.
func Hours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
