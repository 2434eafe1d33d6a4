package surge

import (
	"math"
	"time"

	"go-surgesense/types"
)

// Multiplier combines environmental and calendar factors into one
// scalar. It starts at 1.0, multiplies in the first matching rule of
// each factor group and rounds once, at the end, to 2 decimals. It is a
// pure function: the same reading and date always produce the same
// result.
func Multiplier(r types.EnvironmentalReading, at time.Time) float64 {
	multiplier := 1.0
	for _, group := range factorGroups {
		for _, rule := range group {
			if rule.applies(r, at) {
				multiplier *= rule.weight
				break
			}
		}
	}
	return round2(multiplier)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
