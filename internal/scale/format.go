// internal/scale/format.go
package scale

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatTick renders v with an SI prefix and no trailing zeros,
// e.g. 0.01 -> "10m", 2500 -> "2.5k", 3 -> "3".
func FormatTick(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	mantissa, prefix := humanize.ComputeSI(roundSignificant(v, 12))
	mantissa = math.Round(mantissa*1e6) / 1e6
	return strconv.FormatFloat(mantissa, 'f', -1, 64) + prefix
}

func roundSignificant(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits-1)-math.Floor(math.Log10(math.Abs(v))))
	return math.Round(v*p) / p
}
