// internal/scale/scale.go
// Package scale maps data domains to pixel ranges and lays out axes.
package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain reports a domain the scale cannot represent.
var ErrDomain = errors.New("invalid scale domain")

type scaleKind int

const (
	kindLinear scaleKind = iota
	kindLog
)

// maxTicks bounds tick generation for pathological domains.
const maxTicks = 1000

// Continuous maps a numeric domain [D0, D1] onto a pixel range [R0, R1],
// linearly or in log10 space. Values are immutable; methods return copies.
type Continuous struct {
	kind   scaleKind
	d0, d1 float64
	r0, r1 float64
}

// Linear returns a linear scale.
func Linear(d0, d1, r0, r1 float64) Continuous {
	return Continuous{kind: kindLinear, d0: d0, d1: d1, r0: r0, r1: r1}
}

// Log returns a base-10 logarithmic scale. The domain must be strictly positive.
func Log(d0, d1, r0, r1 float64) (Continuous, error) {
	if !(d0 > 0 && d1 > 0) || math.IsInf(d0, 0) || math.IsInf(d1, 0) {
		return Continuous{}, fmt.Errorf("%w: log domain [%v, %v] must be positive", ErrDomain, d0, d1)
	}
	return Continuous{kind: kindLog, d0: d0, d1: d1, r0: r0, r1: r1}, nil
}

// Domain returns the domain bounds.
func (s Continuous) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the pixel range bounds.
func (s Continuous) Range() (float64, float64) { return s.r0, s.r1 }

func (s Continuous) transform(v float64) float64 {
	if s.kind == kindLog {
		return math.Log10(v)
	}
	return v
}

func (s Continuous) untransform(v float64) float64 {
	if s.kind == kindLog {
		return math.Pow(10, v)
	}
	return v
}

// Map converts a domain value to a pixel position. A degenerate domain maps
// everything to the middle of the range.
func (s Continuous) Map(v float64) float64 {
	t0, t1 := s.transform(s.d0), s.transform(s.d1)
	if t1 == t0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (s.transform(v)-t0)/(t1-t0)*(s.r1-s.r0)
}

// Invert converts a pixel position back to a domain value.
func (s Continuous) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return s.d0
	}
	t0, t1 := s.transform(s.d0), s.transform(s.d1)
	return s.untransform(t0 + (px-s.r0)/(s.r1-s.r0)*(t1-t0))
}

// Nice extends the domain to round values so that the first and last ticks
// land on the domain edges. Linear scales snap to multiples of the tick
// step for count ticks; log scales snap to whole powers of ten.
func (s Continuous) Nice(count int) Continuous {
	lo, hi := s.d0, s.d1
	reversed := hi < lo
	if reversed {
		lo, hi = hi, lo
	}

	if s.kind == kindLog {
		lo = math.Pow(10, math.Floor(math.Log10(lo)))
		hi = math.Pow(10, math.Ceil(math.Log10(hi)))
	} else {
		lo, hi = niceLinear(lo, hi, count)
	}

	if reversed {
		lo, hi = hi, lo
	}
	s.d0, s.d1 = lo, hi
	return s
}

func niceLinear(lo, hi float64, count int) (float64, float64) {
	var prestep float64
	for i := 0; i < 10; i++ {
		step := tickIncrement(lo, hi, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		case step < 0:
			lo = math.Ceil(lo*step) / step
			hi = math.Floor(hi*step) / step
		default:
			return lo, hi
		}
		prestep = step
	}
	return lo, hi
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the 1/2/5 x 10^k step for roughly count ticks over
// [lo, hi]. Steps below one are returned as the negated reciprocal so that
// decimal ticks can be produced by division without accumulating error.
func tickIncrement(lo, hi float64, count int) float64 {
	if count <= 0 || !(hi > lo) {
		return 0
	}
	step := (hi - lo) / float64(count)
	power := math.Floor(math.Log10(step))
	ratio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}
	if power < 0 {
		return -math.Pow(10, -power) / factor
	}
	return factor * math.Pow(10, power)
}

// Ticks returns roughly count readable values inside the domain, ascending.
func (s Continuous) Ticks(count int) []float64 {
	lo, hi := s.d0, s.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	if s.kind == kindLog {
		return logTicks(lo, hi, count)
	}
	if lo == hi {
		return []float64{lo}
	}
	return linearTicks(lo, hi, count)
}

func linearTicks(lo, hi float64, count int) []float64 {
	inc := tickIncrement(lo, hi, count)
	var out []float64
	switch {
	case inc > 0:
		i0 := math.Ceil(lo/inc - 1e-9)
		i1 := math.Floor(hi/inc + 1e-9)
		for i := i0; i <= i1 && len(out) < maxTicks; i++ {
			out = append(out, i*inc)
		}
	case inc < 0:
		den := -inc
		i0 := math.Ceil(lo*den - 1e-9)
		i1 := math.Floor(hi*den + 1e-9)
		for i := i0; i <= i1 && len(out) < maxTicks; i++ {
			out = append(out, i/den)
		}
	}
	return out
}

func logTicks(lo, hi float64, count int) []float64 {
	i := int(math.Floor(math.Log10(lo)))
	j := int(math.Ceil(math.Log10(hi)))
	within := func(v float64) bool {
		return v >= lo*(1-1e-12) && v <= hi*(1+1e-12)
	}

	var out []float64
	if j-i < count {
		for p := i; p <= j; p++ {
			for k := 1; k <= 9; k++ {
				if v := float64(k) * math.Pow10(p); within(v) {
					out = append(out, v)
				}
			}
		}
	} else {
		for p := i; p <= j; p++ {
			if v := math.Pow10(p); within(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// AxisTicks returns count ticks with pixel positions and SI labels.
func (s Continuous) AxisTicks(count int) []Tick {
	values := s.Ticks(count)
	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{Value: v, Pos: s.Map(v), Label: FormatTick(v)}
	}
	return out
}
