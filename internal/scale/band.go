// internal/scale/band.go
package scale

import "slices"

// Band divides a pixel range into equal, unpadded bands, one per label.
type Band struct {
	labels []string
	r0, r1 float64
}

// NewBand returns a band scale over labels mapped onto [r0, r1].
func NewBand(labels []string, r0, r1 float64) Band {
	return Band{labels: slices.Clone(labels), r0: r0, r1: r1}
}

// Range returns the pixel range bounds.
func (b Band) Range() (float64, float64) { return b.r0, b.r1 }

// Bandwidth is the width of each band.
func (b Band) Bandwidth() float64 {
	if len(b.labels) == 0 {
		return 0
	}
	return (b.r1 - b.r0) / float64(len(b.labels))
}

// Position returns the start of label's band.
func (b Band) Position(label string) (float64, bool) {
	i := slices.Index(b.labels, label)
	if i < 0 {
		return 0, false
	}
	return b.r0 + float64(i)*b.Bandwidth(), true
}

// Center returns the middle of label's band.
func (b Band) Center(label string) (float64, bool) {
	p, ok := b.Position(label)
	return p + b.Bandwidth()/2, ok
}

// AxisTicks places one tick at the centre of every band. count is ignored.
func (b Band) AxisTicks(int) []Tick {
	out := make([]Tick, len(b.labels))
	for i, l := range b.labels {
		c, _ := b.Center(l)
		out[i] = Tick{Value: float64(i), Pos: c, Label: l}
	}
	return out
}
