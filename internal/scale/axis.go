// internal/scale/axis.go
package scale

import (
	"fmt"

	"github.com/mwiater/queueviz/internal/scene"
)

// Orientation is the side of the plot an axis is drawn on.
type Orientation int

const (
	Top Orientation = iota
	Right
	Bottom
	Left
)

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

const (
	// DefaultTickCount is the approximate number of ticks per axis.
	DefaultTickCount = 10
	// TickSize is the length of a tick mark in pixels.
	TickSize = 6
	// TickPadding separates a tick mark from its label.
	TickPadding = 3
	// FontSize is the size of tick labels and axis titles.
	FontSize = 10
)

// Tick is one labelled position along an axis.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// AxisScale is what an axis needs from a scale.
type AxisScale interface {
	Range() (float64, float64)
	AxisTicks(count int) []Tick
}

// Axis is a computed axis layout: ticks along the scale range plus the
// title position, relative to the axis origin (X, Y).
type Axis struct {
	Orientation Orientation
	X, Y        float64
	Label       string
	Ticks       []Tick

	RangeStart, RangeEnd float64
	TitleX, TitleY       float64
}

// NewAxis lays out an axis for s translated to (x, y).
func NewAxis(s AxisScale, o Orientation, label string, x, y float64) Axis {
	r0, r1 := s.Range()
	a := Axis{
		Orientation: o,
		X:           x,
		Y:           y,
		Label:       label,
		Ticks:       s.AxisTicks(DefaultTickCount),
		RangeStart:  r0,
		RangeEnd:    r1,
	}
	switch o {
	case Top:
		a.TitleX, a.TitleY = r1, 0
	case Right:
		a.TitleX, a.TitleY = 20, 0
	case Bottom:
		a.TitleX, a.TitleY = r1, 25
	default:
		a.TitleX, a.TitleY = -20, r1-10
	}
	return a
}

func (a Axis) horizontal() bool { return a.Orientation == Top || a.Orientation == Bottom }

// Scene renders the axis: domain line, tick marks, tick labels and title.
func (a Axis) Scene() *scene.Group {
	g := &scene.Group{Class: "axis-" + a.Orientation.String(), X: a.X, Y: a.Y}

	if a.horizontal() {
		g.Add(&scene.Line{X1: a.RangeStart, Y1: 0, X2: a.RangeEnd, Y2: 0, Stroke: scene.Ink})
	} else {
		g.Add(&scene.Line{X1: 0, Y1: a.RangeStart, X2: 0, Y2: a.RangeEnd, Stroke: scene.Ink})
	}

	dir := 1.0
	if a.Orientation == Top || a.Orientation == Left {
		dir = -1
	}
	offset := dir * (TickSize + TickPadding)
	for _, t := range a.Ticks {
		if a.horizontal() {
			labelY := offset
			if dir > 0 {
				labelY += FontSize * 0.8
			}
			g.Add(
				&scene.Line{X1: t.Pos, Y1: 0, X2: t.Pos, Y2: dir * TickSize, Stroke: scene.Ink},
				&scene.Text{X: t.Pos, Y: labelY, Body: t.Label, Anchor: scene.AnchorMiddle, Size: FontSize, Fill: scene.Ink},
			)
			continue
		}
		anchor := scene.AnchorStart
		if dir < 0 {
			anchor = scene.AnchorEnd
		}
		g.Add(
			&scene.Line{X1: 0, Y1: t.Pos, X2: dir * TickSize, Y2: t.Pos, Stroke: scene.Ink},
			&scene.Text{X: offset, Y: t.Pos + FontSize*0.32, Body: t.Label, Anchor: anchor, Size: FontSize, Fill: scene.Ink},
		)
	}

	if a.Label != "" {
		g.Add(&scene.Text{X: a.TitleX, Y: a.TitleY, Body: a.Label, Anchor: scene.AnchorStart, Size: FontSize, Fill: scene.Ink})
	}
	return g
}
