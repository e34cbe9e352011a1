// internal/render/render.go
// Package render draws a scene onto a go-chart renderer and writes the
// result as SVG or PNG.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mwiater/queueviz/internal/scene"
)

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ErrFormat reports an unsupported output format.
var ErrFormat = errors.New("unsupported image format")

// ParseFormat resolves "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// ContentType is the MIME type of f.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case SVG:
		return chart.SVG, nil
	case PNG:
		return chart.PNG, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, f)
}

// Write draws root on a width x height canvas with a white background and
// saves it to w.
func Write(w io.Writer, root scene.Node, width, height int, f Format) error {
	provider, err := f.provider()
	if err != nil {
		return err
	}
	r, err := provider(width, height)
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", f, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	scene.Walk(root, func(n scene.Node, dx, dy float64) {
		r.ResetStyle()
		switch n := n.(type) {
		case *scene.Rect:
			drawRect(r, n, dx, dy)
		case *scene.Line:
			r.SetStrokeColor(Color(n.Stroke))
			r.SetStrokeWidth(1)
			r.MoveTo(px(n.X1+dx), px(n.Y1+dy))
			r.LineTo(px(n.X2+dx), px(n.Y2+dy))
			r.Stroke()
		case *scene.Circle:
			r.SetFillColor(Color(n.Fill))
			r.SetStrokeColor(Color(n.Fill))
			r.SetStrokeWidth(1)
			r.Circle(n.R, px(n.CX+dx), px(n.CY+dy))
			r.FillStroke()
		case *scene.Text:
			drawText(r, n, dx, dy, font)
		}
	})

	if err := r.Save(w); err != nil {
		return fmt.Errorf("save %s: %w", f, err)
	}
	return nil
}

// WriteFile writes the figure to path. A failed write or close removes the
// partial file.
func WriteFile(path string, root scene.Node, width, height int, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close figure: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return Write(out, root, width, height, f)
}

func drawRect(r chart.Renderer, n *scene.Rect, dx, dy float64) {
	x0, y0 := px(n.X+dx), px(n.Y+dy)
	x1, y1 := px(n.X+n.Width+dx), px(n.Y+n.Height+dy)
	r.SetFillColor(Color(n.Fill))
	r.SetStrokeColor(Color(n.Stroke))
	r.SetStrokeWidth(1)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
	if n.Stroke == "" {
		r.Fill()
		return
	}
	r.FillStroke()
}

func drawText(r chart.Renderer, n *scene.Text, dx, dy float64, font *truetype.Font) {
	if n.Body == "" {
		return
	}
	r.SetFont(font)
	r.SetFontColor(Color(n.Fill))
	r.SetFontSize(n.Size)
	x := n.X + dx
	switch n.Anchor {
	case scene.AnchorMiddle:
		x -= float64(r.MeasureText(n.Body).Width()) / 2
	case scene.AnchorEnd:
		x -= float64(r.MeasureText(n.Body).Width())
	}
	r.Text(n.Body, px(x), px(n.Y+dy))
}

func px(v float64) int { return int(math.Round(v)) }
