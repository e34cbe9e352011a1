// internal/figure/palette.go
package figure

import (
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/plot/palette/brewer"

	"github.com/mwiater/queueviz/internal/dataset"
)

// Palette assigns one colour per implementation, indexed by its canonical
// position so that hiding a series never recolours the others.
type Palette []string

// fallbackPalette is used when the brewer palette cannot be resolved.
var fallbackPalette = Palette{"#1b9e77", "#d95f02", "#7570b3"}

// NewPalette resolves a qualitative ColorBrewer scheme such as "Dark2" or
// "Set1" with one colour per implementation.
func NewPalette(name string) (Palette, error) {
	p, err := brewer.GetPalette(brewer.TypeQualitative, name, len(dataset.Implementations))
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", name, err)
	}
	colors := p.Colors()
	out := make(Palette, len(colors))
	for i, c := range colors {
		out[i] = Hex(c)
	}
	return out, nil
}

// DefaultPalette is the Dark2 scheme, or a fixed copy of it when the scheme
// lookup fails.
func DefaultPalette() Palette {
	p, err := NewPalette("Dark2")
	if err != nil {
		slog.Warn("falling back to built-in palette", "error", err)
		return fallbackPalette
	}
	return p
}

// For returns the colour of impl.
func (p Palette) For(impl dataset.Implementation) string {
	if len(p) == 0 {
		return fallbackPalette[max(impl.Index(), 0)%len(fallbackPalette)]
	}
	return p[max(impl.Index(), 0)%len(p)]
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
