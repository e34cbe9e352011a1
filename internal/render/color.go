// internal/render/color.go
package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]drawing.Color{
	"":             drawing.ColorTransparent,
	"none":         drawing.ColorTransparent,
	"currentcolor": drawing.ColorBlack,
	"black":        drawing.ColorBlack,
	"white":        drawing.ColorWhite,
	"grey":         {R: 128, G: 128, B: 128, A: 255},
	"gray":         {R: 128, G: 128, B: 128, A: 255},
	"red":          {R: 255, A: 255},
	"green":        {G: 128, A: 255},
	"lightgreen":   {R: 144, G: 238, B: 144, A: 255},
	"blue":         {B: 255, A: 255},
}

// Color parses #rgb, #rrggbb or one of a few CSS colour names. Unknown
// values draw in black.
func Color(s string) drawing.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && (len(hex) == 3 || len(hex) == 6) {
		return drawing.ColorFromHex(hex)
	}
	return drawing.ColorBlack
}
