package bitmap

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
)

// fallbackBackground is used when the style's background color cannot be
// parsed. Defensive: a malformed color must not fail the export.
var fallbackBackground = color.White

// fallbackText is used for unparseable text colors.
var fallbackText = color.Black

// Render rasterizes a project to a PNG. The flow is computed with BuildFlow
// and executed with imperative draw calls; there is no wrapping and no
// overflow handling.
func Render(p *menu.MenuProject, opts ...Option) ([]byte, error) {
	return RenderFlow(BuildFlow(p, opts...))
}

// RenderFlow executes a precomputed draw plan.
func RenderFlow(flow Flow) ([]byte, error) {
	dc := gg.NewContext(flow.Width, flow.Height)

	dc.SetColor(parseColor(flow.Background, fallbackBackground))
	dc.Clear()

	faces := newFaceCache(flow.Font)
	for _, cmd := range flow.Commands {
		dc.SetFontFace(faces.face(cmd.Size, cmd.Bold))
		dc.SetColor(parseColor(cmd.Color, fallbackText))
		dc.DrawStringAnchored(cmd.Text, cmd.X, cmd.Y, 0.5, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// parseColor parses a #rgb or #rrggbb hex color, falling back when the
// value is malformed.
func parseColor(s string, fallback color.Color) color.Color {
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}

	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		rv, ok1 := hexNibble(hex[0])
		gv, ok2 := hexNibble(hex[1])
		bv, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return fallback
		}
		r, g, b = rv*17, gv*17, bv*17
	case 6:
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return fallback
			}
			vals[i] = hi<<4 | lo
		}
		r, g, b = vals[0], vals[1], vals[2]
	default:
		return fallback
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
