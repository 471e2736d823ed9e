// Package bitmap renders a menu document as a fixed-size raster snapshot.
//
// The rasterizer has no box model and no text wrapping, so vertical flow is
// computed by hand: BuildFlow walks the document tree once, accumulating a
// vertical cursor and emitting explicit draw commands. The drawing side
// (Render) just executes those commands with fogleman/gg. Keeping the flow
// pure lets it be property-tested without a drawing surface.
//
// Known limitation: background images and videos are not rasterized; the
// canvas is filled with the style's background color only.
package bitmap

import "github.com/menuforge/menuforge/pkg/menu"

// Fixed canvas size in pixels.
const (
	CanvasWidth  = 800
	CanvasHeight = 1200
)

// Vertical flow increments. Each drawn line advances the cursor by a
// type-specific fixed amount; content past the canvas bottom is drawn
// out of bounds rather than paginated or truncated.
const (
	titleBaseline   = 80  // restaurant name baseline
	flowStart       = 150 // cursor position for the first category
	categoryAdvance = 50
	nameAdvance     = 30
	descAdvance     = 25
	priceAdvance    = 40
	categoryGap     = 20
	descFontSize    = 14
)

// defaultTitle is drawn when the restaurant has no name yet.
const defaultTitle = "Restaurant Menu"

// DrawCommand is one centered text draw with an explicit baseline.
type DrawCommand struct {
	Text  string
	X     float64
	Y     float64
	Size  int
	Color string
	Bold  bool
}

// Flow is the full draw plan for one snapshot.
type Flow struct {
	Width      int
	Height     int
	Background string

	// Font is the preferred font family for rasterization. Empty means the
	// host candidate list.
	Font string

	Commands []DrawCommand

	// Extent is the final cursor position. It can exceed Height; callers
	// that care about overflow can compare the two.
	Extent float64
}

// Option configures flow building.
type Option func(*builder)

type builder struct {
	showCurrencyFlag bool
	fontFamily       string
}

// WithCurrencyFlag controls the flag prefix on price lines. Defaults to true.
func WithCurrencyFlag(show bool) Option {
	return func(b *builder) { b.showCurrencyFlag = show }
}

// WithFont sets the preferred font family for rasterization. The family is
// searched on the host ahead of the default candidates; when it cannot be
// resolved the defaults apply.
func WithFont(family string) Option {
	return func(b *builder) { b.fontFamily = family }
}

// BuildFlow computes the draw commands for a project. Pure: no I/O, no
// drawing surface, deterministic output.
func BuildFlow(p *menu.MenuProject, opts ...Option) Flow {
	b := builder{showCurrencyFlag: true}
	for _, opt := range opts {
		opt(&b)
	}

	s := p.Style
	centerX := float64(CanvasWidth) / 2

	flow := Flow{
		Width:      CanvasWidth,
		Height:     CanvasHeight,
		Background: s.BackgroundColor,
		Font:       b.fontFamily,
	}

	title := p.Restaurant.Name
	if title == "" {
		title = defaultTitle
	}
	flow.Commands = append(flow.Commands, DrawCommand{
		Text: title, X: centerX, Y: titleBaseline,
		Size: s.FontSize.Title, Color: s.PrimaryColor, Bold: true,
	})

	y := float64(flowStart)
	for _, cat := range p.Categories {
		flow.Commands = append(flow.Commands, DrawCommand{
			Text: cat.Name, X: centerX, Y: y,
			Size: s.FontSize.Category, Color: s.SecondaryColor, Bold: true,
		})
		y += categoryAdvance

		for _, item := range cat.Items {
			flow.Commands = append(flow.Commands, DrawCommand{
				Text: item.Name, X: centerX, Y: y,
				Size: s.FontSize.Item, Color: s.TextColor,
			})
			y += nameAdvance

			if item.Description != "" {
				flow.Commands = append(flow.Commands, DrawCommand{
					Text: item.Description, X: centerX, Y: y,
					Size: descFontSize, Color: s.TextColor,
				})
				y += descAdvance
			}

			price := menu.FormatPrice(item.Price, p.Restaurant.Currency, b.showCurrencyFlag)
			flow.Commands = append(flow.Commands, DrawCommand{
				Text: price, X: centerX, Y: y,
				Size: s.FontSize.Price, Color: s.AccentColor, Bold: true,
			})
			y += priceAdvance
		}

		y += categoryGap
	}

	flow.Extent = y
	return flow
}
