// Package html renders a menu document as one self-contained static HTML
// page.
//
// Every style decision is inlined as a literal value (colors, pixel sizes,
// shadow values, conditional effect rules), so the output has no external
// stylesheet and no script dependency and can be opened standalone. The
// derivations for shadows, effects, and layout come from pkg/style, shared
// with the other rendering surfaces.
//
// The item grid uses auto-fit columns with a fixed minimum width instead of
// the preview's explicit column-count table: the static document must
// degrade gracefully without script support.
package html

import (
	"bytes"
	"fmt"
	"html"

	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/style"
)

// minItemWidth is the auto-fit column minimum in pixels.
const minItemWidth = 300

// Option configures HTML rendering.
type Option func(*renderer)

type renderer struct {
	showCurrencyFlag bool
}

// WithCurrencyFlag controls whether prices are prefixed with the currency's
// flag glyph. Defaults to true.
func WithCurrencyFlag(show bool) Option {
	return func(r *renderer) { r.showCurrencyFlag = show }
}

// Render produces the self-contained HTML document for a project.
// Rendering is deterministic: the same project yields byte-identical output.
func Render(p *menu.MenuProject, opts ...Option) []byte {
	r := renderer{showCurrencyFlag: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	r.renderHead(&buf, p)
	r.renderBody(&buf, p)
	return buf.Bytes()
}

func (r *renderer) renderHead(buf *bytes.Buffer, p *menu.MenuProject) {
	s := p.Style

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"UTF-8\">\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", html.EscapeString(p.Restaurant.Name))

	buf.WriteString("<style>\n")
	buf.WriteString("* { margin: 0; padding: 0; box-sizing: border-box; }\n")

	fmt.Fprintf(buf, "body { font-family: %s, sans-serif; background-color: %s; color: %s; padding: 20px; line-height: 1.6;",
		cssString(s.FontFamily), cssString(s.BackgroundColor), cssString(s.TextColor))
	if s.BackgroundImage != "" {
		fmt.Fprintf(buf, " background-image: url(%s); background-size: cover; background-position: center;",
			cssString(s.BackgroundImage))
	}
	buf.WriteString(" }\n")

	if s.BackgroundVideo != "" {
		fmt.Fprintf(buf, ".bg-video { position: fixed; inset: 0; width: 100%%; height: 100%%; object-fit: cover; z-index: -1; opacity: %.2f; }\n",
			opacity(s.BackgroundOpacity))
	} else if s.BackgroundImage != "" {
		// Opacity on an image background is blended through a fixed overlay.
		fmt.Fprintf(buf, "body::before { content: ''; position: fixed; inset: 0; background: %s; opacity: %.2f; z-index: -1; }\n",
			cssString(s.BackgroundColor), 1-opacity(s.BackgroundOpacity))
	}

	buf.WriteString(".container { max-width: 1200px; margin: 0 auto; }\n")
	fmt.Fprintf(buf, ".header { text-align: %s; margin-bottom: 30px; }\n", headerAlign(p.Restaurant.LogoPosition))
	fmt.Fprintf(buf, ".logo { width: 80px; height: 80px; object-fit: contain; border-radius: %dpx; }\n", s.BorderRadius)
	fmt.Fprintf(buf, ".restaurant-name { font-size: %dpx; color: %s; font-weight: bold; margin: 10px 0; }\n",
		s.FontSize.Title, cssString(s.PrimaryColor))
	buf.WriteString(".category { margin-bottom: 40px; }\n")
	fmt.Fprintf(buf, ".category-title { font-size: %dpx; color: %s; font-weight: bold; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 2px solid %s; border-radius: %dpx; }\n",
		s.FontSize.Category, cssString(s.SecondaryColor), cssString(s.SecondaryColor), s.BorderRadius)

	fmt.Fprintf(buf, ".items { display: %s; gap: %dpx; }\n", itemsDisplay(s), s.Spacing)
	if style.LayoutContainer(s.Layout, s.ItemsPerRow).Kind == style.ContainerGrid {
		fmt.Fprintf(buf, ".items { grid-template-columns: repeat(auto-fit, minmax(%dpx, 1fr)); }\n", minItemWidth)
	}

	tier := style.ShadowTier(s.ShadowIntensity)
	fmt.Fprintf(buf, ".item { border: 1px solid #ddd; border-radius: %dpx; padding: 15px; background: rgba(255,255,255,0.9); box-shadow: %s; }\n",
		s.BorderRadius, tier.CSS())
	if style.LayoutContainer(s.Layout, s.ItemsPerRow).Divider {
		buf.WriteString(".item { border: none; border-radius: 0; background: transparent; box-shadow: none; border-bottom: 1px solid #ddd; padding: 8px 0; }\n")
	}

	fmt.Fprintf(buf, ".item-image { width: 100%%; height: 150px; object-fit: cover; border-radius: %dpx; margin-bottom: 10px; }\n", s.BorderRadius)
	fmt.Fprintf(buf, ".item-name { font-size: %dpx; font-weight: bold; margin-bottom: 5px; }\n", s.FontSize.Item)
	buf.WriteString(".item-description { font-size: 14px; opacity: 0.8; margin-bottom: 10px; }\n")
	fmt.Fprintf(buf, ".item-price { font-size: %dpx; color: %s; font-weight: bold; }\n",
		s.FontSize.Price, cssString(s.AccentColor))
	buf.WriteString(".placeholder { text-align: center; padding: 40px 0; opacity: 0.6; }\n")

	for _, mod := range style.ResolveEffects(s.Effects) {
		fmt.Fprintf(buf, ".item { %s }\n", mod.CSS())
	}

	buf.WriteString("</style>\n</head>\n")
}

func (r *renderer) renderBody(buf *bytes.Buffer, p *menu.MenuProject) {
	buf.WriteString("<body>\n")

	if p.Style.BackgroundVideo != "" {
		fmt.Fprintf(buf, "<video class=\"bg-video\" autoplay muted loop><source src=%q type=\"video/mp4\"></video>\n",
			p.Style.BackgroundVideo)
	}

	buf.WriteString("<div class=\"container\">\n")
	r.renderHeader(buf, p)
	r.renderCategories(buf, p)
	buf.WriteString("</div>\n</body>\n</html>\n")
}

func (r *renderer) renderHeader(buf *bytes.Buffer, p *menu.MenuProject) {
	info := p.Restaurant

	buf.WriteString("<div class=\"header\">\n")
	if info.Logo != "" {
		fmt.Fprintf(buf, "<img src=%q alt=\"Logo\" class=\"logo\">\n", info.Logo)
	}
	fmt.Fprintf(buf, "<h1 class=\"restaurant-name\">%s</h1>\n", html.EscapeString(info.Name))
	if info.Description != "" {
		fmt.Fprintf(buf, "<p>%s</p>\n", html.EscapeString(info.Description))
	}
	if info.Phone != "" {
		fmt.Fprintf(buf, "<p>%s</p>\n", html.EscapeString(info.Phone))
	}
	buf.WriteString("</div>\n")
}

func (r *renderer) renderCategories(buf *bytes.Buffer, p *menu.MenuProject) {
	if len(p.Categories) == 0 {
		buf.WriteString("<div class=\"placeholder\"><p>No categories yet</p></div>\n")
		return
	}

	for _, cat := range p.Categories {
		buf.WriteString("<div class=\"category\">\n")
		fmt.Fprintf(buf, "<h2 class=\"category-title\">%s</h2>\n", html.EscapeString(cat.Name))

		if len(cat.Items) == 0 {
			buf.WriteString("<p class=\"placeholder\">No items in this category</p>\n")
			buf.WriteString("</div>\n")
			continue
		}

		buf.WriteString("<div class=\"items\">\n")
		for _, item := range cat.Items {
			r.renderItem(buf, p, item)
		}
		buf.WriteString("</div>\n</div>\n")
	}
}

func (r *renderer) renderItem(buf *bytes.Buffer, p *menu.MenuProject, item menu.MenuItem) {
	buf.WriteString("<div class=\"item\">\n")
	if item.Image != "" {
		fmt.Fprintf(buf, "<img src=%q alt=%q class=\"item-image\">\n", item.Image, item.Name)
	}
	fmt.Fprintf(buf, "<h3 class=\"item-name\">%s</h3>\n", html.EscapeString(item.Name))
	if item.Description != "" {
		fmt.Fprintf(buf, "<p class=\"item-description\">%s</p>\n", html.EscapeString(item.Description))
	}
	price := menu.FormatPrice(item.Price, p.Restaurant.Currency, r.showCurrencyFlag)
	fmt.Fprintf(buf, "<p class=\"item-price\">%s</p>\n", html.EscapeString(price))
	buf.WriteString("</div>\n")
}

// itemsDisplay picks the CSS display mode for the items container.
func itemsDisplay(s menu.MenuStyle) string {
	switch style.LayoutContainer(s.Layout, s.ItemsPerRow).Kind {
	case style.ContainerGrid, style.ContainerFree:
		// Free positioning has no meaning in a static document; it renders
		// as the grid arrangement the preview uses as its base flow.
		return "grid"
	default:
		return "flex; flex-direction: column"
	}
}

// headerAlign maps a logo position to its text alignment.
func headerAlign(pos menu.LogoPosition) string {
	switch pos {
	case menu.LogoLeft:
		return "left"
	case menu.LogoRight:
		return "right"
	default:
		return "center"
	}
}

// opacity converts a 0-100 opacity to the 0-1 CSS scale, clamped.
func opacity(v int) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 1
	}
	return float64(v) / 100
}

// cssString escapes a value interpolated into a CSS declaration. Values come
// from the user's own document, so this guards against breaking out of the
// declaration rather than against a hostile author.
func cssString(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		switch r {
		case ';', '{', '}', '<', '>':
			continue
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
