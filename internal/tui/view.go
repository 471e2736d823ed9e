package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/style"
)

const (
	baseItemWidth = 30
	minFrameWidth = 40
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// frame is one rendered preview surface. owners maps each rendered line to
// the item occupying it, used for mouse hit testing. Only the free (custom)
// container fills owners; the flowing containers are not interactive.
type frame struct {
	content string
	owners  []string
}

// itemAt returns the item id rendered on the given line, or "".
func (f frame) itemAt(line int) string {
	if line < 0 || line >= len(f.owners) {
		return ""
	}
	return f.owners[line]
}

type frameBuilder struct {
	lines  []string
	owners []string
}

func (b *frameBuilder) add(owner, block string) {
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, line)
		b.owners = append(b.owners, owner)
	}
}

func (b *frameBuilder) blank() {
	b.add("", "")
}

func (b *frameBuilder) frame() frame {
	return frame{content: strings.Join(b.lines, "\n"), owners: b.owners}
}

// renderFrame draws the whole preview: background banner, identity header,
// categories, and items per the resolved container. The zoom factor scales
// the usable width; character cells have a fixed height, so the vertical
// dimension cannot scale and zoom is horizontal-only here. It never leaves
// the preview.
func renderFrame(p *menu.MenuProject, in *Interaction, width int) frame {
	w := int(float64(width) * in.Zoom())
	if w < minFrameWidth {
		w = minFrameWidth
	}

	s := p.Style
	var b frameBuilder

	if banner := backgroundBanner(s); banner != "" {
		b.add("", dimStyle.Render(banner))
		b.blank()
	}

	renderHeader(&b, p, w)

	if len(p.Categories) == 0 {
		b.add("", dimStyle.Render("No categories yet"))
		return b.frame()
	}

	container := style.LayoutContainer(s.Layout, s.ItemsPerRow)
	for _, cat := range p.Categories {
		renderCategory(&b, p, cat, container, in, w)
	}

	return b.frame()
}

// backgroundBanner describes a background asset the terminal cannot
// composite.
func backgroundBanner(s menu.MenuStyle) string {
	switch {
	case s.BackgroundVideo != "":
		return fmt.Sprintf("[background video: %s, opacity %d%%]", s.BackgroundVideo, s.BackgroundOpacity)
	case s.BackgroundImage != "":
		return fmt.Sprintf("[background image: %s, opacity %d%%]", s.BackgroundImage, s.BackgroundOpacity)
	}
	return ""
}

func renderHeader(b *frameBuilder, p *menu.MenuProject, width int) {
	r := p.Restaurant
	align := lipgloss.Center
	switch r.LogoPosition {
	case menu.LogoLeft:
		align = lipgloss.Left
	case menu.LogoRight:
		align = lipgloss.Right
	}

	headerStyle := lipgloss.NewStyle().Width(width).Align(align)

	name := r.Name
	if name == "" {
		name = "Untitled Restaurant"
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Style.PrimaryColor)).
		Render(name)
	b.add("", headerStyle.Render(title))

	if r.Description != "" {
		b.add("", headerStyle.Render(r.Description))
	}
	if r.Phone != "" {
		b.add("", headerStyle.Render(dimStyle.Render(r.Phone)))
	}
	b.blank()
}

func renderCategory(b *frameBuilder, p *menu.MenuProject, cat menu.MenuCategory, container style.Container, in *Interaction, width int) {
	title := cat.Name
	if cat.Icon != "" {
		title = cat.Icon + " " + title
	}
	b.add("", lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Style.SecondaryColor)).
		Render(title))

	if len(cat.Items) == 0 {
		b.add("", dimStyle.Render("  No items in this category"))
		b.blank()
		return
	}

	switch container.Kind {
	case style.ContainerFree:
		renderFreeItems(b, p, cat.Items, in)
	case style.ContainerGrid:
		renderGridItems(b, p, cat.Items, container.Columns, in, width)
	default:
		renderStackedItems(b, p, cat.Items, container.Divider, in, width)
	}
	b.blank()
}

// renderFreeItems draws each item in its own block, displaced by the
// transient offset. Pointer units map 1:1 onto terminal cells horizontally
// and halve vertically so drags feel proportionate.
func renderFreeItems(b *frameBuilder, p *menu.MenuProject, items []menu.MenuItem, in *Interaction) {
	for _, it := range items {
		off := in.Offset(it.ID)
		for i := 0; i < off.Y/2; i++ {
			b.blank()
		}

		indent := off.X
		if indent < 0 {
			indent = 0
		}
		box := itemBox(p, it, in, true)
		b.add(it.ID, lipgloss.NewStyle().MarginLeft(indent).Render(box))
	}
}

func renderGridItems(b *frameBuilder, p *menu.MenuProject, items []menu.MenuItem, cols style.ColumnSpec, in *Interaction, width int) {
	n := cols.At(breakpointFor(width))
	if n < 1 {
		n = 1
	}
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		boxes := make([]string, 0, n)
		for _, it := range items[start:end] {
			boxes = append(boxes, itemBox(p, it, in, false))
		}
		b.add("", lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
}

func renderStackedItems(b *frameBuilder, p *menu.MenuProject, items []menu.MenuItem, divider bool, in *Interaction, width int) {
	for i, it := range items {
		if divider && i > 0 {
			rule := strings.Repeat("─", min(width, baseItemWidth+4))
			b.add("", dimStyle.Render(rule))
		}
		b.add("", itemBox(p, it, in, false))
	}
}

// breakpointFor maps a terminal width onto the abstract viewport classes.
func breakpointFor(width int) style.Breakpoint {
	switch {
	case width < 60:
		return style.BreakpointSmall
	case width < 100:
		return style.BreakpointMedium
	case width < 140:
		return style.BreakpointLarge
	default:
		return style.BreakpointXLarge
	}
}

// itemBox renders one item card. In interactive (custom) mode the selected
// item gets an accent border and the transient scale widens the card.
func itemBox(p *menu.MenuProject, it menu.MenuItem, in *Interaction, interactive bool) string {
	w := baseItemWidth
	if interactive {
		w = int(float64(baseItemWidth) * in.Scale(it.ID))
	}

	border := lipgloss.RoundedBorder()
	borderColor := lipgloss.Color(p.Style.SecondaryColor)
	if interactive && in.Selected() == it.ID {
		borderColor = lipgloss.Color(p.Style.AccentColor)
	}

	var body strings.Builder
	name := it.Name
	if it.Icon != "" {
		name = it.Icon + " " + name
	}
	body.WriteString(lipgloss.NewStyle().Bold(true).Render(name))
	if it.Description != "" {
		body.WriteString("\n" + dimStyle.Render(it.Description))
	}
	price := menu.FormatPrice(it.Price, p.Restaurant.Currency, true)
	body.WriteString("\n" + lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Style.AccentColor)).
		Render(price))

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Width(w).
		Padding(0, 1).
		Render(body.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
