// Package outline renders the structure of a menu document as a node-link
// diagram.
//
// The diagram shows the document tree (restaurant → categories → items) and
// is used by the editing surfaces to visualize how a menu is organized; it
// is a structure map, not a rendering of the menu itself. Output goes
// through Graphviz DOT.
package outline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/menuforge/menuforge/pkg/menu"
)

// Options configures outline generation.
type Options struct {
	// Detailed includes item descriptions and prices in node labels.
	// When false, only names are shown.
	Detailed bool

	// ShowCurrencyFlag controls the flag prefix on detailed price labels.
	ShowCurrencyFlag bool
}

// ToDOT converts a project to Graphviz DOT format. The restaurant node sits
// at the root, category nodes are tinted with the style's secondary color,
// and item nodes hang off their category in display order.
func ToDOT(p *menu.MenuProject, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph menu {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	rootID := "restaurant"
	rootLabel := p.Restaurant.Name
	if rootLabel == "" {
		rootLabel = "Restaurant"
	}
	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white, fontsize=18];\n",
		rootID, rootLabel, dotColor(p.Style.PrimaryColor))

	for _, cat := range p.Categories {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white];\n",
			cat.ID, cat.Name, dotColor(p.Style.SecondaryColor))
		for _, item := range cat.Items {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", item.ID, itemLabel(p, item, opts))
		}
	}

	buf.WriteString("\n")
	for _, cat := range p.Categories {
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID, cat.ID)
		for _, item := range cat.Items {
			fmt.Fprintf(&buf, "  %q -> %q;\n", cat.ID, item.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func itemLabel(p *menu.MenuProject, item menu.MenuItem, opts Options) string {
	if !opts.Detailed {
		return item.Name
	}

	parts := []string{item.Name}
	if item.Description != "" {
		parts = append(parts, item.Description)
	}
	parts = append(parts, menu.FormatPrice(item.Price, p.Restaurant.Currency, opts.ShowCurrencyFlag))
	return strings.Join(parts, "\n")
}

// dotColor passes hex colors through and falls back to a neutral fill for
// anything Graphviz would reject.
func dotColor(c string) string {
	if len(c) == 4 || len(c) == 7 {
		if c[0] == '#' {
			return c
		}
	}
	return "#555555"
}
