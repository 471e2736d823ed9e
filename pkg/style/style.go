// Package style resolves menu style parameters into concrete layout
// decisions.
//
// Every rendering surface (terminal preview, HTML export, bitmap export)
// imports this package instead of interpreting MenuStyle fields itself, so
// the three backends cannot drift apart visually. All functions are pure:
// same input, same decision, no state.
//
// Malformed inputs never raise errors here. Out-of-range values fall back
// to a nearest-safe default (the 2-column spec, the grid container), which
// keeps rendering total even for documents written by older or buggy
// collaborators.
package style

import "github.com/menuforge/menuforge/pkg/menu"

// Breakpoint names an abstract viewport width class. Surfaces map their own
// widths onto these classes (the HTML exporter uses media-query-free
// auto-fit instead and only consumes the container kind).
type Breakpoint int

// Breakpoints from narrowest to widest.
const (
	BreakpointSmall Breakpoint = iota
	BreakpointMedium
	BreakpointLarge
	BreakpointXLarge
)

// ColumnSpec gives the column count at each breakpoint.
type ColumnSpec struct {
	Small  int
	Medium int
	Large  int
	XLarge int
}

// At returns the column count for a breakpoint.
func (c ColumnSpec) At(bp Breakpoint) int {
	switch bp {
	case BreakpointSmall:
		return c.Small
	case BreakpointMedium:
		return c.Medium
	case BreakpointLarge:
		return c.Large
	default:
		return c.XLarge
	}
}

// gridSpecs maps itemsPerRow 1..6 to its responsive column spec. Narrow
// viewports always collapse toward a single column; richer counts unlock
// progressively at wider breakpoints.
var gridSpecs = map[int]ColumnSpec{
	1: {Small: 1, Medium: 1, Large: 1, XLarge: 1},
	2: {Small: 1, Medium: 2, Large: 2, XLarge: 2},
	3: {Small: 1, Medium: 2, Large: 3, XLarge: 3},
	4: {Small: 1, Medium: 2, Large: 4, XLarge: 4},
	5: {Small: 1, Medium: 2, Large: 3, XLarge: 5},
	6: {Small: 1, Medium: 2, Large: 3, XLarge: 6},
}

// defaultGridSpec is the defensive fallback for itemsPerRow outside 1..6.
var defaultGridSpec = gridSpecs[2]

// GridColumns resolves an itemsPerRow value to its column spec.
// Values outside 1..6 fall back to the 2-column spec; this is a defensive
// default, not an error.
func GridColumns(itemsPerRow int) ColumnSpec {
	if spec, ok := gridSpecs[itemsPerRow]; ok {
		return spec
	}
	return defaultGridSpec
}

// ContainerKind is the arrangement family for items within a category.
type ContainerKind int

// Container kinds.
const (
	ContainerGrid  ContainerKind = iota // column grid per ColumnSpec
	ContainerStack                      // vertical stack with inter-card gap
	ContainerRows                       // vertical stack with divider rule
	ContainerFree                       // free positioning, no implicit flow
)

// Container is the resolved arrangement for a layout mode.
type Container struct {
	Kind    ContainerKind
	Columns ColumnSpec // meaningful only for ContainerGrid
	Divider bool       // draw a rule between rows (list layout)
}

// LayoutContainer resolves a layout mode to its container arrangement.
// Unknown layout modes fall back to the grid container.
func LayoutContainer(layout menu.Layout, itemsPerRow int) Container {
	switch layout {
	case menu.LayoutCard:
		return Container{Kind: ContainerStack}
	case menu.LayoutList:
		return Container{Kind: ContainerRows, Divider: true}
	case menu.LayoutCustom:
		return Container{Kind: ContainerFree}
	default:
		return Container{Kind: ContainerGrid, Columns: GridColumns(itemsPerRow)}
	}
}

// Tier is a discrete shadow strength.
type Tier string

// The five shadow tiers, weakest to strongest.
const (
	TierSM  Tier = "sm"
	TierMD  Tier = "md"
	TierLG  Tier = "lg"
	TierXL  Tier = "xl"
	Tier2XL Tier = "2xl"
)

// ShadowTier quantizes a shadow intensity in [0,10] into one of five tiers.
// The step function is monotonic with boundaries at 2, 4, 6, 8 inclusive on
// the lower side; values beyond 10 saturate at the strongest tier.
func ShadowTier(intensity float64) Tier {
	switch {
	case intensity <= 2:
		return TierSM
	case intensity <= 4:
		return TierMD
	case intensity <= 6:
		return TierLG
	case intensity <= 8:
		return TierXL
	default:
		return Tier2XL
	}
}

// shadowCSS holds the literal box-shadow value per tier, inlined by the
// HTML exporter. Derivation lives here so no renderer invents its own.
var shadowCSS = map[Tier]string{
	TierSM:  "0 1px 2px rgba(0,0,0,0.05)",
	TierMD:  "0 4px 6px rgba(0,0,0,0.10)",
	TierLG:  "0 10px 15px rgba(0,0,0,0.10)",
	TierXL:  "0 20px 25px rgba(0,0,0,0.10)",
	Tier2XL: "0 25px 50px rgba(0,0,0,0.25)",
}

// CSS returns the literal box-shadow value for the tier.
func (t Tier) CSS() string {
	if css, ok := shadowCSS[t]; ok {
		return css
	}
	return shadowCSS[TierSM]
}

// Modifier is an effect applied to item surfaces.
type Modifier string

// Effect modifiers.
const (
	ModifierBlur Modifier = "blur" // translucency / backdrop blur
	ModifierGlow Modifier = "glow" // drop shadow halo
)

// modifierCSS holds the literal rule fragment per modifier.
var modifierCSS = map[Modifier]string{
	ModifierBlur: "backdrop-filter: blur(4px);",
	ModifierGlow: "filter: drop-shadow(0 0 8px rgba(0,0,0,0.3));",
}

// CSS returns the literal style rule for the modifier.
func (m Modifier) CSS() string {
	return modifierCSS[m]
}

// ResolveEffects maps the effects toggles to their modifier set. Blur and
// glow are independent and composable; order is stable (blur first).
func ResolveEffects(e menu.Effects) []Modifier {
	var mods []Modifier
	if e.Blur {
		mods = append(mods, ModifierBlur)
	}
	if e.Glow {
		mods = append(mods, ModifierGlow)
	}
	return mods
}
