package style

import (
	"testing"

	"github.com/menuforge/menuforge/pkg/menu"
)

func TestShadowTierBoundaries(t *testing.T) {
	tests := []struct {
		intensity float64
		want      Tier
	}{
		{0, TierSM},
		{1.5, TierSM},
		{2, TierSM}, // boundary inclusive on the lower side
		{2.01, TierMD},
		{4, TierMD},
		{4.5, TierLG},
		{6, TierLG},
		{7, TierXL},
		{8, TierXL},
		{8.1, Tier2XL},
		{10, Tier2XL},
		{42, Tier2XL}, // saturates
	}

	for _, tt := range tests {
		if got := ShadowTier(tt.intensity); got != tt.want {
			t.Errorf("ShadowTier(%v) = %v, want %v", tt.intensity, got, tt.want)
		}
	}
}

func TestShadowTierMonotonic(t *testing.T) {
	rank := map[Tier]int{TierSM: 0, TierMD: 1, TierLG: 2, TierXL: 3, Tier2XL: 4}

	prev := TierSM
	for i := 0.0; i <= 10; i += 0.25 {
		got := ShadowTier(i)
		if rank[got] < rank[prev] {
			t.Fatalf("ShadowTier not monotonic: %v at %v after %v", got, i, prev)
		}
		prev = got
	}
}

func TestShadowTierProducesKnownCSS(t *testing.T) {
	for _, tier := range []Tier{TierSM, TierMD, TierLG, TierXL, Tier2XL} {
		if tier.CSS() == "" {
			t.Errorf("Tier %v has no CSS value", tier)
		}
	}
	// Unknown tiers fall back to the weakest shadow.
	if got := Tier("huge").CSS(); got != TierSM.CSS() {
		t.Errorf("unknown tier CSS = %q, want sm fallback", got)
	}
}

func TestGridColumns(t *testing.T) {
	if got := GridColumns(1); got != (ColumnSpec{1, 1, 1, 1}) {
		t.Errorf("GridColumns(1) = %+v", got)
	}
	if got := GridColumns(5); got.XLarge != 5 || got.Small != 1 {
		t.Errorf("GridColumns(5) = %+v", got)
	}

	// Everything outside 1..6 falls back to the 2-column spec.
	want := GridColumns(2)
	for _, n := range []int{0, -1, 7, 100} {
		if got := GridColumns(n); got != want {
			t.Errorf("GridColumns(%d) = %+v, want 2-column fallback %+v", n, got, want)
		}
	}
}

func TestColumnSpecAt(t *testing.T) {
	spec := GridColumns(6)
	tests := []struct {
		bp   Breakpoint
		want int
	}{
		{BreakpointSmall, 1},
		{BreakpointMedium, 2},
		{BreakpointLarge, 3},
		{BreakpointXLarge, 6},
	}
	for _, tt := range tests {
		if got := spec.At(tt.bp); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.bp, got, tt.want)
		}
	}
}

func TestLayoutContainer(t *testing.T) {
	tests := []struct {
		layout menu.Layout
		want   ContainerKind
	}{
		{menu.LayoutGrid, ContainerGrid},
		{menu.LayoutCard, ContainerStack},
		{menu.LayoutList, ContainerRows},
		{menu.LayoutCustom, ContainerFree},
		{menu.Layout("mosaic"), ContainerGrid}, // unknown falls back to grid
	}

	for _, tt := range tests {
		c := LayoutContainer(tt.layout, 3)
		if c.Kind != tt.want {
			t.Errorf("LayoutContainer(%q).Kind = %v, want %v", tt.layout, c.Kind, tt.want)
		}
	}

	if c := LayoutContainer(menu.LayoutList, 3); !c.Divider {
		t.Error("list container should carry a divider rule")
	}
	if c := LayoutContainer(menu.LayoutGrid, 4); c.Columns.Large != 4 {
		t.Errorf("grid container columns = %+v, want Large=4", c.Columns)
	}
}

func TestResolveEffects(t *testing.T) {
	if mods := ResolveEffects(menu.Effects{}); len(mods) != 0 {
		t.Errorf("no effects => %v, want empty", mods)
	}

	mods := ResolveEffects(menu.Effects{Blur: true})
	if len(mods) != 1 || mods[0] != ModifierBlur {
		t.Errorf("blur only => %v", mods)
	}

	mods = ResolveEffects(menu.Effects{Blur: true, Glow: true})
	if len(mods) != 2 || mods[0] != ModifierBlur || mods[1] != ModifierGlow {
		t.Errorf("both effects => %v", mods)
	}

	for _, m := range mods {
		if m.CSS() == "" {
			t.Errorf("modifier %v has no CSS fragment", m)
		}
	}
}
