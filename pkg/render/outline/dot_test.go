package outline

import (
	"strings"
	"testing"

	"github.com/menuforge/menuforge/pkg/menu"
)

func outlineProject() *menu.MenuProject {
	p := menu.NewProject(menu.MenuTemplate{
		ID:     "tpl-test",
		Family: menu.FamilyClassic,
		Style: menu.MenuStyle{
			PrimaryColor:   "#1a1a2e",
			SecondaryColor: "#16213e",
			Layout:         menu.LayoutGrid,
			ItemsPerRow:    2,
		},
	})
	info := p.Restaurant
	info.Name = "Desert Rose"
	info.Currency = menu.Currency{Code: "SAR", Symbol: "ر.س", Flag: "🇸🇦"}
	p.SetRestaurant(info)

	cat := menu.NewCategory("Drinks")
	cat.Items = append(cat.Items, menu.NewItem("Tea", "With mint", 5))
	p.SetCategories([]menu.MenuCategory{cat})
	return p
}

func TestToDOTStructure(t *testing.T) {
	p := outlineProject()
	dot := ToDOT(p, Options{})

	if !strings.HasPrefix(dot, "digraph menu {") {
		t.Errorf("missing digraph header: %q", dot[:30])
	}
	if !strings.Contains(dot, `"restaurant" [label="Desert Rose"`) {
		t.Error("root node missing restaurant label")
	}

	cat := p.Categories[0]
	if !strings.Contains(dot, `"restaurant" -> "`+cat.ID+`"`) {
		t.Error("missing restaurant -> category edge")
	}
	if !strings.Contains(dot, `"`+cat.ID+`" -> "`+cat.Items[0].ID+`"`) {
		t.Error("missing category -> item edge")
	}

	// Category nodes are tinted with the secondary color.
	if !strings.Contains(dot, `fillcolor="#16213e"`) {
		t.Error("category fill color not applied")
	}

	// Plain labels exclude the price.
	if strings.Contains(dot, "ر.س") {
		t.Error("plain outline should not include prices")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	p := outlineProject()
	dot := ToDOT(p, Options{Detailed: true, ShowCurrencyFlag: true})

	if !strings.Contains(dot, "🇸🇦 5 ر.س") {
		t.Error("detailed outline missing the formatted price")
	}
	if !strings.Contains(dot, "With mint") {
		t.Error("detailed outline missing the item description")
	}
}

func TestToDOTEmptyName(t *testing.T) {
	p := outlineProject()
	info := p.Restaurant
	info.Name = ""
	p.SetRestaurant(info)

	dot := ToDOT(p, Options{})
	if !strings.Contains(dot, `label="Restaurant"`) {
		t.Error("empty restaurant name should fall back to a generic root label")
	}
}

func TestDotColor(t *testing.T) {
	if got := dotColor("#abc"); got != "#abc" {
		t.Errorf("dotColor(#abc) = %q", got)
	}
	if got := dotColor("#aabbcc"); got != "#aabbcc" {
		t.Errorf("dotColor(#aabbcc) = %q", got)
	}
	for _, bad := range []string{"", "red", "#12345", "aabbcc1"} {
		if got := dotColor(bad); got != "#555555" {
			t.Errorf("dotColor(%q) = %q, want neutral fallback", bad, got)
		}
	}
}
