package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/menuforge/menuforge/pkg/menu"
)

func testProject() *menu.MenuProject {
	p := menu.NewProject(menu.MenuTemplate{
		ID:     "tpl-test",
		Name:   "Test",
		Family: menu.FamilyModern,
		Style: menu.MenuStyle{
			PrimaryColor:    "#1a1a2e",
			SecondaryColor:  "#16213e",
			AccentColor:     "#e94560",
			BackgroundColor: "#f5f5f5",
			TextColor:       "#222222",
			FontFamily:      "Cairo",
			FontSize:        menu.FontSizes{Title: 32, Category: 24, Item: 18, Price: 20},
			Layout:          menu.LayoutGrid,
			ItemsPerRow:     3,
		},
	})
	p.Name = "lunch"
	info := p.Restaurant
	info.Name = "Desert Rose"
	info.Description = "Family kitchen"
	info.Phone = "+966 55 000 0000"
	info.Currency = menu.Currency{Code: "SAR", Symbol: "ر.س", Name: "Saudi Riyal", Flag: "🇸🇦"}
	p.SetRestaurant(info)

	drinks := menu.NewCategory("Drinks")
	drinks.Items = append(drinks.Items,
		menu.NewItem("Mint Tea", "Fresh mint", 5),
		menu.NewItem("Arabic Coffee", "", 8),
	)
	p.SetCategories([]menu.MenuCategory{drinks})
	return p
}

func TestRenderDeterministic(t *testing.T) {
	p := testProject()

	first := Render(p)
	second := Render(p)

	if !bytes.Equal(first, second) {
		t.Error("rendering the same project twice produced different bytes")
	}
}

func TestRenderInlinesStyle(t *testing.T) {
	p := testProject()
	out := string(Render(p))

	for _, want := range []string{
		"background-color: #f5f5f5",
		"color: #222222",
		"font-size: 32px",               // title
		"font-size: 24px",               // category
		"border-radius: 8px",            // normalized default
		"gap: 16px",                     // normalized spacing
		"0 1px 2px rgba(0,0,0,0.05)",    // sm shadow tier at intensity 2
		"repeat(auto-fit, minmax(300px", // auto-fit grid, no script needed
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing inlined style fragment %q", want)
		}
	}

	if strings.Contains(out, "<link") || strings.Contains(out, "<script") {
		t.Error("static document must not reference stylesheets or scripts")
	}
}

func TestRenderCurrencyRule(t *testing.T) {
	p := testProject()

	withFlag := string(Render(p, WithCurrencyFlag(true)))
	if !strings.Contains(withFlag, "🇸🇦 5 ر.س") {
		t.Errorf("flag-on price fragment missing, got output without %q", "🇸🇦 5 ر.س")
	}

	noFlag := string(Render(p, WithCurrencyFlag(false)))
	if strings.Contains(noFlag, "🇸🇦") {
		t.Error("flag-off output still contains the flag glyph")
	}
	if !strings.Contains(noFlag, "5 ر.س") {
		t.Error("flag-off output missing the symbol-suffixed price")
	}
}

func TestRenderPlaceholders(t *testing.T) {
	p := testProject()
	p.SetCategories(nil)

	out := string(Render(p))
	if got := strings.Count(out, "No categories yet"); got != 1 {
		t.Errorf("empty project placeholder count = %d, want 1", got)
	}

	empty := menu.NewCategory("Empty")
	other := menu.NewCategory("Also Empty")
	p.SetCategories([]menu.MenuCategory{empty, other})
	out = string(Render(p))
	if got := strings.Count(out, "No items in this category"); got != 2 {
		t.Errorf("empty category placeholder count = %d, want 2", got)
	}
	if strings.Contains(out, "No categories yet") {
		t.Error("non-empty project still renders the no-categories placeholder")
	}
}

func TestRenderOmitsMissingAssets(t *testing.T) {
	p := testProject()
	out := string(Render(p))

	// No logo, no item images, no backgrounds: nothing should render as a
	// broken or placeholder asset.
	if strings.Contains(out, "class=\"logo\"") {
		t.Error("logo markup rendered without a logo reference")
	}
	if strings.Contains(out, "item-image") {
		t.Error("item image markup rendered without image references")
	}
	if strings.Contains(out, "bg-video") {
		t.Error("background video markup rendered without a video reference")
	}
}

func TestRenderEffects(t *testing.T) {
	p := testProject()
	s := p.Style
	s.Effects = menu.Effects{Blur: true, Glow: true}
	p.SetStyle(s)

	out := string(Render(p))
	if !strings.Contains(out, "backdrop-filter: blur(4px)") {
		t.Error("blur effect rule not inlined")
	}
	if !strings.Contains(out, "drop-shadow(0 0 8px") {
		t.Error("glow effect rule not inlined")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	p := testProject()
	cat := menu.NewCategory(`Grill <&> "Specials"`)
	cat.Items = append(cat.Items, menu.NewItem("T-Bone <rare>", "", 99))
	p.SetCategories([]menu.MenuCategory{cat})

	out := string(Render(p))
	if strings.Contains(out, "<rare>") {
		t.Error("item name not escaped")
	}
	if !strings.Contains(out, "Grill &lt;&amp;&gt;") {
		t.Error("category name not escaped")
	}
}

func TestRenderPrint(t *testing.T) {
	p := testProject()

	doc := Render(p)
	printDoc := RenderPrint(p)

	if !strings.Contains(string(printDoc), "window.print()") {
		t.Error("print variant missing the print trigger")
	}
	if !strings.Contains(string(printDoc), "1000") {
		t.Error("print variant missing the settling delay")
	}

	// The print variant is the document plus the script, nothing else.
	stripped := bytes.Replace(printDoc, []byte(printScript), nil, 1)
	if !bytes.Equal(stripped, doc) {
		t.Error("print variant diverges from the static document beyond the print script")
	}
}
