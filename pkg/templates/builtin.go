// Package templates provides the built-in menu template catalog and the
// manager for user-authored custom templates.
//
// Built-ins ship one template per layout family. Custom templates are
// stored as TOML files in the user's config directory and merged after the
// built-ins when offered to a picker (merge order is builtins first, then
// custom, with no de-duplication by name).
package templates

import "github.com/menuforge/menuforge/pkg/menu"

// Builtin is the fixed catalog of shipped templates, one per layout family.
// Order is presentation order; the first entry is the default.
var Builtin = []menu.MenuTemplate{
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean grid with strong accent color",
		Family:      menu.FamilyModern,
		Style: menu.MenuStyle{
			PrimaryColor: "#1a1a2e", SecondaryColor: "#16213e", AccentColor: "#e94560",
			BackgroundColor: "#ffffff", TextColor: "#1f2937",
			FontFamily: "Cairo",
			FontSize:   menu.FontSizes{Title: 36, Category: 26, Item: 18, Price: 20},
			Layout:     menu.LayoutGrid, ItemsPerRow: 3,
		},
	},
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional two-column layout with warm tones",
		Family:      menu.FamilyClassic,
		Style: menu.MenuStyle{
			PrimaryColor: "#7c2d12", SecondaryColor: "#9a3412", AccentColor: "#b45309",
			BackgroundColor: "#fffbeb", TextColor: "#451a03",
			FontFamily: "Amiri",
			FontSize:   menu.FontSizes{Title: 34, Category: 24, Item: 17, Price: 19},
			Layout:     menu.LayoutGrid, ItemsPerRow: 2,
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Compact list, monochrome, nothing extra",
		Family:      menu.FamilyMinimal,
		Style: menu.MenuStyle{
			PrimaryColor: "#111827", SecondaryColor: "#374151", AccentColor: "#111827",
			BackgroundColor: "#ffffff", TextColor: "#1f2937",
			FontFamily: "Tajawal",
			FontSize:   menu.FontSizes{Title: 30, Category: 22, Item: 16, Price: 16},
			Layout:     menu.LayoutList, ItemsPerRow: 1,
		},
	},
	{
		ID:          "elegant",
		Name:        "Elegant",
		Description: "Stacked cards with gold accents on deep navy",
		Family:      menu.FamilyElegant,
		Style: menu.MenuStyle{
			PrimaryColor: "#d4af37", SecondaryColor: "#c0c0c0", AccentColor: "#d4af37",
			BackgroundColor: "#0f172a", TextColor: "#e2e8f0",
			FontFamily: "Playfair Display",
			FontSize:   menu.FontSizes{Title: 38, Category: 26, Item: 18, Price: 20},
			Layout:     menu.LayoutCard, ItemsPerRow: 1,
		},
	},
	{
		ID:          "rustic",
		Name:        "Rustic",
		Description: "Earthy palette, relaxed card stack",
		Family:      menu.FamilyRustic,
		Style: menu.MenuStyle{
			PrimaryColor: "#78350f", SecondaryColor: "#92400e", AccentColor: "#b45309",
			BackgroundColor: "#fef3c7", TextColor: "#44403c",
			FontFamily: "Amiri",
			FontSize:   menu.FontSizes{Title: 32, Category: 24, Item: 17, Price: 18},
			Layout:     menu.LayoutCard, ItemsPerRow: 1,
		},
	},
	{
		ID:          "contemporary",
		Name:        "Contemporary",
		Description: "Wide grid with cool neutrals",
		Family:      menu.FamilyContemporary,
		Style: menu.MenuStyle{
			PrimaryColor: "#0f766e", SecondaryColor: "#115e59", AccentColor: "#f59e0b",
			BackgroundColor: "#f8fafc", TextColor: "#0f172a",
			FontFamily: "Cairo",
			FontSize:   menu.FontSizes{Title: 34, Category: 24, Item: 17, Price: 19},
			Layout:     menu.LayoutGrid, ItemsPerRow: 4,
		},
	},
	{
		ID:          "vintage",
		Name:        "Vintage",
		Description: "Sepia list with serif character",
		Family:      menu.FamilyVintage,
		Style: menu.MenuStyle{
			PrimaryColor: "#713f12", SecondaryColor: "#854d0e", AccentColor: "#a16207",
			BackgroundColor: "#fdf6e3", TextColor: "#3f3f46",
			FontFamily: "Lateef",
			FontSize:   menu.FontSizes{Title: 32, Category: 23, Item: 16, Price: 17},
			Layout:     menu.LayoutList, ItemsPerRow: 1,
		},
	},
	{
		ID:          "artistic",
		Name:        "Artistic",
		Description: "Free-form canvas for hand-arranged menus",
		Family:      menu.FamilyArtistic,
		Style: menu.MenuStyle{
			PrimaryColor: "#7e22ce", SecondaryColor: "#a21caf", AccentColor: "#db2777",
			BackgroundColor: "#faf5ff", TextColor: "#3b0764",
			FontFamily: "Reem Kufi",
			FontSize:   menu.FontSizes{Title: 36, Category: 25, Item: 18, Price: 20},
			Layout:     menu.LayoutCustom, ItemsPerRow: 3,
		},
	},
	{
		ID:          "digital",
		Name:        "Digital",
		Description: "Dark screen-first grid for displays",
		Family:      menu.FamilyDigital,
		Style: menu.MenuStyle{
			PrimaryColor: "#22d3ee", SecondaryColor: "#818cf8", AccentColor: "#34d399",
			BackgroundColor: "#111827", TextColor: "#f9fafb",
			FontFamily: "Tajawal",
			FontSize:   menu.FontSizes{Title: 36, Category: 26, Item: 18, Price: 22},
			Layout:     menu.LayoutGrid, ItemsPerRow: 3,
		},
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Description: "High-contrast cards with generous sizing",
		Family:      menu.FamilyPremium,
		Style: menu.MenuStyle{
			PrimaryColor: "#b91c1c", SecondaryColor: "#991b1b", AccentColor: "#d4af37",
			BackgroundColor: "#fafafa", TextColor: "#18181b",
			FontFamily: "Cairo",
			FontSize:   menu.FontSizes{Title: 40, Category: 28, Item: 20, Price: 22},
			Layout:     menu.LayoutCard, ItemsPerRow: 1,
		},
	},
}

// Default returns the template used to seed new projects.
func Default() menu.MenuTemplate {
	return Builtin[0]
}

// BuiltinByID looks up a shipped template.
func BuiltinByID(id string) (menu.MenuTemplate, bool) {
	for _, t := range Builtin {
		if t.ID == id {
			return t, true
		}
	}
	return menu.MenuTemplate{}, false
}

// Merge combines the built-in catalog with custom templates for a picker.
// Built-ins come first, then custom templates in their given order. Names
// are not de-duplicated: a custom template may shadow a built-in name
// without replacing it.
func Merge(custom []menu.MenuTemplate) []menu.MenuTemplate {
	out := make([]menu.MenuTemplate, 0, len(Builtin)+len(custom))
	out = append(out, Builtin...)
	out = append(out, custom...)
	return out
}

// Resolve reconciles a project's template reference at load time. If the
// referenced template still exists (built-in, or present in custom), the
// embedded template is kept as-is. A dangling reference (typically a custom
// template deleted after the project was saved) falls back to the default
// built-in.
func Resolve(t menu.MenuTemplate, custom []menu.MenuTemplate) menu.MenuTemplate {
	if _, ok := BuiltinByID(t.ID); ok {
		return t
	}
	for _, c := range custom {
		if c.ID == t.ID {
			return t
		}
	}
	return Default()
}
