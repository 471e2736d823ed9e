// Package menu defines the canonical menu document model.
//
// A MenuProject is the single source of truth consumed by every rendering
// surface (terminal preview, HTML export, bitmap export, outline diagram).
// The model is pure data: all rendering decisions derived from it live in
// pkg/style, and all mutation happens through whole-field replacement so
// each update produces a new immutable snapshot.
package menu

import "time"

// LogoPosition controls where the restaurant identity header is aligned.
type LogoPosition string

// Valid logo positions.
const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// Layout selects how items are arranged within a category.
type Layout string

// Valid layout modes.
const (
	LayoutGrid   Layout = "grid"   // responsive column grid
	LayoutCard   Layout = "card"   // vertical stack of cards
	LayoutList   Layout = "list"   // compact rows with divider rule
	LayoutCustom Layout = "custom" // free positioning, no implicit flow
)

// LayoutFamily tags a template with its named design preset.
type LayoutFamily string

// The closed set of template layout families. FamilyCustom marks
// user-authored templates.
const (
	FamilyModern       LayoutFamily = "modern"
	FamilyClassic      LayoutFamily = "classic"
	FamilyMinimal      LayoutFamily = "minimal"
	FamilyElegant      LayoutFamily = "elegant"
	FamilyRustic       LayoutFamily = "rustic"
	FamilyContemporary LayoutFamily = "contemporary"
	FamilyVintage      LayoutFamily = "vintage"
	FamilyArtistic     LayoutFamily = "artistic"
	FamilyDigital      LayoutFamily = "digital"
	FamilyPremium      LayoutFamily = "premium"
	FamilyCustom       LayoutFamily = "custom"
)

// MenuItem is a single dish or product on the menu.
// Identity is stable once created; items are removed only by explicit
// deletion from their category.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // non-negative
	Image       string  `json:"image,omitempty"`
	Video       string  `json:"video,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// MenuCategory groups items under a display name. Item order is display
// order and significant. A category owns its items exclusively: deleting
// the category deletes them.
type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon,omitempty"`
	Items []MenuItem `json:"items"`
}

// Currency describes a display currency from the fixed catalog.
// Currencies are referenced, not owned, by RestaurantInfo.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Flag   string `json:"flag,omitempty"`
}

// RestaurantInfo is the identity block rendered at the top of every surface.
// Name is required for a valid document, but renderers tolerate it empty.
type RestaurantInfo struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Logo         string       `json:"logo,omitempty"`
	LogoPosition LogoPosition `json:"logoPosition"`
	Address      string       `json:"address,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Website      string       `json:"website,omitempty"`
	Currency     Currency     `json:"currency"`

	// DisplayStyle is a hint consumed only by the info-layout picker UI.
	// Renderers ignore it.
	DisplayStyle string `json:"displayStyle,omitempty"`
}

// FontSizes holds the four independent font sizes in pixels.
type FontSizes struct {
	Title    int `json:"title"`
	Category int `json:"category"`
	Item     int `json:"item"`
	Price    int `json:"price"`
}

// Effects is the optional set of surface modifiers, each independently
// toggleable.
type Effects struct {
	Blur bool `json:"blur"`
	Glow bool `json:"glow"`
}

// MenuStyle is the style model every renderer consumes. All layout
// derivations (column specs, shadow tiers, effect modifiers) are computed
// from these fields by pkg/style so backends cannot drift.
type MenuStyle struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`

	FontFamily string    `json:"fontFamily"`
	FontSize   FontSizes `json:"fontSize"`

	Layout      Layout `json:"layout"`
	ItemsPerRow int    `json:"itemsPerRow"` // 1-6, meaningful only for grid

	// BackgroundImage and BackgroundVideo are mutually exclusive; use the
	// MenuProject setters, which clear the sibling field.
	BackgroundImage   string `json:"backgroundImage,omitempty"`
	BackgroundVideo   string `json:"backgroundVideo,omitempty"`
	BackgroundOpacity int    `json:"backgroundOpacity"` // 0-100

	BorderRadius    int     `json:"borderRadius"`    // px
	Spacing         int     `json:"spacing"`         // px
	ShadowIntensity float64 `json:"shadowIntensity"` // 0-10, quantized into tiers
	Effects         Effects `json:"effects"`
}

// MenuTemplate is a named style preset. Applying a template overwrites a
// project's live style wholesale, then normalizes the derived fields (see
// MenuProject.ApplyTemplate).
type MenuTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Preview     string       `json:"preview,omitempty"` // thumbnail reference
	Style       MenuStyle    `json:"style"`
	Family      LayoutFamily `json:"layout"`

	// Authorship metadata for user-created templates.
	IsCustom  bool   `json:"isCustom,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// MenuProject is the document root.
//
// Invariants: Style is always fully populated (never partial); item ids are
// unique within their category; Template points to a template that existed
// at assignment time (a later-deleted custom template is reconciled at load
// time by templates.Resolve, not here).
type MenuProject struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Restaurant RestaurantInfo `json:"restaurant"`
	Template   MenuTemplate   `json:"template"`
	Categories []MenuCategory `json:"categories"`
	Style      MenuStyle      `json:"style"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	// HasCart is reserved for future ordering functionality. Serialized,
	// never read.
	HasCart bool `json:"hasCart"`
}
