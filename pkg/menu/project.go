package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/pkg/errors"
)

// Normalized defaults applied whenever a template is assigned. These derived
// fields never inherit values from a template snapshot.
const (
	DefaultBackgroundOpacity = 100
	DefaultBorderRadius      = 8
	DefaultSpacing           = 16
	DefaultShadowIntensity   = 2
)

// NewProject creates an empty project seeded from the given template.
// The template's style snapshot is copied in and normalized.
func NewProject(t MenuTemplate) *MenuProject {
	now := time.Now().UTC()
	p := &MenuProject{
		ID:   uuid.NewString(),
		Name: "",
		Restaurant: RestaurantInfo{
			LogoPosition: LogoCenter,
			Currency:     DefaultCurrency,
		},
		Categories: []MenuCategory{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.ApplyTemplate(t)
	return p
}

// ApplyTemplate overwrites the live style wholesale with the template's
// snapshot and resets the derived fields (opacity, radius, spacing, shadow
// tier, effects) to fixed defaults. Inheriting stale values from a template
// snapshot is a drift hazard; the reset is deliberate.
func (p *MenuProject) ApplyTemplate(t MenuTemplate) {
	p.Template = t
	s := t.Style
	s.BackgroundOpacity = DefaultBackgroundOpacity
	s.BorderRadius = DefaultBorderRadius
	s.Spacing = DefaultSpacing
	s.ShadowIntensity = DefaultShadowIntensity
	s.Effects = Effects{}
	p.Style = s
	p.touch()
}

// SetRestaurant replaces the restaurant identity block.
func (p *MenuProject) SetRestaurant(info RestaurantInfo) {
	p.Restaurant = info
	p.touch()
}

// SetCategories replaces the category list. Order is display order.
func (p *MenuProject) SetCategories(categories []MenuCategory) {
	p.Categories = categories
	p.touch()
}

// SetStyle replaces the live style wholesale. Direct style edits may
// diverge from the template's snapshot; that divergence is intended.
func (p *MenuProject) SetStyle(s MenuStyle) {
	p.Style = s
	p.touch()
}

// SetBackgroundImage sets the background image reference and clears any
// background video: the two are mutually exclusive.
func (p *MenuProject) SetBackgroundImage(ref string) {
	p.Style.BackgroundImage = ref
	if ref != "" {
		p.Style.BackgroundVideo = ""
	}
	p.touch()
}

// SetBackgroundVideo sets the background video reference and clears any
// background image.
func (p *MenuProject) SetBackgroundVideo(ref string) {
	p.Style.BackgroundVideo = ref
	if ref != "" {
		p.Style.BackgroundImage = ""
	}
	p.touch()
}

func (p *MenuProject) touch() {
	p.UpdatedAt = time.Now().UTC()
}

// NewItem creates a menu item with a fresh stable id.
func NewItem(name, description string, price float64) MenuItem {
	return MenuItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
	}
}

// NewCategory creates a category with a fresh id and no items.
func NewCategory(name string) MenuCategory {
	return MenuCategory{
		ID:    uuid.NewString(),
		Name:  name,
		Items: []MenuItem{},
	}
}

// knownLayouts is the set of layout modes renderers understand.
var knownLayouts = map[Layout]bool{
	LayoutGrid:   true,
	LayoutCard:   true,
	LayoutList:   true,
	LayoutCustom: true,
}

// Validate checks the structural invariants of the document. Renderers do
// not call this; they tolerate imperfect documents by falling back to safe
// defaults. Validation exists for collaborators (stores, importers) that
// want to reject malformed input early.
func (p *MenuProject) Validate() error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeInvalidProject, "project id is empty")
	}
	if !knownLayouts[p.Style.Layout] {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown layout mode: %q", p.Style.Layout)
	}
	if p.Style.BackgroundImage != "" && p.Style.BackgroundVideo != "" {
		return errors.New(errors.ErrCodeInvalidStyle, "background image and video are mutually exclusive")
	}
	for _, c := range p.Categories {
		if c.ID == "" {
			return errors.New(errors.ErrCodeInvalidProject, "category %q has no id", c.Name)
		}
		seen := make(map[string]bool, len(c.Items))
		for _, it := range c.Items {
			if it.ID == "" {
				return errors.New(errors.ErrCodeInvalidProject, "item %q has no id", it.Name)
			}
			if seen[it.ID] {
				return errors.New(errors.ErrCodeInvalidProject, "duplicate item id %q in category %q", it.ID, c.Name)
			}
			seen[it.ID] = true
			if it.Price < 0 {
				return errors.New(errors.ErrCodeInvalidProject, "item %q has negative price", it.Name)
			}
		}
	}
	return nil
}
