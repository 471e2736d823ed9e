package export

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/templates"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testProject(name string) *menu.MenuProject {
	p := menu.NewProject(templates.Default())
	p.Name = name
	p.SetRestaurant(menu.RestaurantInfo{
		Name:         "Test Kitchen",
		LogoPosition: menu.LogoCenter,
		Currency:     menu.DefaultCurrency,
	})
	cat := menu.NewCategory("Mains")
	cat.Items = append(cat.Items, menu.NewItem("Kebab", "Charcoal grilled", 42))
	p.SetCategories([]menu.MenuCategory{cat})
	return p
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []Format
		wantErr bool
	}{
		{"html", []Format{FormatHTML}, false},
		{"html,png", []Format{FormatHTML, FormatPNG}, false},
		{" PNG , print ", []Format{FormatPNG, FormatPrint}, false},
		{"svg", []Format{FormatSVG}, false},
		{"pdf", nil, true},
		{"", nil, true},
		{",,", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormats(%q) error code = %v, want INVALID_FORMAT", tt.in, errors.GetCode(err))
			}
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseFormats(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExportHTML(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, WithLogger(quietLogger()))

	path, err := e.Export(context.Background(), testProject("Dinner Card"), FormatHTML)
	if err != nil {
		t.Fatalf("Export(html) error = %v", err)
	}
	if want := filepath.Join(dir, "Dinner Card.html"); path != want {
		t.Errorf("Export(html) path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Contains(data, []byte("<!DOCTYPE html>")) {
		t.Error("artifact is not an HTML document")
	}
	if !bytes.Contains(data, []byte("Kebab")) {
		t.Error("artifact missing item name")
	}
}

func TestExportUnnamedProjectUsesDefaultName(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, WithLogger(quietLogger()))

	path, err := e.Export(context.Background(), testProject("  "), FormatHTML)
	if err != nil {
		t.Fatalf("Export(html) error = %v", err)
	}
	if got := filepath.Base(path); got != "menu.html" {
		t.Errorf("artifact name = %q, want %q", got, "menu.html")
	}
}

func TestExportPNG(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, WithLogger(quietLogger()))

	path, err := e.Export(context.Background(), testProject("Raster"), FormatPNG)
	if err != nil {
		t.Fatalf("Export(png) error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	magic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(data, magic) {
		t.Errorf("artifact does not start with PNG magic: % x", data[:4])
	}
}

func TestExportPrintOpensBrowser(t *testing.T) {
	var opened string
	e := New(t.TempDir(),
		WithLogger(quietLogger()),
		WithOpener(func(path string) error {
			opened = path
			return nil
		}))

	path, err := e.Export(context.Background(), testProject("Hardcopy"), FormatPrint)
	if err != nil {
		t.Fatalf("Export(print) error = %v", err)
	}
	if opened != path {
		t.Errorf("opened %q, want exported path %q", opened, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Contains(data, []byte("window.print()")) {
		t.Error("print artifact missing print trigger script")
	}
	os.Remove(path)
}

func TestExportSVGCarriesItemDetail(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, WithLogger(quietLogger()))

	path, err := e.Export(context.Background(), testProject("Structure"), FormatSVG)
	if err != nil {
		t.Fatalf("Export(svg) error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	// The outline must render detailed item nodes, so the description and
	// the price fragment both appear as label text.
	if !bytes.Contains(data, []byte("Charcoal grilled")) {
		t.Error("outline missing item description")
	}
	price := menu.FormatPrice(42, menu.DefaultCurrency, true)
	if !bytes.Contains(data, []byte(price)) {
		t.Errorf("outline missing price label %q", price)
	}
}

func TestExportDoesNotMutateProject(t *testing.T) {
	e := New(t.TempDir(), WithLogger(quietLogger()))
	p := testProject("Immutable")
	before := p.UpdatedAt

	if _, err := e.Export(context.Background(), p, FormatHTML); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !p.UpdatedAt.Equal(before) {
		t.Error("export bumped UpdatedAt")
	}
	if p.Name != "Immutable" {
		t.Errorf("export changed project name to %q", p.Name)
	}
}

func TestExportCancelledContext(t *testing.T) {
	e := New(t.TempDir(), WithLogger(quietLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Export(ctx, testProject("Cancelled"), FormatHTML); err == nil {
		t.Error("Export() with cancelled context succeeded, want error")
	}
}

func TestExportFailureSurfacesCode(t *testing.T) {
	e := New(t.TempDir(),
		WithLogger(quietLogger()),
		WithOpener(func(string) error {
			return errors.New(errors.ErrCodeInternal, "no browser")
		}))

	_, err := e.Export(context.Background(), testProject("Broken"), FormatPrint)
	if err == nil {
		t.Fatal("Export(print) succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeExportFailed) {
		t.Errorf("error code = %v, want EXPORT_FAILED", errors.GetCode(err))
	}
}
