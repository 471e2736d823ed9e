// Package export orchestrates rendering a project into artifacts on disk.
//
// The exporter is the error boundary for the rendering surfaces: a failed
// export is logged once, surfaced as a single structured error, never
// retried, and never mutates the project. Callers treat Export as
// fire-and-forget.
package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/observability"
	"github.com/menuforge/menuforge/pkg/render/bitmap"
	"github.com/menuforge/menuforge/pkg/render/html"
	"github.com/menuforge/menuforge/pkg/render/outline"
)

// Format selects a rendering surface.
type Format string

const (
	// FormatHTML writes the self-contained static document.
	FormatHTML Format = "html"
	// FormatPNG writes the fixed-size bitmap snapshot.
	FormatPNG Format = "png"
	// FormatPrint writes the print variant and opens it in the browser so
	// the platform print dialog takes over.
	FormatPrint Format = "print"
	// FormatSVG writes the document structure outline diagram.
	FormatSVG Format = "svg"
)

// AllFormats lists every supported format in display order.
var AllFormats = []Format{FormatHTML, FormatPNG, FormatPrint, FormatSVG}

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatHTML, FormatPNG, FormatPrint, FormatSVG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (valid: html, png, print, svg)", s)
}

// ParseFormats parses a comma-separated format list.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no formats given")
	}
	return out, nil
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used for the one log line per export.
func WithLogger(l *log.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// WithCurrencyFlag controls whether exported prices carry the flag prefix.
func WithCurrencyFlag(show bool) Option {
	return func(e *Exporter) { e.showFlag = show }
}

// WithFont sets the preferred font family for bitmap exports. Empty keeps
// the rasterizer's host candidate list.
func WithFont(family string) Option {
	return func(e *Exporter) { e.font = family }
}

// WithOpener overrides how the print artifact is handed to the browser.
// Used by tests; the default shells out to the platform opener.
func WithOpener(open func(path string) error) Option {
	return func(e *Exporter) { e.open = open }
}

// Exporter writes render artifacts into an output directory.
type Exporter struct {
	outDir   string
	logger   *log.Logger
	showFlag bool
	font     string
	open     func(path string) error
}

// New creates an exporter writing into outDir. The directory is created on
// first export if missing.
func New(outDir string, opts ...Option) *Exporter {
	e := &Exporter{
		outDir:   outDir,
		logger:   log.New(os.Stderr),
		showFlag: true,
		open:     openInBrowser,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the project in the given format and writes the artifact.
// Returns the written path. The project is never modified.
func (e *Exporter) Export(ctx context.Context, p *menu.MenuProject, format Format) (string, error) {
	start := time.Now()
	observability.Export().OnExportStart(ctx, string(format))

	path, size, err := e.export(ctx, p, format)
	observability.Export().OnExportComplete(ctx, string(format), size, time.Since(start), err)

	if err != nil {
		e.logger.Error("export failed", "format", format, "project", p.Name, "err", err)
		return "", errors.Wrap(errors.ErrCodeExportFailed, err, "export %s", format)
	}
	e.logger.Info("exported", "format", format, "path", path, "bytes", size)
	return path, nil
}

func (e *Exporter) export(ctx context.Context, p *menu.MenuProject, format Format) (string, int, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatHTML:
		data = html.Render(p, html.WithCurrencyFlag(e.showFlag))
	case FormatPNG:
		data, err = bitmap.Render(p,
			bitmap.WithCurrencyFlag(e.showFlag),
			bitmap.WithFont(e.font))
	case FormatPrint:
		data = html.RenderPrint(p, html.WithCurrencyFlag(e.showFlag))
	case FormatSVG:
		dot := outline.ToDOT(p, outline.Options{Detailed: true, ShowCurrencyFlag: e.showFlag})
		data, err = outline.RenderSVG(dot)
	default:
		return "", 0, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if err != nil {
		return "", 0, err
	}
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if format == FormatPrint {
		return e.writePrint(p, data)
	}

	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(e.outDir, artifactName(p, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, err
	}
	return path, len(data), nil
}

// writePrint stages the print document in a temp file and opens it so the
// browser's settled page can trigger the platform print dialog.
func (e *Exporter) writePrint(p *menu.MenuProject, data []byte) (string, int, error) {
	f, err := os.CreateTemp("", "menuforge-print-*.html")
	if err != nil {
		return "", 0, err
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, err
	}
	if err := e.open(path); err != nil {
		return "", 0, err
	}
	return path, len(data), nil
}

// artifactName derives the output filename. Unnamed projects export as
// "menu.<ext>".
func artifactName(p *menu.MenuProject, format Format) string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "menu"
	}
	return name + "." + string(format)
}
