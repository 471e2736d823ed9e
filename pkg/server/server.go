// Package server exposes a project's rendering surfaces over HTTP.
//
// Each request renders from the immutable project snapshot captured at
// construction time; the server never mutates the document. Intended for
// local previewing, not as a public deployment surface.
package server

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/render/bitmap"
	"github.com/menuforge/menuforge/pkg/render/html"
	"github.com/menuforge/menuforge/pkg/render/outline"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCurrencyFlag controls the flag prefix on rendered prices.
func WithCurrencyFlag(show bool) Option {
	return func(s *Server) { s.showFlag = show }
}

// Server renders one project over HTTP.
type Server struct {
	project  *menu.MenuProject
	logger   *log.Logger
	showFlag bool
}

// New creates a server for the given project snapshot.
func New(p *menu.MenuProject, opts ...Option) *Server {
	s := &Server{
		project:  p,
		logger:   log.New(os.Stderr),
		showFlag: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleDocument)
	r.Get("/print", s.handlePrint)
	r.Get("/menu.png", s.handleBitmap)
	r.Get("/outline.svg", s.handleOutline)
	r.Get("/project.json", s.handleProject)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving preview", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html.Render(s.project, html.WithCurrencyFlag(s.showFlag)))
}

func (s *Server) handlePrint(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html.RenderPrint(s.project, html.WithCurrencyFlag(s.showFlag)))
}

func (s *Server) handleBitmap(w http.ResponseWriter, r *http.Request) {
	data, err := bitmap.Render(s.project, bitmap.WithCurrencyFlag(s.showFlag))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	dot := outline.ToDOT(s.project, outline.Options{Detailed: true, ShowCurrencyFlag: s.showFlag})
	data, err := outline.RenderSVG(dot)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := menu.WriteJSON(s.project, &buf); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed", "path", r.URL.Path, "err", err)
	http.Error(w, "render failed", http.StatusInternalServerError)
}

// logRequests writes one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
