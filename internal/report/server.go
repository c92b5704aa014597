package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/pkg/browser"

	"emojicli/internal/analysis"
	apperrors "emojicli/internal/errors"
)

// Server serves the rendered report and a small JSON API on localhost so the
// charts open in the user's browser.
type Server struct {
	logger *slog.Logger
	result *analysis.Result
	html   []byte
}

// NewServer renders the report page once up front and returns a server ready
// to serve it.
func NewServer(logger *slog.Logger, builder *Builder, result *analysis.Result) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var buf bytes.Buffer
	if err := builder.Render(&buf, result); err != nil {
		return nil, err
	}

	return &Server{
		logger: logger,
		result: result,
		html:   buf.Bytes(),
	}, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/stats", s.handleStats)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = render.Render(w, req, apperrors.ErrNotFound)
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(s.html); err != nil {
		s.logger.Error("Failed to write report page",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleStats serves the computed analysis results as JSON.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.result)
}

// ListenAndServe serves the report on addr until ctx is canceled, optionally
// opening the system browser once the listener is up.
func (s *Server) ListenAndServe(ctx context.Context, addr string, openBrowser bool) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	url := fmt.Sprintf("http://%s/", ln.Addr().String())
	s.logger.Info("Report server listening", slog.String("url", url))
	fmt.Printf("Report available at %s (Ctrl-C to stop)\n", url)

	if openBrowser {
		if err := browser.OpenURL(url); err != nil {
			s.logger.Warn("Failed to open browser", slog.String("error", err.Error()))
		}
	}

	srv := &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("report server failed: %w", err)
	}
	return nil
}
