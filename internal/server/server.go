// Package server exposes the label pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness and build information
//	POST /v1/labels   placements as JSON
//	POST /v1/render   one rendered artifact (svg, png, pdf or json)
//
// Both POST routes take the same body:
//
//	{
//	  "hierarchy":  {"f": "_", "x0": 0, "x1": 1, "y0": 0, "y1": 1, "children": [...]},
//	  "features":   [{"token": "age:>30", "color": "#4e79a7"}],
//	  "view":       {"window": [0, 0.5], "depth_low": 1, "depth_high": 4},
//	  "label":      {"ellipsis": "…"},
//	  "font_scale": {"domain": [1, 5], "range": [1, 0.7]},
//	  "format":     "svg",
//	  "title":      "income by age",
//	  "scale":      2
//	}
//
// Everything except "hierarchy" is optional; omitted view, label and
// font_scale fields keep the server's configured values. Errors are JSON
// {"code", "message"} with the status from [errors.HTTPStatus].
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Server answers label and render requests with a shared [pipeline.Runner].
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	maxBody  int64
	logger   *log.Logger
}

// New returns a server that fills unset request options from defaults.
// A maxBody <= 0 means 8 MiB.
func New(runner *pipeline.Runner, defaults pipeline.Options, maxBody int64, logger *log.Logger) *Server {
	if maxBody <= 0 {
		maxBody = 8 << 20
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, defaults: defaults, maxBody: maxBody, logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/labels", s.handleLabels)
		r.Post("/render", s.handleRender)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{
			Code:    "METHOD_NOT_ALLOWED",
			Message: r.Method + " not allowed on " + r.URL.Path,
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
