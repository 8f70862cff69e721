// Package server serves the portfolio dashboard: the chart, its data and the tables.
//
// The dataset is immutable once loaded. Every request builds its own
// perfchart.Chart from it and replays the interaction encoded in the query
// (preset, from and to, x), so chart state is never shared between goroutines.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/etnz/perfchart"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Config holds the data sources of the dashboard.
type Config struct {
	Portfolio    string // portfolio table, required
	Trades       string // trade history table, optional
	Descriptions string // names of the securities, optional
	Title        string // chart title

	Loader *perfchart.Loader // defaults to a zero Loader
}

// Server is the dashboard HTTP server.
type Server struct {
	cfg    Config
	data   *cache
	router chi.Router
}

// New returns a server for cfg. Data sources are loaded on the first request.
func New(cfg Config) *Server {
	if cfg.Loader == nil {
		cfg.Loader = new(perfchart.Loader)
	}
	s := &Server{
		cfg:  cfg,
		data: &cache{cfg: cfg},
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// Preload loads the data sources ahead of the first request.
func (s *Server) Preload(ctx context.Context) error {
	_, err := s.data.get(ctx)
	return err
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("serving %s on http://%s", s.cfg.Portfolio, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down server...")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/data/portfolio", s.handlePortfolio)
	r.Get("/chart.svg", s.handleSVG)
	r.Get("/chart.png", s.handlePNG)

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", s.handleView)
		r.Get("/tooltip", s.handleTooltip)
	})
	return r
}
