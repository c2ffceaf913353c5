package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/internal/render"
	"github.com/mwantia/gauchogo/internal/session"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/mwantia/gauchogo/pkg/log"
)

type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CookieName   string

	HousingCSV string
	CoursesCSV string
	// AssetsDir is served under /assets/ when it exists.
	AssetsDir string
}

// Dependencies are the services the handlers read from. Store may be nil.
type Dependencies struct {
	Loader   *data.Loader
	Renderer render.Renderer
	Sessions *session.Store
	Store    store.CourseStore
}

type Server struct {
	httpServer *http.Server
	handler    http.Handler
	log        log.LoggerService
}

func NewServer(cfg ServerConfig, deps Dependencies, logger log.LoggerService) (*Server, error) {
	views, err := parseViews()
	if err != nil {
		return nil, err
	}

	if cfg.CookieName == "" {
		cfg.CookieName = "gauchogo_session"
	}

	h := &Handlers{
		cfg:      cfg,
		loader:   deps.Loader,
		renderer: deps.Renderer,
		store:    deps.Store,
		views:    views,
		log:      logger,
	}

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.HandleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))
	if info, err := os.Stat(cfg.AssetsDir); err == nil && info.IsDir() {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(deps.Sessions, cfg.CookieName))

		r.Get("/", h.HandleIndex)
		r.Post("/nav", h.HandleNavigate)
		r.Post("/sidebar", h.HandleSidebar)

		r.Get("/housing", h.HandleHousing)

		r.Route("/academics", func(r chi.Router) {
			r.Get("/", h.HandleAcademics)
			r.Post("/planner", h.HandlePlannerAdd)
			r.Post("/planner/clear", h.HandlePlannerClear)
		})

		r.Get("/professors", h.HandleProfessors)
		r.Get("/aid", h.HandleAid)
		r.Get("/qa", h.HandleQA)
		r.Post("/qa", h.HandleQA)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler: r,
		log:     logger,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	s.log.Info("Starting dashboard on '%s'", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Stopping dashboard...")
	return s.httpServer.Shutdown(ctx)
}
