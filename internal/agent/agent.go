package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/mwantia/fabric/pkg/container"
	config "github.com/mwantia/gauchogo/internal/config/server"
	"github.com/mwantia/gauchogo/internal/data"
	"github.com/mwantia/gauchogo/internal/render"
	"github.com/mwantia/gauchogo/internal/session"
	"github.com/mwantia/gauchogo/internal/web"
	"github.com/mwantia/gauchogo/pkg/db/store"
	"github.com/mwantia/gauchogo/pkg/log"
)

type GauchoAgent struct {
	mutex sync.RWMutex
	wait  sync.WaitGroup

	cfg *config.BaseServerConfig
	sc  *container.ServiceContainer
	log log.LoggerService

	store         *store.SQLiteStore
	storeAdvisory *data.Advisory
	loader        *data.Loader
	sessions      *session.Store
	server        *web.Server
}

func NewAgent(cfg *config.BaseServerConfig) *GauchoAgent {
	return &GauchoAgent{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: log.NewLoggerService("gauchogo", cfg.Log),
	}
}

// openStore opens the course database for reading. The schema is verified,
// never migrated. An unusable database leaves the store nil and the
// Academics page falls back to the CSV with a short diagnostic.
func (ga *GauchoAgent) openStore(ctx context.Context) {
	path := ga.cfg.Data.SQLite.Path
	if path == "" {
		ga.log.Info("Course database disabled")
		return
	}
	if _, err := os.Stat(path); err != nil {
		ga.log.Info("Course database '%s' not found, using CSV sources", path)
		return
	}

	s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: path})
	if err != nil {
		ga.degradeStore(path, err)
		return
	}
	if err := s.Verify(ctx); err != nil {
		_ = s.Close()
		ga.degradeStore(path, err)
		return
	}

	ga.log.Info("Using course database '%s'", path)
	ga.store = s
}

func (ga *GauchoAgent) degradeStore(path string, err error) {
	ga.log.Warn("Course database '%s' is unusable, using CSV sources: %v", path, err)
	ga.storeAdvisory = &data.Advisory{
		Level:   data.AdvisoryWarning,
		Message: fmt.Sprintf("Course database %s could not be read; showing CSV data instead.", filepath.Base(path)),
		Detail:  err.Error(),
	}
}

func (ga *GauchoAgent) setupServices(ctx context.Context) error {
	ga.openStore(ctx)

	loaderCfg := data.LoaderConfig{
		CacheTTL:      ga.cfg.Data.GetCacheTTL(),
		StoreAdvisory: ga.storeAdvisory,
	}
	if ga.store != nil {
		loaderCfg.Store = ga.store
	}

	ga.loader = data.NewLoader(loaderCfg, ga.log.Named("data"))
	ga.sessions = session.NewStore(ga.cfg.HTTP.GetSessionTTL())

	server, err := web.NewServer(web.ServerConfig{
		Address:      ga.cfg.HTTP.Address,
		ReadTimeout:  ga.cfg.HTTP.GetReadTimeout(),
		WriteTimeout: ga.cfg.HTTP.GetWriteTimeout(),
		CookieName:   ga.cfg.HTTP.CookieName,
		HousingCSV:   ga.cfg.Data.HousingCSV,
		CoursesCSV:   ga.cfg.Data.CoursesCSV,
		AssetsDir:    ga.cfg.Data.Assets.Dir,
	}, web.Dependencies{
		Loader:   ga.loader,
		Renderer: ga.renderer(),
		Sessions: ga.sessions,
		Store:    loaderCfg.Store,
	}, ga.log.Named("web"))
	if err != nil {
		return err
	}
	ga.server = server

	errs := container.Errors{}

	ga.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](ga.sc,
		container.With[log.LoggerService](),
		container.WithInstance(ga.log)))

	ga.log.Debug("Registering 'Loader'...")
	errs.Add(container.Register[data.Loader](ga.sc,
		container.WithInstance(ga.loader)))

	ga.log.Debug("Registering 'SessionStore'...")
	errs.Add(container.Register[session.Store](ga.sc,
		container.WithInstance(ga.sessions)))

	if ga.store != nil {
		ga.log.Debug("Registering 'CourseStore'...")
		errs.Add(container.Register[store.SQLiteStore](ga.sc,
			container.With[store.CourseStore](),
			container.WithInstance(ga.store)))
	}

	return errs.Errors()
}

// renderer points the listing fallback at the served assets directory when
// the fallback picture is present on disk.
func (ga *GauchoAgent) renderer() render.Renderer {
	r := render.Renderer{RemoteFallbackURL: ga.cfg.Data.Assets.RemoteFallbackURL}

	assets := ga.cfg.Data.Assets
	if assets.Dir == "" || assets.FallbackImage == "" {
		return r
	}
	if _, err := os.Stat(filepath.Join(assets.Dir, assets.FallbackImage)); err == nil {
		r.FallbackImage = "/assets/" + filepath.ToSlash(assets.FallbackImage)
	}
	return r
}

func (ga *GauchoAgent) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ga.mutex.Lock()

	if err := ga.setupServices(ctx); err != nil {
		ga.mutex.Unlock()
		return err
	}

	serveErr := make(chan error, 1)
	ga.wait.Add(1)
	go func() {
		defer ga.wait.Done()
		if err := ga.server.Start(); err != nil {
			serveErr <- err
		}
	}()

	ga.mutex.Unlock()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
		ga.log.Error("Dashboard stopped unexpectedly: %v", runErr)
	}

	shutdown, cancelShutdown := context.WithTimeout(context.Background(), ga.cfg.GetShutdownTimeout())
	defer cancelShutdown()

	if err := ga.server.Stop(shutdown); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to stop dashboard: %w", err))
	}

	if err := ga.sc.Cleanup(shutdown); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to complete service container cleanup: %w", err))
	}

	if ga.store != nil {
		if err := ga.store.Close(); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("failed to close course database: %w", err))
		}
	}

	ga.wait.Wait()
	return runErr
}
