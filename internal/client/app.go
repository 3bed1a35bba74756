package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-film-keeper/internal/actionlog"
	"github.com/MKhiriev/go-film-keeper/internal/catalog"
	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/devtools"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/saga"
	"github.com/MKhiriev/go-film-keeper/internal/sagas"
	"github.com/MKhiriev/go-film-keeper/internal/service"
	"github.com/MKhiriev/go-film-keeper/internal/state"
	"github.com/MKhiriev/go-film-keeper/internal/tui"
)

const shutdownTimeout = 5 * time.Second

var _ Client = (*App)(nil)

// App is the film catalog client.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	monitor  *devtools.Monitor[catalog.State]
	logger   *logger.Logger
}

// NewApp creates the client. The state inspector is created when enabled in
// cfg.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil {
		return nil, ErrMissingDependencies
	}
	if log == nil {
		log = logger.Nop()
	}

	app := &App{
		cfg:      cfg,
		services: services,
		logger:   log,
	}
	if cfg.DevTools.Enabled {
		app.monitor = devtools.New[catalog.State](cfg.DevTools, log)
	}

	return app, nil
}

// Run configures the store, starts the background tasks and the state
// inspector, and blocks in the terminal UI until the user quits or the
// process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, root, err := a.configureStore(ctx)
	if err != nil {
		return err
	}
	defer a.stopRoot(root)

	if a.monitor != nil {
		a.monitor.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := a.monitor.Shutdown(shutdownCtx); err != nil {
				a.logger.Err(err).Msg("failed to stop state inspector")
			}
		}()
	}

	ui := tui.New(store, a.services.AppInfoService.GetAppVersion(ctx), a.logger)
	return ui.Run(ctx)
}

func (a *App) configureStore(ctx context.Context) (state.Store[catalog.State], *saga.Task[catalog.State], error) {
	opts := Options[catalog.State]{
		Logger:     a.logger,
		ThunkExtra: a.services,
		LogOptions: []actionlog.Option{actionlog.WithStateTransformer(summarizeCatalog)},
	}
	if a.monitor != nil {
		opts.ComposeEnhancers = a.monitor.Compose
	}

	root := sagas.Root(a.services.MovieService, a.cfg.Workers.SyncInterval, a.logger)

	return ConfigureStore(ctx, catalog.Reduce, catalog.InitialState(), root, opts)
}

func (a *App) stopRoot(root *saga.Task[catalog.State]) {
	root.Cancel()

	select {
	case <-root.Done():
	case <-time.After(shutdownTimeout):
		a.logger.Warn().Msg("background tasks did not stop in time")
	}
}

// summarizeCatalog keeps action logs readable: the film map is reduced to
// counts.
func summarizeCatalog(s any) any {
	st, ok := s.(catalog.State)
	if !ok {
		return s
	}

	lists := make(map[catalog.List]int, len(st.Lists))
	for list, ids := range st.Lists {
		lists[list] = len(ids)
	}

	return map[string]any{
		"films":    len(st.Films),
		"lists":    lists,
		"loading":  st.Loading,
		"syncing":  st.Syncing,
		"starred":  len(st.Starred),
		"viewed":   len(st.Viewed),
		"selected": st.Selected,
		"err":      st.Err,
	}
}
