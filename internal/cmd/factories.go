package cmd

import (
	"context"
	"sync"

	adapterbridge "github.com/renato0307/tabstash/internal/adapters/bridge"
	adapterdesktop "github.com/renato0307/tabstash/internal/adapters/desktop"
	adapterstorage "github.com/renato0307/tabstash/internal/adapters/storage"
	"github.com/renato0307/tabstash/internal/config"
	"github.com/renato0307/tabstash/internal/events"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/services"
)

// Container holds all dependencies for the application.
// The database is opened on first use so commands that only talk to the
// server never touch it.
type Container struct {
	settings *config.Settings

	mu    sync.Mutex
	repo  *adapterstorage.SQLiteRepository
	store *services.StoreService
}

// NewContainer creates a new Container
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Container{settings: settings}, nil
}

// StoreService opens the persistent store and returns the service over it
func (c *Container) StoreService() (*services.StoreService, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		return c.store, nil
	}

	repo, err := adapterstorage.NewSQLiteRepositoryForPath(config.GetHome())
	if err != nil {
		return nil, err
	}
	c.repo = repo
	c.store = services.NewStoreService(repo)
	return c.store, nil
}

// Engine is the running coordinator: the task queue, the event bus feeding
// it and the bridge server through which the host and dialogs reach it.
type Engine struct {
	Bus    *events.Bus
	Host   *adapterbridge.Host
	Queue  *events.Queue
	Server *adapterbridge.Server
}

// NewEngine wires every service around a bridge host listening on addr
func (c *Container) NewEngine(addr string) (*Engine, error) {
	store, err := c.StoreService()
	if err != nil {
		return nil, err
	}

	queue := events.NewQueue()
	bus := events.NewBus(queue)
	host := adapterbridge.NewHost(bus, c.settings.GetHostCallTimeout())

	state := services.NewState()
	notifications := services.NewNotificationService(host, adapterdesktop.NewNotifier())
	selection := services.NewSelectionService(state, host)
	dialog := services.NewDialogService(c.dialogConfig(), state, store, host, host, notifications)
	debouncer := events.NewDebouncer(events.RealScheduler{}, c.settings.GetBoundsDebounce(), queue.Post)
	bounds := services.NewBoundsService(state, store, host, debouncer)
	commit := services.NewCommitService(host, host)
	router := services.NewRouterService(store, host, commit, selection, bounds, notifications)

	coordinator := services.NewCoordinatorService(services.DefaultSelectionPolicy(), host, selection, dialog, bounds, router)
	coordinator.Register(bus)

	logging.Logger.Debug("Engine wired",
		"addr", addr,
		"bounds_debounce", debouncer.Interval(),
		"host_call_timeout", c.settings.GetHostCallTimeout())

	server := adapterbridge.NewServer(addr, c.settings.GetAllowedOrigins(), host, bus)
	server.WithDialogStatus(func(ctx context.Context) (bool, error) {
		var open bool
		if err := queue.Do(ctx, func(context.Context) {
			_, open = state.DialogID()
		}); err != nil {
			return false, err
		}
		return open, nil
	})

	return &Engine{
		Bus:    bus,
		Host:   host,
		Queue:  queue,
		Server: server,
	}, nil
}

func (c *Container) dialogConfig() services.DialogConfig {
	return services.DialogConfig{
		URL:       c.settings.DialogURL,
		Width:     c.settings.GetDialogWidth(),
		Height:    c.settings.GetDialogHeight(),
		OffsetTop: c.settings.GetDialogOffsetTop(),
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.repo == nil {
		return nil
	}
	err := c.repo.Close()
	c.repo, c.store = nil, nil
	return err
}
