package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tabstash/internal/adapters/lock"
	"github.com/renato0307/tabstash/internal/config"
	"github.com/renato0307/tabstash/internal/logging"
)

// ServeCmd runs the coordinator until interrupted
type ServeCmd struct {
	Addr string `help:"Address the bridge server listens on" default:"127.0.0.1:7412" env:"TABSTASH_LISTEN_ADDR"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	addr := s.Addr
	if addr == config.DefaultListenAddr {
		if _, hasEnv := os.LookupEnv("TABSTASH_LISTEN_ADDR"); !hasEnv {
			addr = cli.LoadedSettings().GetListenAddr()
		}
	}

	home := config.GetHome()
	instance, err := lock.Acquire(home)
	if err != nil {
		return err
	}
	defer func() {
		if err := instance.Release(); err != nil {
			logging.Logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	engine, err := cli.Container.NewEngine(addr)
	if err != nil {
		return fmt.Errorf("failed to start coordinator: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting tabstash", "addr", addr, "home", home)
	fmt.Fprintf(os.Stderr, "tabstash listening on %s\n", addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Queue.Run(gctx)
	})
	g.Go(func() error {
		return engine.Server.Serve(gctx)
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Coordinator stopped with error", "error", err)
		return err
	}
	logging.Logger.Info("tabstash stopped")
	return nil
}
