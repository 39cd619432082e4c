package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/config"
	"github.com/aretw0/automaton/internal/metrics"
	"github.com/aretw0/automaton/pkg/adapters/file"
	httpAdapter "github.com/aretw0/automaton/pkg/adapters/http"
	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/aretw0/automaton/pkg/adapters/redis"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve the automaton over HTTP",
	Long: `Loads the automaton and exposes it as a JSON API over HTTP, together with
Prometheus metrics on /metrics. Runs are kept in memory unless --redis
(or runs_dir in the configuration file) is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		addr := cfg.Listen
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		redisAddr := cfg.Redis.Addr
		if cmd.Flags().Changed("redis") {
			redisAddr, _ = cmd.Flags().GetString("redis")
		}

		var store ports.RunStore = memory.NewStore()
		if cfg.RunsDir != "" {
			store = file.NewStore(cfg.RunsDir)
		}
		if redisAddr != "" {
			rs := redis.New(redisAddr, cfg.Redis.Password, cfg.Redis.DB,
				redis.WithPrefix(cfg.Redis.Prefix),
				redis.WithTTL(cfg.Redis.TTL),
			)
			defer rs.Close()
			if err := rs.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("redis unavailable at %s: %w", redisAddr, err)
			}
			store = rs
		}

		collector := metrics.NewCollector()
		opts.Hooks = append(opts.Hooks, collector.Hooks())

		engine, err := cli.NewEngine(args[0], opts, logger, automaton.WithRunStore(store))
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr: addr,
			Handler: httpAdapter.NewHandler(engine,
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMetrics(collector.Handler()),
				httpAdapter.WithName(filepath.Base(args[0])),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "automaton", engine.Name)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutdown requested")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown did not complete: %w", err)
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for run storage (host:port)")
	serveCmd.Flags().String("alphabet", config.DefaultAlphabet, "Allowed input symbols (empty to accept any)")
}
