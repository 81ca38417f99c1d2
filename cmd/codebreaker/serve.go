package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "svw.info/codebreaker/internal/adapters/http"
	"svw.info/codebreaker/internal/generator"
	"svw.info/codebreaker/internal/hint"
	"svw.info/codebreaker/internal/metrics"
	"svw.info/codebreaker/internal/usecase"
	"svw.info/codebreaker/internal/validator"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	src, err := newWordSource(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	store, closeStore, err := newStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	gen, err := newGenerator(a.cfg, src, a.logger, generator.WithMetrics(m))
	if err != nil {
		return err
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(gen, validator.New(), hint.NewFirstLetter(), store)
	uc.Location = loc
	uc.Logger = a.logger
	uc.Metrics = m
	h := httpadapter.New(uc, a.logger)

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           httpadapter.NewRouter(h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	source := "dictionary"
	if src != nil {
		source = src.Name()
	}
	a.logger.Info("listening",
		"addr", a.cfg.Server.Addr,
		"timezone", loc.String(),
		"locale", a.cfg.Puzzle.Locale,
		"word_source", source,
		"redis", a.cfg.Storage.RedisURL != "",
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		a.logger.Error("server error", "err", err)
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
