package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/lksh336/internal/backdoor"
	"github.com/kurochkinivan/lksh336/internal/config"
	v1 "github.com/kurochkinivan/lksh336/internal/controller/http/v1"
	"github.com/kurochkinivan/lksh336/internal/controller/stream"
	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/monitor"
	"github.com/kurochkinivan/lksh336/internal/preset"
	"github.com/kurochkinivan/lksh336/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting emulator",
		slog.String("device_id", a.cfg.Device.ID),
		slog.String("preset", a.cfg.Device.Preset),
	)

	dev := device.New()
	dev.SetID(a.cfg.Device.ID)

	bd := backdoor.New(dev)
	loader := preset.NewLoader(a.log, bd)

	if a.cfg.Device.Preset != "" {
		if err := loader.LoadFile(ctx, a.cfg.Device.Preset); err != nil {
			return fmt.Errorf("failed to apply preset: %w", err)
		}
	}

	var watcher *preset.Watcher
	if a.cfg.Device.PresetDirectory != "" {
		watcher = preset.NewWatcher(a.log, a.cfg.Device.PresetDirectory, a.cfg.Device.PresetScanInterval, loader)
	}

	reg := prometheus.NewRegistry()
	metrics := monitor.NewMetrics(reg)

	handler := protocol.NewHandler(a.log, dev, metrics)
	streamServer := stream.NewServer(a.log, a.cfg.Stream, handler, metrics)
	httpServer := v1.NewServer(a.cfg.HTTP, bd, dev, reg)

	return a.serve(ctx, streamServer, httpServer, watcher)
}

// serve runs until ctx is done or a component fails. watcher may be nil.
func (a *App) serve(ctx context.Context, streamServer *stream.Server, httpServer *v1.Server, watcher *preset.Watcher) error {
	erg, ctx := errgroup.WithContext(ctx)

	if watcher != nil {
		erg.Go(func() error {
			a.log.InfoContext(ctx, "preset watcher started", slog.String("dir", a.cfg.Device.PresetDirectory))
			return watcher.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting stream server", slog.String("addr", streamServer.Addr()))
		return streamServer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", httpServer.Addr()))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "emulator stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "emulator stopped gracefully")

	return nil
}
