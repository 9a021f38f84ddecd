package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/lksh336/internal/app"
	"github.com/kurochkinivan/lksh336/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:     "lksh336",
		Usage:    "Lakeshore 336 temperature controller emulator",
		Version:  version,
		Flags:    flags(),
		Commands: []*cli.Command{sendCmd()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			if err := setLevel(ctx, cfg.Log.Level); err != nil {
				return err
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "stream-host",
			Usage:   "Set command stream host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("stream.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "stream-port",
			Aliases: []string{"p"},
			Usage:   "Set command stream port",
			Value:   "7777",
			Sources: cli.NewValueSourceChain(yaml.YAML("stream.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:      "stream-max-connections",
			Usage:     "Set maximum number of simultaneous stream connections",
			Value:     16,
			Sources:   cli.NewValueSourceChain(yaml.YAML("stream.max_connections", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.DurationFlag{
			Name:    "stream-read-timeout",
			Usage:   "Close stream connections idle for this long, 0 disables",
			Sources: cli.NewValueSourceChain(yaml.YAML("stream.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "stream-write-timeout",
			Usage:   "Set stream reply write timeout, 0 disables",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("stream.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "device-id",
			Usage:   "Set identifier reported by *IDN?",
			Sources: cli.NewValueSourceChain(yaml.YAML("device.id", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "preset",
			Usage:     "Apply backdoor calls from TSV `FILE` at startup",
			Sources:   cli.NewValueSourceChain(yaml.YAML("device.preset", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePreset,
		},
		&cli.StringFlag{
			Name:      "preset-dir",
			Usage:     "Watch `DIR` and apply every new or modified .tsv preset",
			Sources:   cli.NewValueSourceChain(yaml.YAML("device.preset_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:      "preset-scan-interval",
			Usage:     "Set preset directory scan interval",
			Value:     3 * time.Second,
			Sources:   cli.NewValueSourceChain(yaml.YAML("device.preset_scan_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateInterval,
		},
		&cli.StringFlag{
			Name:      "log-level",
			Aliases:   []string{"l"},
			Usage:     "Set log level (debug, info, warn, error)",
			Value:     "info",
			Sources:   cli.NewValueSourceChain(yaml.YAML("log.level", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateLevel,
		},
	}
}

func setLevel(ctx context.Context, name string) error {
	level, ok := ctx.Value(levelKey{}).(*slog.LevelVar)
	if !ok {
		return errors.New("failed to get log level from context")
	}

	return level.UnmarshalText([]byte(name))
}

func validateLevel(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q", name)
	}
	return nil
}

func validatePositive(n int) error {
	if n < 1 {
		return fmt.Errorf("must be positive, got %d", n)
	}
	return nil
}

func validateInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validatePreset(preset string) error {
	if preset == "" {
		return nil
	}

	info, err := os.Stat(preset)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", preset)
		}
		return fmt.Errorf("failed to stat %q: %w", preset, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", preset)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
