package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	Stream
	HTTP
	Device
	Log
}

// Stream configures the CRLF command listener.
type Stream struct {
	Host           string
	Port           string
	MaxConnections int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Device struct {
	ID                 string
	Preset             string
	PresetDirectory    string
	PresetScanInterval time.Duration
}

type Log struct {
	Level string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		Stream: Stream{
			Host:           cmd.String("stream-host"),
			Port:           cmd.String("stream-port"),
			MaxConnections: cmd.Int("stream-max-connections"),
			ReadTimeout:    cmd.Duration("stream-read-timeout"),
			WriteTimeout:   cmd.Duration("stream-write-timeout"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Device: Device{
			ID:                 cmd.String("device-id"),
			Preset:             cmd.String("preset"),
			PresetDirectory:    cmd.String("preset-dir"),
			PresetScanInterval: cmd.Duration("preset-scan-interval"),
		},
		Log: Log{
			Level: cmd.String("log-level"),
		},
	}
}
