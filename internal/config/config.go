// Package config resolves the measurement parameters from an optional
// YAML file and the command line, and validates the combination before
// any socket is opened.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"gopkg.in/yaml.v3"
)

const (
	MinPort = 1024
	MaxPort = 65535
)

// File is the optional YAML configuration. Command-line flags override
// any value set here.
type File struct {
	Port      int     `yaml:"port"`
	Host      string  `yaml:"host"`
	Duration  float64 `yaml:"duration"`
	ChunkSize int     `yaml:"chunk_size"`
	Exchanges int     `yaml:"rtt_exchanges"`
	LogLevel  string  `yaml:"log_level"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// Options is the fully resolved command surface for one process run.
type Options struct {
	// Server and Client are mutually exclusive; exactly one is set.
	Server bool
	Client bool
	// Host is the server hostname. Client mode only.
	Host string
	// Port in [MinPort, MaxPort]. Required in both modes.
	Port int
	// Duration bounds the client's transfer phase. Client mode only.
	Duration time.Duration
	// ChunkSize and Exchanges default to the protocol reference values.
	ChunkSize int
	Exchanges int
	LogLevel  slog.Level
}

// SetDefaults fills unset measurement parameters with the protocol
// reference values.
func (o *Options) SetDefaults() {
	if o.ChunkSize == 0 {
		o.ChunkSize = protocol.DefaultChunkSize
	}
	if o.Exchanges == 0 {
		o.Exchanges = protocol.DefaultExchanges
	}
}

// Validate rejects invalid combinations before the protocol runs.
func (o *Options) Validate() error {
	if o.Server == o.Client {
		return errors.New("exactly one of server and client mode must be selected")
	}
	if o.Port < MinPort || o.Port > MaxPort {
		return fmt.Errorf("port must be in the range [%d, %d]", MinPort, MaxPort)
	}
	if o.Client {
		if o.Host == "" {
			return errors.New("client mode requires a server hostname")
		}
		if o.Duration <= 0 {
			return errors.New("duration must be greater than 0")
		}
	} else {
		if o.Host != "" {
			return errors.New("hostname is not valid in server mode")
		}
		if o.Duration != 0 {
			return errors.New("duration is not valid in server mode")
		}
	}
	if o.ChunkSize <= 0 {
		return errors.New("chunk size must be greater than 0")
	}
	if o.Exchanges <= 0 {
		return errors.New("rtt exchanges must be greater than 0")
	}
	return nil
}

// ParseLevel maps a config file log level to slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
