// Package config holds the listener settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SIMPLE_HTTP_"

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the listener settings.
//
// Always start from Default() and override fields; a zero Config does not validate.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string
	// ReadBufferSize is the size of the single read taken from each connection.
	// Whatever arrives beyond it is ignored.
	ReadBufferSize int
	// ReadTimeout bounds how long a connection may take to send its request.
	ReadTimeout time.Duration
	// WriteTimeout bounds how long writing the response may take.
	WriteTimeout time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is console or json.
	LogFormat string
	// DumpRequests logs every parsed request as a JSON document at debug level.
	DumpRequests bool
}

// Default returns the default config: loopback port 5500 and a 1 KiB read.
func Default() Config {
	return Config{
		Addr:           "127.0.0.1:5500",
		ReadBufferSize: 1024,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		LogLevel:       "info",
		LogFormat:      FormatConsole,
	}
}

// Load builds a config from defaults, then SIMPLE_HTTP_* environment variables
// read through getenv, then command-line args. Later sources win.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("simple-http", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "TCP address to listen on")
	fs.IntVar(&cfg.ReadBufferSize, "read-buffer", cfg.ReadBufferSize, "bytes read from each connection")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "request read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "response write timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.BoolVar(&cfg.DumpRequests, "dump", cfg.DumpRequests, "log parsed requests as JSON")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if v := getenv(EnvPrefix + "ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv(EnvPrefix + "READ_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sREAD_BUFFER: %w", EnvPrefix, err)
		}
		c.ReadBufferSize = n
	}
	if v := getenv(EnvPrefix + "READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sREAD_TIMEOUT: %w", EnvPrefix, err)
		}
		c.ReadTimeout = d
	}
	if v := getenv(EnvPrefix + "WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sWRITE_TIMEOUT: %w", EnvPrefix, err)
		}
		c.WriteTimeout = d
	}
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv(EnvPrefix + "DUMP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sDUMP: %w", EnvPrefix, err)
		}
		c.DumpRequests = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("config: empty listen address")
	case c.ReadBufferSize <= 0:
		return fmt.Errorf("config: read buffer size must be positive, got %d", c.ReadBufferSize)
	case c.ReadTimeout <= 0:
		return fmt.Errorf("config: read timeout must be positive, got %s", c.ReadTimeout)
	case c.WriteTimeout <= 0:
		return fmt.Errorf("config: write timeout must be positive, got %s", c.WriteTimeout)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
