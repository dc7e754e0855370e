// Package config loads editor settings from defaults, a TOML or YAML file
// and CREW_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of the editor.
type Config struct {
	// QuitTimes is how many extra Ctrl-Q presses quitting a modified
	// document takes.
	QuitTimes int `toml:"quit_times" yaml:"quit_times"`
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout Duration `toml:"message_timeout" yaml:"message_timeout"`
	// KeyTimeout bounds each byte read while decoding keys.
	KeyTimeout Duration `toml:"key_timeout" yaml:"key_timeout"`
	// LogFile receives the session log. Empty disables logging.
	LogFile string `toml:"log_file" yaml:"log_file"`
	// WatchFile enables reporting of changes made to the file by other
	// programs.
	WatchFile bool `toml:"watch_file" yaml:"watch_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		QuitTimes:      2,
		MessageTimeout: Duration(5 * time.Second),
		KeyTimeout:     Duration(100 * time.Millisecond),
		WatchFile:      true,
	}
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crew", "config.toml")
}

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load builds the configuration from the defaults, the file at path and the
// environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml", "":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("config file %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// Environment variables recognized by Load.
const (
	EnvQuitTimes      = "CREW_QUIT_TIMES"
	EnvMessageTimeout = "CREW_MESSAGE_TIMEOUT"
	EnvKeyTimeout     = "CREW_KEY_TIMEOUT"
	EnvLogFile        = "CREW_LOG_FILE"
	EnvWatchFile      = "CREW_WATCH_FILE"
)

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvQuitTimes); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvQuitTimes, err)
		}
		c.QuitTimes = n
	}
	if v, ok := lookup(EnvMessageTimeout); ok {
		if err := c.MessageTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvMessageTimeout, err)
		}
	}
	if v, ok := lookup(EnvKeyTimeout); ok {
		if err := c.KeyTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvKeyTimeout, err)
		}
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvWatchFile); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWatchFile, err)
		}
		c.WatchFile = b
	}
	return nil
}

// Validate rejects settings the editor cannot run with.
func (c Config) Validate() error {
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout)
	}
	if c.KeyTimeout <= 0 {
		return fmt.Errorf("key_timeout must be positive, got %s", c.KeyTimeout)
	}
	return nil
}
