package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/dirnav/internal/app"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// File is the configuration file that was consulted, if any.
	File string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig  = "DIRNAV_CONFIG"
	envTick    = "DIRNAV_TICK"
	envWatch   = "DIRNAV_WATCH"
	envFooter  = "DIRNAV_FOOTER"
	envNoColor = "DIRNAV_NO_COLOR"
	envTrace   = "DIRNAV_TRACE"
	envLogFile = "DIRNAV_LOG_FILE"
	envWidth   = "DIRNAV_WIDTH"
	envHeight  = "DIRNAV_HEIGHT"

	// envNoColorStandard follows https://no-color.org: any non-empty value
	// disables colour.
	envNoColorStandard = "NO_COLOR"
)

const (
	flagConfig  = "config"
	flagTick    = "tick"
	flagWatch   = "watch"
	flagFooter  = "footer"
	flagNoColor = "no-color"
	flagTrace   = "trace"
	flagLogFile = "log-file"
	flagWidth   = "width"
	flagHeight  = "height"
)

const defaultTick = 250 * time.Millisecond

// fileConfig mirrors the YAML file. Pointers distinguish unset from zero.
type fileConfig struct {
	Tick    string `yaml:"tick"`
	Watch   *bool  `yaml:"watch"`
	Footer  *bool  `yaml:"footer"`
	NoColor *bool  `yaml:"no_color"`
	Trace   *bool  `yaml:"trace"`
	LogFile string `yaml:"log_file"`
	Width   *int   `yaml:"width"`
	Height  *int   `yaml:"height"`
}

// Defaults returns the configuration used when no source overrides anything.
func Defaults() Config {
	return Config{
		App: app.Config{
			Tick:       defaultTick,
			Watch:      true,
			ShowFooter: true,
		},
	}
}

// BindFlags registers every setting on fs. Flag defaults are informational;
// precedence is resolved in FromFlags.
func BindFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(flagConfig, "", "path to the YAML configuration file")
	fs.Duration(flagTick, d.App.Tick, "interval between refresh ticks")
	fs.Bool(flagWatch, d.App.Watch, "refresh as soon as the current directory changes")
	fs.Bool(flagFooter, d.App.ShowFooter, "show the key help footer")
	fs.Bool(flagNoColor, false, "disable colours and text attributes")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.Int(flagWidth, 0, "fixed viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, 0, "fixed viewport height in rows (0 uses terminal height)")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("dirnav", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return FromFlags(fs, args, environ)
}

// FromFlags resolves configuration from an already parsed flag set, the
// environment and the configuration file, in that order of precedence.
func FromFlags(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Defaults()
	cfg.Args = append([]string(nil), args...)

	path, explicit := configPath(fs, env)
	if path != "" {
		fc, found, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		if !found && explicit {
			return Config{}, fmt.Errorf("config file %s does not exist", path)
		}
		if found {
			cfg.File = path
			if err := fc.apply(&cfg); err != nil {
				return Config{}, fmt.Errorf("config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg, env)
	if err := applyFlags(&cfg, fs); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.Flags = map[string]string{
		flagConfig:  cfg.File,
		flagTick:    cfg.App.Tick.String(),
		flagWatch:   strconv.FormatBool(cfg.App.Watch),
		flagFooter:  strconv.FormatBool(cfg.App.ShowFooter),
		flagNoColor: strconv.FormatBool(cfg.App.NoColor),
		flagWidth:   strconv.Itoa(cfg.App.Width),
		flagHeight:  strconv.Itoa(cfg.App.Height),
	}
	return cfg, nil
}

// configPath picks the file to read and reports whether the user named it.
func configPath(fs *pflag.FlagSet, env map[string]string) (string, bool) {
	if fs != nil && fs.Changed(flagConfig) {
		if v, err := fs.GetString(flagConfig); err == nil && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	if base := strings.TrimSpace(env["XDG_CONFIG_HOME"]); base != "" {
		return filepath.Join(base, "dirnav", "config.yaml"), false
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "dirnav", "config.yaml"), false
	}
	return "", false
}

func readFile(path string) (fileConfig, bool, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, false, nil
		}
		return fc, false, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, false, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, true, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if strings.TrimSpace(fc.Tick) != "" {
		tick, err := time.ParseDuration(strings.TrimSpace(fc.Tick))
		if err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		cfg.App.Tick = tick
	}
	if fc.Watch != nil {
		cfg.App.Watch = *fc.Watch
	}
	if fc.Footer != nil {
		cfg.App.ShowFooter = *fc.Footer
	}
	if fc.NoColor != nil {
		cfg.App.NoColor = *fc.NoColor
	}
	if fc.Trace != nil {
		cfg.Logging.Trace = *fc.Trace
	}
	if fc.LogFile != "" {
		cfg.Logging.FilePath = fc.LogFile
	}
	if fc.Width != nil {
		cfg.App.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.App.Height = *fc.Height
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) {
	cfg.App.Tick = envOrDuration(env, envTick, cfg.App.Tick)
	cfg.App.Watch = envOrBool(env, envWatch, cfg.App.Watch)
	cfg.App.ShowFooter = envOrBool(env, envFooter, cfg.App.ShowFooter)
	if env[envNoColorStandard] != "" {
		cfg.App.NoColor = true
	}
	cfg.App.NoColor = envOrBool(env, envNoColor, cfg.App.NoColor)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.App.Width = envOrInt(env, envWidth, cfg.App.Width)
	cfg.App.Height = envOrInt(env, envHeight, cfg.App.Height)
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	var err error
	if fs.Changed(flagTick) {
		if cfg.App.Tick, err = fs.GetDuration(flagTick); err != nil {
			return err
		}
	}
	if fs.Changed(flagWatch) {
		if cfg.App.Watch, err = fs.GetBool(flagWatch); err != nil {
			return err
		}
	}
	if fs.Changed(flagFooter) {
		if cfg.App.ShowFooter, err = fs.GetBool(flagFooter); err != nil {
			return err
		}
	}
	if fs.Changed(flagNoColor) {
		if cfg.App.NoColor, err = fs.GetBool(flagNoColor); err != nil {
			return err
		}
	}
	if fs.Changed(flagTrace) {
		if cfg.Logging.Trace, err = fs.GetBool(flagTrace); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogFile) {
		if cfg.Logging.FilePath, err = fs.GetString(flagLogFile); err != nil {
			return err
		}
	}
	if fs.Changed(flagWidth) {
		if cfg.App.Width, err = fs.GetInt(flagWidth); err != nil {
			return err
		}
	}
	if fs.Changed(flagHeight) {
		if cfg.App.Height, err = fs.GetInt(flagHeight); err != nil {
			return err
		}
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects settings the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.Tick)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return nil
}
