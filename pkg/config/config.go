package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/logging"
)

// EnvPrefix prefixes environment overrides
const EnvPrefix = "GCROOTS_"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the complete gcroots configuration
type Config struct {
	Listing Listing `koanf:"listing" toml:"listing"`
	Policy  Policy  `koanf:"policy" toml:"policy"`
	Display Display `koanf:"display" toml:"display"`
}

// Listing configures the root-listing command
type Listing struct {
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
}

// Policy configures deletion safety
type Policy struct {
	ProtectedPrefixes []string `koanf:"protected_prefixes" toml:"protected_prefixes"`
}

// Display configures rendering
type Display struct {
	Color         string `koanf:"color" toml:"color"`
	ShowDeletable bool   `koanf:"show_deletable" toml:"show_deletable"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the embedded default configuration file
func DefaultContent() string {
	return string(defaultConfig)
}

// DefaultPath returns $XDG_CONFIG_HOME/gcroots/config.toml
func DefaultPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "gcroots", "config.toml")
}

// Load builds the layered configuration. An explicit path must exist; the
// default path is only read when present.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	userPath := path
	if userPath == "" {
		userPath = DefaultPath()
		if _, err := os.Stat(userPath); err != nil {
			userPath = ""
		}
	} else if _, err := os.Stat(userPath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", userPath).
			WithDetail("path", userPath)
	}

	if userPath != "" {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envValue maps GCROOTS_LISTING_COMMAND to listing.command. List-valued keys
// are split on whitespace.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)

	switch key {
	case "listing.args", "policy.protected_prefixes":
		return key, strings.Fields(value)
	}
	return key, value
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listing.Command) == "" {
		return errors.New(errors.ErrConfigValid, "listing.command must not be empty")
	}
	for _, prefix := range c.Policy.ProtectedPrefixes {
		if !filepath.IsAbs(prefix) {
			return errors.Newf(errors.ErrConfigValid, "policy.protected_prefixes: %q is not an absolute path", prefix)
		}
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "display.color: unknown mode %q", c.Display.Color)
	}
	return nil
}
