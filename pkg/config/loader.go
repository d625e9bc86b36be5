package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/specedit/pkg/errors"
)

const (
	// EnvPrefix prefixes environment overrides: SPECEDIT_SPEC__DIST=.fc40
	EnvPrefix = "SPECEDIT_"
	// ProjectConfigFile is looked up next to the spec file
	ProjectConfigFile = ".specedit.toml"
)

// LoadOptions select the optional configuration layers.
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist.
	ConfigFile string
	// SpecDir is searched for ProjectConfigFile when ConfigFile is empty.
	SpecDir string
	// Overrides are flat keys ("spec.dist") applied last. Empty strings
	// are ignored so unset flags do not mask lower layers.
	Overrides map[string]interface{}
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if path := userConfigPath(); fileExists(path) {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", path)
		}
	}

	// 3. Project config
	switch {
	case opts.ConfigFile != "":
		if !fileExists(opts.ConfigFile) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile)
		}
	case opts.SpecDir != "":
		path := filepath.Join(opts.SpecDir, ProjectConfigFile)
		if fileExists(path) {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path)
			}
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Command-line overrides
	overrides := make(map[string]interface{})
	for key, v := range opts.Overrides {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		overrides[key] = v
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// userConfigPath returns $XDG_CONFIG_HOME/specedit/config.toml
func userConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "specedit", "config.toml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// String renders the resolved configuration for debugging output.
func (c *Config) String() string {
	return fmt.Sprintf("changelog=%s <%s> dist=%q source_id=%s pattern=%s",
		c.Changelog.Author, c.Changelog.Email, c.Spec.Dist, c.Spec.SourceID, c.Patches.Pattern)
}
