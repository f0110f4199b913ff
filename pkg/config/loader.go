package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tterrors "github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

const (
	appName   = "tagtint"
	envPrefix = "TAGTINT_"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// Overrides are applied after every other source, keyed by dotted path
	// (e.g. "output.format"). The CLI feeds flags through here.
	Overrides map[string]interface{}
}

// DefaultPath returns $XDG_CONFIG_HOME/tagtint/config.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Load builds the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, tterrors.Wrap(err, tterrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path, required := opts.Path, true
	if path == "" {
		path, required = DefaultPath(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, tterrors.Wrapf(err, tterrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	} else if required {
		return nil, tterrors.Wrapf(err, tterrors.ErrConfigLoad, "config file %s not readable", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return nil, tterrors.Wrap(err, tterrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, tterrors.Wrap(err, tterrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, tterrors.Wrap(err, tterrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps TAGTINT_OUTPUT_NO_COLOR to output.no_color: the first
// underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
