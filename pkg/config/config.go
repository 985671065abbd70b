package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/logging"
	"github.com/pathmend/pathmend/pkg/paths"
)

var log = logging.GetLogger("config")

// envPrefix namespaces the environment overrides. Keys are flat, so the
// variable name after the prefix is the lowercased key: PATHMEND_LOG_FILE
// sets log_file.
const envPrefix = "PATHMEND_"

// Config holds the resolved pathmend settings.
type Config struct {
	// Simulate reports every outcome without touching the filesystem.
	Simulate bool `koanf:"simulate" toml:"simulate" json:"simulate" yaml:"simulate"`

	// BackupSuffix is appended to the backup taken before a destructive
	// step. Empty disables backups unless a command passes one.
	BackupSuffix string `koanf:"backup_suffix" toml:"backup_suffix" json:"backup_suffix" yaml:"backup_suffix"`

	// Verbosity selects the log level: 0 warnings, 1 info, 2 debug, 3 trace.
	Verbosity int `koanf:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"`

	// Output is the render format: auto, term, text, json or yaml.
	Output string `koanf:"output" toml:"output" json:"output" yaml:"output"`

	// LogFile overrides the log destination. Empty means the default
	// under the state directory.
	LogFile string `koanf:"log_file" toml:"log_file" json:"log_file" yaml:"log_file"`
}

// Default returns the built-in defaults without consulting files or the
// environment.
func Default() *Config {
	cfg, err := unmarshalDefaults()
	if err != nil {
		// The embedded defaults are fixed at build time; failing to parse
		// them is a programming error.
		panic(err)
	}
	return cfg
}

// Load resolves the configuration. configFile, when non-empty, names a file
// that must exist and parse; when empty, pathmend.toml then pathmend.yaml
// are tried in the config directory and silently skipped if absent.
// overrides is the highest-priority layer, keyed by config key.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults.
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}

	// 2. Config file, explicit or discovered.
	path := configFile
	if path == "" {
		path = discoverConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment overrides.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Caller overrides, typically flag values.
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

// discoverConfigFile returns the first config file present in the config
// directory, or empty when none exists.
func discoverConfigFile() string {
	dir := paths.ConfigDir()
	for _, name := range []string{paths.ConfigFileName, "pathmend.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks the parser by file extension.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshalDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
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
