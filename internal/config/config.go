// Package config loads the command line tool's settings from a YAML file,
// MINIRE_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/duarterr/miniregex/internal/log"
	"github.com/duarterr/miniregex/meta"
)

// EnvPrefix prefixes environment variables: MINIRE_ENGINE_MAX_INSTRUCTIONS
// sets engine.max-instructions.
const EnvPrefix = "MINIRE"

// Keys, as written in the YAML file.
const (
	KeyMaxInstructions      = "engine.max-instructions"
	KeyClassBufferSize      = "engine.class-buffer-size"
	KeyPrefilter            = "engine.prefilter"
	KeyMaxPrefilterLiterals = "engine.max-prefilter-literals"
	KeyMaxClassExpansion    = "engine.max-class-expansion"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
	KeyLogFile              = "log.file"
	KeyLogMaxSize           = "log.max-size"
	KeyLogMaxBackups        = "log.max-backups"
	KeyLogMaxAge            = "log.max-age"
)

// flagKeys maps command line flags to the keys they override.
var flagKeys = map[string]string{
	"max-instructions":  KeyMaxInstructions,
	"class-buffer-size": KeyClassBufferSize,
	"log-level":         KeyLogLevel,
	"log-format":        KeyLogFormat,
	"log-file":          KeyLogFile,
}

// Config is the resolved configuration.
type Config struct {
	Engine meta.Config
	Log    log.Config
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{Engine: meta.DefaultConfig(), Log: log.DefaultConfig()}
}

// Load resolves the configuration. path may be empty; flags may be nil.
// The --no-prefilter flag, when given, turns engine.prefilter off.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "read config "+path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
		if f := flags.Lookup("no-prefilter"); f != nil && f.Changed {
			off, err := cast.ToBoolE(f.Value.String())
			if err != nil {
				return Config{}, errors.Wrap(err, "flag --no-prefilter")
			}
			v.Set(KeyPrefilter, !off)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault(KeyMaxInstructions, def.Engine.MaxInstructions)
	v.SetDefault(KeyClassBufferSize, def.Engine.ClassBufferSize)
	v.SetDefault(KeyPrefilter, def.Engine.EnablePrefilter)
	v.SetDefault(KeyMaxPrefilterLiterals, def.Engine.MaxPrefilterLiterals)
	v.SetDefault(KeyMaxClassExpansion, def.Engine.MaxClassExpansion)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)
	v.SetDefault(KeyLogFile, def.Log.File)
	v.SetDefault(KeyLogMaxSize, def.Log.MaxSize)
	v.SetDefault(KeyLogMaxBackups, def.Log.MaxBackups)
	v.SetDefault(KeyLogMaxAge, def.Log.MaxAge)
}

// decoder collects the first coercion error so decode reads as a list of
// fields.
type decoder struct {
	v   *viper.Viper
	err error
}

func (d *decoder) getInt(key string) int {
	n, err := cast.ToIntE(d.v.Get(key))
	if err != nil && d.err == nil {
		d.err = errors.Wrapf(err, "config key %s", key)
	}
	return n
}

func (d *decoder) getBool(key string) bool {
	b, err := cast.ToBoolE(d.v.Get(key))
	if err != nil && d.err == nil {
		d.err = errors.Wrapf(err, "config key %s", key)
	}
	return b
}

func (d *decoder) getString(key string) string {
	s, err := cast.ToStringE(d.v.Get(key))
	if err != nil && d.err == nil {
		d.err = errors.Wrapf(err, "config key %s", key)
	}
	return s
}

func decode(v *viper.Viper) (Config, error) {
	d := &decoder{v: v}
	cfg := Config{
		Engine: meta.Config{
			MaxInstructions:      d.getInt(KeyMaxInstructions),
			ClassBufferSize:      d.getInt(KeyClassBufferSize),
			EnablePrefilter:      d.getBool(KeyPrefilter),
			MaxPrefilterLiterals: d.getInt(KeyMaxPrefilterLiterals),
			MaxClassExpansion:    d.getInt(KeyMaxClassExpansion),
		},
		Log: log.Config{
			Level:      d.getString(KeyLogLevel),
			Format:     d.getString(KeyLogFormat),
			File:       d.getString(KeyLogFile),
			MaxSize:    d.getInt(KeyLogMaxSize),
			MaxBackups: d.getInt(KeyLogMaxBackups),
			MaxAge:     d.getInt(KeyLogMaxAge),
		},
	}
	if d.err != nil {
		return Config{}, d.err
	}
	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "engine config")
	}
	return cfg, nil
}
