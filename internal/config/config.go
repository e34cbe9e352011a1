// internal/config/config.go
// Package config resolves queueviz settings from defaults, an optional
// config file, .env, QUEUEVIZ_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalid reports a configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override, e.g. QUEUEVIZ_DATA_DIR.
const EnvPrefix = "QUEUEVIZ"

// Keys shared by viper, flags and the config file.
const (
	KeyConfig   = "config"
	KeyDataDir  = "data_dir"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
	KeyPalette  = "palette"
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyAddr     = "addr"
	KeyOutDir   = "out_dir"
)

// Config is the resolved application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir" validate:"required"`
	Format   string `mapstructure:"format" validate:"oneof=json csv auto"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Palette  string `mapstructure:"palette" validate:"required"`
	Width    int    `mapstructure:"width" validate:"min=200,max=4000"`
	Height   int    `mapstructure:"height" validate:"min=200,max=4000"`
	Addr     string `mapstructure:"addr" validate:"required"`
	OutDir   string `mapstructure:"out_dir" validate:"required"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyFormat, "auto")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPalette, "Dark2")
	v.SetDefault(KeyWidth, 670)
	v.SetDefault(KeyHeight, 500)
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyOutDir, ".")
}

// Load reads envFiles (".env" when none are given; missing files are
// skipped), then the config file named by the "config" key or
// ./queueviz.{yaml,json,toml}, then environment overrides, and validates the
// result.
func Load(v *viper.Viper, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("queueviz")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, e.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s, got %v", e.Field(), e.Tag(), e.Param(), e.Value()))
		default:
			msgs = append(msgs, e.Field()+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
