// Package config resolves searchadvisor settings from defaults, an optional
// YAML file, SEARCHADVISOR_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "SEARCHADVISOR"

// Keys understood by Load.
const (
	KeyConfig      = "config"
	KeyFormat      = "format"
	KeyStrict      = "strict"
	KeyInteractive = "interactive"
	KeyExplain     = "explain"
	KeyAccessible  = "accessible"
	KeyLogLevel    = "log-level"
	KeyLogMode     = "log-mode"
)

var (
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrConfigFile is returned when an explicit config file cannot be read.
	ErrConfigFile = errors.New("config: cannot read config file")
)

// Config holds the resolved settings.
type Config struct {
	// Format selects the report renderer.
	Format string `mapstructure:"format" validate:"oneof=text json yaml pretty"`
	// Strict rejects answers other than y/yes/n/no instead of treating them as "no".
	Strict bool `mapstructure:"strict"`
	// Interactive uses terminal forms when stdin and stdout are terminals.
	Interactive bool `mapstructure:"interactive"`
	// Explain adds the reasons each excluded algorithm was eliminated.
	Explain bool `mapstructure:"explain"`
	// Accessible runs terminal forms in huh's plain screen-reader mode.
	Accessible bool `mapstructure:"accessible"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogMode  string `mapstructure:"log-mode" validate:"oneof=development production"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   "text",
		LogLevel: "warn",
		LogMode:  "development",
	}
}

// New returns a viper instance wired for EnvPrefix with defaults applied.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyInteractive, d.Interactive)
	v.SetDefault(KeyExplain, d.Explain)
	v.SetDefault(KeyAccessible, d.Accessible)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogMode, d.LogMode)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// huh's own ACCESSIBLE convention is honoured as a fallback.
	_ = v.BindEnv(KeyAccessible, EnvPrefix+"_ACCESSIBLE", "ACCESSIBLE")

	return v
}

// BindFlags binds every flag in fs whose name is a known key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyConfig, KeyFormat, KeyStrict, KeyInteractive, KeyExplain, KeyAccessible, KeyLogLevel, KeyLogMode} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", key, err)
		}
	}

	return nil
}

// Load reads the optional config file named by the "config" key, then
// decodes and validates the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if path := strings.TrimSpace(v.GetString(KeyConfig)); path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w %q: %v", ErrConfigFile, path, err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w %q: %v", ErrConfigFile, expanded, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogMode = strings.ToLower(strings.TrimSpace(cfg.LogMode))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s=%q", fe.Field(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func expandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(p) == 1 {
			p = home
		} else if p[1] == '/' || p[1] == '\\' {
			p = filepath.Join(home, p[2:])
		}
	}

	return filepath.Abs(p)
}
