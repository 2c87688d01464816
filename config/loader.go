package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loadable is implemented by configuration structs that carry their own
// defaults and validation. Load invokes both after unmarshalling.
type Loadable interface {
	ApplyDefaults()
	Validate() error
}

// Options controls where Load looks for files.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, standard
	// locations are searched.
	EnvFile string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// Load populates cfg for the named service. Precedence, lowest to
// highest: YAML config file, .env file, process environment. When cfg
// implements Loadable, defaults are applied and validation runs after
// unmarshalling.
func Load(serviceName string, cfg any, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.EnvFile == "" {
		o.EnvFile = findFile(".env", fmt.Sprintf(".env.%s", serviceName))
	}
	if o.EnvFile != "" && exists(o.EnvFile) {
		if err := godotenv.Load(o.EnvFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", o.EnvFile, err)
		}
	}

	v := viper.New()
	bindEnv(v, serviceName)

	if o.ConfigFile == "" {
		o.ConfigFile = findFile("config.yml", "config/config.yml", "config.yaml", "config/config.yaml")
	}
	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", o.ConfigFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}

	if l, ok := cfg.(Loadable); ok {
		l.ApplyDefaults()
		if err := l.Validate(); err != nil {
			return fmt.Errorf("config: validate for service %s: %w", serviceName, err)
		}
	}

	return nil
}

// bindEnv binds every SERVICENAME_* environment variable into viper.
// Viper's Unmarshal does not consult AutomaticEnv for keys absent from the
// config file, so the values are set explicitly: FOO_FETCH_TIMEOUT binds
// both "fetch_timeout" and "fetch.timeout".
func bindEnv(v *viper.Viper, serviceName string) {
	prefix := strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")) + "_"
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		key = strings.ToLower(strings.TrimPrefix(key, prefix))
		v.Set(key, value)
		if nested := strings.ReplaceAll(key, "_", "."); nested != key {
			v.Set(nested, value)
		}
	}
}

// findFile returns the first existing candidate, searching the working
// directory and up to two parent directories.
func findFile(candidates ...string) string {
	prefixes := []string{"", "../", "../../"}
	for _, candidate := range candidates {
		for _, prefix := range prefixes {
			path := prefix + candidate
			if exists(path) {
				return path
			}
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
