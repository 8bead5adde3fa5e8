package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	API    APIConfig
	Retry  RetryConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type APIConfig struct {
	URL     string
	Key     string
	Entity  string
	Timeout time.Duration
	PerPage int
}

type RetryConfig struct {
	MaxAttempts      int
	InitialInterval  time.Duration
	MaxElapsed       time.Duration
	BreakerThreshold int64
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("API_URL", "https://api.wandb.ai")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("API_PER_PAGE", 50)
	v.SetDefault("RETRY_MAX_ATTEMPTS", 5)
	v.SetDefault("RETRY_INITIAL_INTERVAL", "500ms")
	v.SetDefault("RETRY_MAX_ELAPSED", "60s")
	v.SetDefault("BREAKER_THRESHOLD", 10)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()
	if err := v.BindEnv("API_KEY", "API_KEY", "WANDB_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind API_KEY: %w", err)
	}
	if err := v.BindEnv("API_ENTITY", "API_ENTITY", "WANDB_ENTITY"); err != nil {
		return nil, fmt.Errorf("bind API_ENTITY: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		API: APIConfig{
			URL:     v.GetString("API_URL"),
			Key:     v.GetString("API_KEY"),
			Entity:  v.GetString("API_ENTITY"),
			Timeout: duration(v, "API_TIMEOUT", 30*time.Second),
			PerPage: v.GetInt("API_PER_PAGE"),
		},
		Retry: RetryConfig{
			MaxAttempts:      v.GetInt("RETRY_MAX_ATTEMPTS"),
			InitialInterval:  duration(v, "RETRY_INITIAL_INTERVAL", 500*time.Millisecond),
			MaxElapsed:       duration(v, "RETRY_MAX_ELAPSED", time.Minute),
			BreakerThreshold: v.GetInt64("BREAKER_THRESHOLD"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

// CodegenConfig configures the GraphQL codegen post-processing run.
type CodegenConfig struct {
	TargetPackagePath string
	TargetPackageName string
	QueriesPath       string
	SchemaPath        string
	BaseImportPath    string
	Scalars           map[string]string // keyed by lower-cased GraphQL scalar name
	Plugins           []string
	Logger            LoggerConfig
}

// LoadCodegen reads the codegen config file (if any), GQLCODEGEN_* env vars
// and the given flags, in increasing order of precedence.
func LoadCodegen(path string, flags *pflag.FlagSet) (*CodegenConfig, error) {
	v := viper.New()

	v.SetDefault("target_package_path", "internal")
	v.SetDefault("target_package_name", "gen")
	v.SetDefault("queries_path", "graphql/queries")
	v.SetDefault("base_import_path", "github.com/verigle/wandb/internal/gqlbase")
	v.SetDefault("scalars", map[string]string{"ID": "GQLId"})
	v.SetDefault("plugins", []string{"sdk", "fragment-order"})
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read codegen config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("GQLCODEGEN")
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	cfg := &CodegenConfig{
		TargetPackagePath: v.GetString("target_package_path"),
		TargetPackageName: v.GetString("target_package_name"),
		QueriesPath:       v.GetString("queries_path"),
		SchemaPath:        v.GetString("schema_path"),
		BaseImportPath:    v.GetString("base_import_path"),
		Scalars:           lowerKeys(v.GetStringMapString("scalars")),
		Plugins:           v.GetStringSlice("plugins"),
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Format: v.GetString("logger.format"),
		},
	}

	return cfg, nil
}

// lowerKeys folds map keys to lower case. viper lowercases keys read from
// files and env but keeps the keys of map defaults as given.
func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[strings.ToLower(k)] = val
	}
	return out
}
