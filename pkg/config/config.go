package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ljherron8/socceraction/pkg/feature"
	"github.com/ljherron8/socceraction/pkg/queue/nats"
	"github.com/ljherron8/socceraction/pkg/rerank"
	"github.com/ljherron8/socceraction/pkg/spadl"
	"github.com/ljherron8/socceraction/pkg/store/milvus"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes environment overrides, e.g. SOCCERACTION_DUCKDB_PATH
const EnvPrefix = "SOCCERACTION"

// Config holds all configuration for the commands
type Config struct {
	Log      LogConfig               `mapstructure:"log"`
	Features FeaturesConfig          `mapstructure:"features"`
	DuckDB   DuckDBConfig            `mapstructure:"duckdb"`
	NATS     nats.Config             `mapstructure:"nats"`
	Milvus   MilvusConfig            `mapstructure:"milvus"`
	Metrics  MetricsConfig           `mapstructure:"metrics"`
	Pipeline PipelineConfig          `mapstructure:"pipeline"`
	Rerank   rerank.ClockDecayConfig `mapstructure:"rerank"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// FeaturesConfig selects the feature transformers and game state depth
type FeaturesConfig struct {
	NbPrevActions   int         `mapstructure:"nb_prev_actions"`
	Transformers    []string    `mapstructure:"transformers"`
	PlayLeftToRight bool        `mapstructure:"play_left_to_right"`
	LabelHorizon    int         `mapstructure:"label_horizon"`
	Pitch           spadl.Pitch `mapstructure:"pitch"`
}

// DuckDBConfig holds DuckDB settings
type DuckDBConfig struct {
	Path string `mapstructure:"path"`
}

// MilvusConfig holds Milvus settings
type MilvusConfig struct {
	milvus.Config `mapstructure:",squash"`
	Enabled       bool   `mapstructure:"enabled"`
	Collection    string `mapstructure:"collection"`
	Shards        int    `mapstructure:"shards"`
}

// MetricsConfig holds the metrics endpoint settings
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// PipelineConfig holds batch processing settings
type PipelineConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("features.nb_prev_actions", 3)
	v.SetDefault("features.transformers", feature.DefaultNames())
	v.SetDefault("features.play_left_to_right", true)
	v.SetDefault("features.label_horizon", 10)
	v.SetDefault("features.pitch.length", spadl.FieldLength)
	v.SetDefault("features.pitch.width", spadl.FieldWidth)

	v.SetDefault("duckdb.path", "socceraction.duckdb")

	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream", "socceraction")
	v.SetDefault("nats.retry_attempts", 3)
	v.SetDefault("nats.retry_delay", time.Second)
	v.SetDefault("nats.max_age", 24*time.Hour)
	v.SetDefault("nats.ack_wait", 30*time.Second)
	v.SetDefault("nats.max_deliver", 3)

	v.SetDefault("milvus.enabled", false)
	v.SetDefault("milvus.address", "localhost:19530")
	v.SetDefault("milvus.collection", "action_features")
	v.SetDefault("milvus.shards", 2)
	v.SetDefault("milvus.nlist", 128)
	v.SetDefault("milvus.nprobe", 16)

	v.SetDefault("metrics.addr", ":9102")
	v.SetDefault("pipeline.batch_size", 1000)

	rd := rerank.DefaultClockDecayConfig()
	v.SetDefault("rerank.lambda", rd.Lambda)
	v.SetDefault("rerank.use_segments", rd.UseSegments)
	v.SetDefault("rerank.near_minutes", rd.NearMinutes)
	v.SetDefault("rerank.mid_minutes", rd.MidMinutes)
	v.SetDefault("rerank.near_weight", rd.NearWeight)
	v.SetDefault("rerank.mid_weight", rd.MidWeight)
	v.SetDefault("rerank.far_weight", rd.FarWeight)
}

// New returns a viper instance with defaults, env overrides and, when
// configPath is set, the given YAML file. Without a path, config.yaml in the
// working directory or ./config is used if present.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads and validates the configuration
func Load(configPath string) (*Config, error) {
	v, err := New(configPath)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

// Decode unmarshals and validates the configuration held by v
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Watch reloads the configuration when its file changes and passes every
// valid new version to onChange. Invalid versions go to onError.
func Watch(v *viper.Viper, onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

// Validate checks the configuration for consistency
func Validate(cfg *Config) error {
	if cfg.Features.NbPrevActions < 0 {
		return fmt.Errorf("%w: features.nb_prev_actions must be >= 0, got %d", ErrInvalidConfig, cfg.Features.NbPrevActions)
	}
	if len(cfg.Features.Transformers) == 0 {
		return fmt.Errorf("%w: features.transformers must not be empty", ErrInvalidConfig)
	}
	if cfg.Features.LabelHorizon < 1 {
		return fmt.Errorf("%w: features.label_horizon must be >= 1", ErrInvalidConfig)
	}
	if cfg.Features.Pitch.Length <= 0 || cfg.Features.Pitch.Width <= 0 {
		return fmt.Errorf("%w: features.pitch dimensions must be positive", ErrInvalidConfig)
	}
	if cfg.Pipeline.BatchSize < 1 {
		return fmt.Errorf("%w: pipeline.batch_size must be >= 1", ErrInvalidConfig)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalidConfig, cfg.Log.Format)
	}
	return nil
}

// Vocabulary returns the default atomic vocabulary on the configured pitch
func (c *Config) Vocabulary() *spadl.Vocabulary {
	base := spadl.DefaultVocabulary()
	return spadl.NewVocabulary(c.Features.Pitch, base.ActionTypes(), base.BodyParts())
}
