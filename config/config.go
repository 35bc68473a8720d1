package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "SENTIREVIEW"

type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Dataset    DatasetConfig    `mapstructure:"dataset" yaml:"dataset"`
	Scorer     ScorerConfig     `mapstructure:"scorer" yaml:"scorer"`
	Cache      CacheConfig      `mapstructure:"cache" yaml:"cache"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline" yaml:"pipeline"`
	Similarity SimilarityConfig `mapstructure:"similarity" yaml:"similarity"`
	Sinks      SinksConfig      `mapstructure:"sinks" yaml:"sinks"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type DatasetConfig struct {
	Path       string `mapstructure:"path" yaml:"path"`
	TextColumn string `mapstructure:"text_column" yaml:"text_column"`
	IDColumn   string `mapstructure:"id_column" yaml:"id_column"`
}

type ScorerConfig struct {
	Backend string       `mapstructure:"backend" yaml:"backend"`
	Hugot   HugotConfig  `mapstructure:"hugot" yaml:"hugot"`
	OpenAI  OpenAIConfig `mapstructure:"openai" yaml:"openai"`
	Remote  RemoteConfig `mapstructure:"remote" yaml:"remote"`
}

type HugotConfig struct {
	Model    string `mapstructure:"model" yaml:"model"`
	ModelDir string `mapstructure:"model_dir" yaml:"model_dir"`
}

type OpenAIConfig struct {
	Model             string        `mapstructure:"model" yaml:"model"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `mapstructure:"burst" yaml:"burst"`
	Timeout           time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type RemoteConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Valkey  ValkeyConfig  `mapstructure:"valkey" yaml:"valkey"`
}

// ValkeyConfig holds connection settings; the password is read from VALKEY_PASSWORD.
type ValkeyConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
	TLS     bool   `mapstructure:"tls" yaml:"tls"`
}

type PipelineConfig struct {
	Workers       int    `mapstructure:"workers" yaml:"workers"`
	FailurePolicy string `mapstructure:"failure_policy" yaml:"failure_policy"`
	Examples      int    `mapstructure:"examples" yaml:"examples"`
}

type SimilarityConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Model    string `mapstructure:"model" yaml:"model"`
	ModelDir string `mapstructure:"model_dir" yaml:"model_dir"`
}

type SinksConfig struct {
	Kafka    KafkaSinkConfig    `mapstructure:"kafka" yaml:"kafka"`
	DynamoDB DynamoDBSinkConfig `mapstructure:"dynamodb" yaml:"dynamodb"`
}

type KafkaSinkConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Broker    string `mapstructure:"broker" yaml:"broker"`
	Topic     string `mapstructure:"topic" yaml:"topic"`
	BatchSize int    `mapstructure:"batch_size" yaml:"batch_size"`
}

type DynamoDBSinkConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Table    string `mapstructure:"table" yaml:"table"`
	Region   string `mapstructure:"region" yaml:"region"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Dataset: DatasetConfig{
			Path:       "Datafiniti_Amazon_Consumer_Reviews_of_Amazon_Products_May19.csv",
			TextColumn: "reviews.text",
			IDColumn:   "id",
		},
		Scorer: ScorerConfig{
			Backend: "vader",
			Hugot: HugotConfig{
				Model:    "distilbert/distilbert-base-uncased-finetuned-sst-2-english",
				ModelDir: "./models",
			},
			OpenAI: OpenAIConfig{
				Model:             "gpt-4o-mini",
				RequestsPerSecond: 2,
				Burst:             4,
				Timeout:           60 * time.Second,
			},
			Remote: RemoteConfig{
				Endpoint: "http://localhost:7860/polarity",
				Timeout:  30 * time.Second,
			},
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     24 * time.Hour,
			Valkey:  ValkeyConfig{Address: "localhost:6379"},
		},
		Pipeline: PipelineConfig{
			Workers:       1,
			FailurePolicy: "fail",
			Examples:      3,
		},
		Similarity: SimilarityConfig{
			Enabled:  false,
			Model:    "sentence-transformers/all-MiniLM-L6-v2",
			ModelDir: "./models",
		},
		Sinks: SinksConfig{
			Kafka: KafkaSinkConfig{
				Broker:    "localhost:29092",
				Topic:     "sentiment-results",
				BatchSize: 50,
			},
			DynamoDB: DynamoDBSinkConfig{
				Table:    "SentimentResults",
				Region:   "us-west-2",
				Endpoint: "http://localhost:8000",
			},
		},
	}
}

// SetDefaults registers every key with viper so env overrides resolve.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("dataset.path", d.Dataset.Path)
	v.SetDefault("dataset.text_column", d.Dataset.TextColumn)
	v.SetDefault("dataset.id_column", d.Dataset.IDColumn)

	v.SetDefault("scorer.backend", d.Scorer.Backend)
	v.SetDefault("scorer.hugot.model", d.Scorer.Hugot.Model)
	v.SetDefault("scorer.hugot.model_dir", d.Scorer.Hugot.ModelDir)
	v.SetDefault("scorer.openai.model", d.Scorer.OpenAI.Model)
	v.SetDefault("scorer.openai.requests_per_second", d.Scorer.OpenAI.RequestsPerSecond)
	v.SetDefault("scorer.openai.burst", d.Scorer.OpenAI.Burst)
	v.SetDefault("scorer.openai.timeout", d.Scorer.OpenAI.Timeout)
	v.SetDefault("scorer.remote.endpoint", d.Scorer.Remote.Endpoint)
	v.SetDefault("scorer.remote.timeout", d.Scorer.Remote.Timeout)

	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.valkey.address", d.Cache.Valkey.Address)
	v.SetDefault("cache.valkey.tls", d.Cache.Valkey.TLS)

	v.SetDefault("pipeline.workers", d.Pipeline.Workers)
	v.SetDefault("pipeline.failure_policy", d.Pipeline.FailurePolicy)
	v.SetDefault("pipeline.examples", d.Pipeline.Examples)

	v.SetDefault("similarity.enabled", d.Similarity.Enabled)
	v.SetDefault("similarity.model", d.Similarity.Model)
	v.SetDefault("similarity.model_dir", d.Similarity.ModelDir)

	v.SetDefault("sinks.kafka.enabled", d.Sinks.Kafka.Enabled)
	v.SetDefault("sinks.kafka.broker", d.Sinks.Kafka.Broker)
	v.SetDefault("sinks.kafka.topic", d.Sinks.Kafka.Topic)
	v.SetDefault("sinks.kafka.batch_size", d.Sinks.Kafka.BatchSize)
	v.SetDefault("sinks.dynamodb.enabled", d.Sinks.DynamoDB.Enabled)
	v.SetDefault("sinks.dynamodb.table", d.Sinks.DynamoDB.Table)
	v.SetDefault("sinks.dynamodb.region", d.Sinks.DynamoDB.Region)
	v.SetDefault("sinks.dynamodb.endpoint", d.Sinks.DynamoDB.Endpoint)
}

// BindEnv makes SENTIREVIEW_SCORER_BACKEND and friends override file values.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes the viper state into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Scorer.Backend {
	case "vader", "hugot", "openai", "remote":
	default:
		return fmt.Errorf("unknown scorer backend %q (want vader, hugot, openai or remote)", c.Scorer.Backend)
	}

	switch c.Cache.Backend {
	case "none", "memory", "valkey":
	default:
		return fmt.Errorf("unknown cache backend %q (want none, memory or valkey)", c.Cache.Backend)
	}

	switch c.Pipeline.FailurePolicy {
	case "fail", "isolate":
	default:
		return fmt.Errorf("unknown failure policy %q (want fail or isolate)", c.Pipeline.FailurePolicy)
	}

	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1, got %d", c.Pipeline.Workers)
	}
	if c.Dataset.TextColumn == "" {
		return fmt.Errorf("dataset.text_column is required")
	}
	if c.Sinks.Kafka.Enabled && c.Sinks.Kafka.Topic == "" {
		return fmt.Errorf("sinks.kafka.topic is required when the kafka sink is enabled")
	}
	if c.Sinks.DynamoDB.Enabled && c.Sinks.DynamoDB.Table == "" {
		return fmt.Errorf("sinks.dynamodb.table is required when the dynamodb sink is enabled")
	}
	return nil
}
