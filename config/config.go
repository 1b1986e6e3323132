package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Chatbot NLP specifics
	Model    ModelConfig
	Pipeline PipelineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ModelConfig points at the offline-trained artifacts and the intent catalog.
// All three must exist and load, or startup fails.
type ModelConfig struct {
	IntentsPath    string
	VectorizerPath string
	ClassifierPath string
}

// PipelineConfig holds the serving-time knobs of the routing pipeline.
type PipelineConfig struct {
	TopK          int
	Threshold     float64
	CacheSize     int
	SolverTimeout time.Duration // 0 disables the bounded-time guard
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Model artifacts
	cfg.Model.IntentsPath = viper.GetString("model.intents_path")
	cfg.Model.VectorizerPath = viper.GetString("model.vectorizer_path")
	cfg.Model.ClassifierPath = viper.GetString("model.classifier_path")

	// Pipeline
	cfg.Pipeline.TopK = viper.GetInt("pipeline.top_k")
	cfg.Pipeline.Threshold = viper.GetFloat64("pipeline.threshold")
	cfg.Pipeline.CacheSize = viper.GetInt("pipeline.cache_size")
	cfg.Pipeline.SolverTimeout = viper.GetDuration("pipeline.solver_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Model.IntentsPath == "" {
		return fmt.Errorf("model.intents_path is required")
	}
	if c.Model.VectorizerPath == "" {
		return fmt.Errorf("model.vectorizer_path is required")
	}
	if c.Model.ClassifierPath == "" {
		return fmt.Errorf("model.classifier_path is required")
	}
	if c.Pipeline.TopK <= 0 {
		return fmt.Errorf("pipeline.top_k must be positive, got %d", c.Pipeline.TopK)
	}
	if c.Pipeline.Threshold < 0 || c.Pipeline.Threshold > 1 {
		return fmt.Errorf("pipeline.threshold must be in [0,1], got %f", c.Pipeline.Threshold)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("model.intents_path", "./data/intents.json")
	viper.SetDefault("model.vectorizer_path", "./model/vectorizer.json")
	viper.SetDefault("model.classifier_path", "./model/classifier.json")

	viper.SetDefault("pipeline.top_k", 2)
	viper.SetDefault("pipeline.threshold", 0.3)
	viper.SetDefault("pipeline.cache_size", 512)
	viper.SetDefault("pipeline.solver_timeout", "2s")
}
