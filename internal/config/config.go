package config

import (
	"errors"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all job settings, populated from environment variables.
type Config struct {
	CitiesPath      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka sink configuration. The sink is disabled when no brokers are set.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool

	// PushgatewayURL enables pushing run metrics when non-empty.
	PushgatewayURL string
	PushJobName    string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	var brokers []string
	if raw := sharedcfg.EnvOrDefault("KAFKA_BROKERS", ""); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}

	cfg := &Config{
		CitiesPath:      sharedcfg.EnvOrDefault("CITIES_PATH", "data/cities.json"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:   brokers,
		KafkaSinkTopic: sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "livable-cities"),
		KafkaEnabled:   len(brokers) > 0,

		PushgatewayURL: sharedcfg.EnvOrDefault("PUSHGATEWAY_URL", ""),
		PushJobName:    sharedcfg.EnvOrDefault("PUSH_JOB_NAME", "livable_cities"),
	}

	if cfg.CitiesPath == "" {
		return nil, errors.New("CITIES_PATH is required")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("LOG_FORMAT must be json or text")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required when KAFKA_BROKERS is set")
	}
	if cfg.PushgatewayURL != "" && cfg.PushJobName == "" {
		return nil, errors.New("PUSH_JOB_NAME is required when PUSHGATEWAY_URL is set")
	}

	return cfg, nil
}
