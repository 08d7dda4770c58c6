package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	postgres_wrapper "github.com/tradekit/matching-engine/pkg/infra/postgres"
	redis_wrapper "github.com/tradekit/matching-engine/pkg/infra/redis"
)

type EngineConfig struct {
	Symbol   string `yaml:"symbol"`
	TickSize string `yaml:"tick_size"`
	FeedFile string `yaml:"feed_file"` // empty = stdin
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	TradeTopic string   `yaml:"trade_topic"`
}

type NatsConfig struct {
	URL          string `yaml:"url"`
	Stream       string `yaml:"stream"`
	EventSubject string `yaml:"event_subject"`
}

type AppConfig struct {
	ServiceName string                           `yaml:"service_name"`
	Engine      *EngineConfig                    `yaml:"engine"`
	OmsDB       *postgres_wrapper.PostgresConfig `yaml:"oms_db"`
	Redis       *redis_wrapper.RedisConfig       `yaml:"redis"`
	Kafka       *KafkaConfig                     `yaml:"kafka"`
	Nats        *NatsConfig                      `yaml:"nats"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
